package main

import (
	"fmt"
	"log"

	"github.com/orderdesk/orderdesk-backend/config"
	"github.com/orderdesk/orderdesk-backend/internal/app/model"
	"github.com/orderdesk/orderdesk-backend/internal/app/repository"
	"github.com/orderdesk/orderdesk-backend/internal/db"
)

// Seeds a handful of contacts, products and tags for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	gdb, err := db.Connect(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close(gdb)

	if err := db.Migrate(gdb); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	contactRepo := repository.NewContactRepository(gdb)
	productRepo := repository.NewProductRepository(gdb)
	tagRepo := repository.NewTagRepository(gdb)

	contacts := []model.Contact{
		{Name: "Ada Lovelace", Email: "ada@example.com"},
		{Name: "Grace Hopper", Email: "grace@example.com"},
	}
	for i := range contacts {
		if err := contactRepo.Create(&contacts[i]); err != nil {
			log.Fatal("Failed to seed contact:", err)
		}
	}

	products := []model.Product{
		{Name: "Widget"},
		{Name: "Gadget"},
		{Name: "Sprocket"},
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			log.Fatal("Failed to seed product:", err)
		}
	}

	tags := []model.Tag{
		{Name: "priority"},
		{Name: "wholesale"},
		{Name: "export"},
	}
	for i := range tags {
		if err := tagRepo.Create(&tags[i]); err != nil {
			log.Fatal("Failed to seed tag:", err)
		}
	}

	fmt.Printf("Seeded %d contacts, %d products, %d tags\n", len(contacts), len(products), len(tags))
}
