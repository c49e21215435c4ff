package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/orderdesk/orderdesk-backend/config"
	"github.com/orderdesk/orderdesk-backend/internal/app/controller"
	"github.com/orderdesk/orderdesk-backend/internal/app/repository"
	"github.com/orderdesk/orderdesk-backend/internal/app/service"
	"github.com/orderdesk/orderdesk-backend/internal/db"
	"github.com/orderdesk/orderdesk-backend/internal/router"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := cfg.Log.Level
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      cfg.Log.Format,
		EnableColor: true,
	})

	logger.Info("Starting ORDERDESK Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	gdb, err := db.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Create schema if missing (idempotent)
	if err := db.Migrate(gdb); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	contactRepo := repository.NewContactRepository(gdb)
	productRepo := repository.NewProductRepository(gdb)
	tagRepo := repository.NewTagRepository(gdb)
	orderRepo := repository.NewOrderRepository(gdb)

	// Initialize services
	contactService := service.NewContactService(contactRepo)
	productService := service.NewProductService(productRepo)
	tagService := service.NewTagService(tagRepo)
	orderService := service.NewOrderService(orderRepo, gdb)

	// Initialize controllers
	contactController := controller.NewContactController(contactService)
	productController := controller.NewProductController(productService)
	tagController := controller.NewTagController(tagService)
	orderController := controller.NewOrderController(orderService)

	// Setup router
	r := router.NewRouter(
		contactController,
		productController,
		tagController,
		orderController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
