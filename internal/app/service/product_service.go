package service

import (
	"github.com/orderdesk/orderdesk-backend/internal/app/model"
	"github.com/orderdesk/orderdesk-backend/internal/app/repository"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
)

type ProductService interface {
	CreateProduct(name string) (*model.Product, error)
	ListProducts() ([]model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(name string) (*model.Product, error) {
	product := &model.Product{
		Name: name,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	logger.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
	})
	return product, nil
}

func (s *productService) ListProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}
