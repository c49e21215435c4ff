package service

import (
	"errors"
	"fmt"

	"github.com/orderdesk/orderdesk-backend/internal/app/model"
	"github.com/orderdesk/orderdesk-backend/internal/app/repository"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderLineInput struct {
	ProductID uint
	Quantity  int
	Price     float64
}

type CreateOrderInput struct {
	Name       string
	ContactID  uint
	OrderLines []OrderLineInput
	TagIDs     []uint
}

type OrderService interface {
	CreateOrder(input CreateOrderInput) (*model.Order, error)
	ListOrders() ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	db        *gorm.DB
}

func NewOrderService(orderRepo repository.OrderRepository, db *gorm.DB) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		db:        db,
	}
}

// CreateOrder persists the order, its lines and its tag links in one
// transaction. Either everything commits or nothing is visible.
func (s *orderService) CreateOrder(input CreateOrderInput) (*model.Order, error) {
	logger.Info("Creating order", map[string]interface{}{
		"name":       input.Name,
		"contact_id": input.ContactID,
		"line_count": len(input.OrderLines),
		"tag_count":  len(input.TagIDs),
	})

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during order creation, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"contact_id": input.ContactID,
			})
		}
	}()

	// The insert makes the generated id visible inside the transaction,
	// so the lines and tag links below can reference it before commit.
	order := &model.Order{
		Name:      input.Name,
		ContactID: input.ContactID,
	}
	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create order", err, map[string]interface{}{
			"contact_id": input.ContactID,
		})
		return nil, err
	}

	// Lines are inserted in input order. Product existence is not checked
	// here; a dangling product_id surfaces only if the store enforces the
	// foreign key.
	for _, line := range input.OrderLines {
		orderLine := model.OrderLine{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
		if err := tx.Create(&orderLine).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to create order line", err, map[string]interface{}{
				"order_id":   order.ID,
				"product_id": line.ProductID,
			})
			return nil, err
		}
	}

	// Tag ids that do not resolve to a row are skipped without failing
	// the order.
	for _, tagID := range input.TagIDs {
		var tag model.Tag
		if err := tx.First(&tag, tagID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Skipping unknown tag on order", map[string]interface{}{
					"order_id": order.ID,
					"tag_id":   tagID,
				})
				continue
			}
			tx.Rollback()
			logger.Error("Failed to look up tag during order creation", err, map[string]interface{}{
				"order_id": order.ID,
				"tag_id":   tagID,
			})
			return nil, err
		}

		orderTag := model.OrderTag{
			OrderID: order.ID,
			TagID:   tag.ID,
		}
		if err := tx.Create(&orderTag).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to link tag to order", err, map[string]interface{}{
				"order_id": order.ID,
				"tag_id":   tag.ID,
			})
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit order transaction", err, map[string]interface{}{
			"order_id": order.ID,
		})
		return nil, err
	}

	created, err := s.orderRepo.FindByID(order.ID)
	if err != nil {
		return nil, err
	}
	normalizeAggregate(created)

	logger.Info("Order created successfully", map[string]interface{}{
		"order_id":     created.ID,
		"contact_id":   created.ContactID,
		"line_count":   len(created.OrderLines),
		"tag_count":    len(created.Tags),
		"amount_total": created.AmountTotal,
	})
	return created, nil
}

// normalizeAggregate derives the total and keeps empty collections as
// empty JSON arrays rather than null.
func normalizeAggregate(order *model.Order) {
	if order.OrderLines == nil {
		order.OrderLines = []model.OrderLine{}
	}
	if order.Tags == nil {
		order.Tags = []model.Tag{}
	}
	order.AmountTotal = order.ComputeAmountTotal()
}

// ListOrders returns every order with lines and tags eagerly loaded and
// the total derived from the current lines.
func (s *orderService) ListOrders() ([]model.Order, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}

	for i := range orders {
		normalizeAggregate(&orders[i])
	}

	logger.Debug("Orders listed", map[string]interface{}{
		"count": len(orders),
	})
	return orders, nil
}
