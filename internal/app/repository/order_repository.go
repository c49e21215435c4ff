package repository

import (
	"github.com/orderdesk/orderdesk-backend/internal/app/model"
	"github.com/orderdesk/orderdesk-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderRepository interface {
	FindByID(id uint) (*model.Order, error)
	FindAll() ([]model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// preloadOrder eagerly loads lines and tags on every order read. There is
// no lazy path; a per-row follow-up query storm is not an option here.
// Lines are ordered by id so they come back in insertion order.
func (r *orderRepository) preloadOrder() *gorm.DB {
	return r.db.Preload("OrderLines", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_lines.id ASC")
	}).Preload("Tags")
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	logger.Debug("Finding order by ID in database", map[string]interface{}{
		"order_id": id,
	})

	var order model.Order
	if err := r.preloadOrder().First(&order, id).Error; err != nil {
		logger.Error("Failed to find order by ID in database", err, map[string]interface{}{
			"order_id": id,
		})
		return nil, err
	}

	logger.Debug("Order found by ID in database", map[string]interface{}{
		"order_id":   order.ID,
		"contact_id": order.ContactID,
		"line_count": len(order.OrderLines),
	})
	return &order, nil
}

func (r *orderRepository) FindAll() ([]model.Order, error) {
	var orders []model.Order
	if err := r.preloadOrder().Find(&orders).Error; err != nil {
		logger.Error("Failed to list orders in database", err)
		return nil, err
	}

	logger.Debug("Orders listed in database", map[string]interface{}{
		"count": len(orders),
	})
	return orders, nil
}
