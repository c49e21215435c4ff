package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk-backend/internal/app/service"
	"github.com/orderdesk/orderdesk-backend/internal/errors"
	"github.com/orderdesk/orderdesk-backend/internal/middleware"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

type OrderLineInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"min=0"`
	Price     float64 `json:"price"`
}

type CreateOrderRequest struct {
	Name       string           `json:"name" binding:"required"`
	ContactID  uint             `json:"contact_id" binding:"required"`
	OrderLines []OrderLineInput `json:"order_lines"`
	TagIDs     []uint           `json:"tag_ids"`
}

// CreateOrder creates an order with its lines and tag links
// POST /order
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create order request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	lines := make([]service.OrderLineInput, len(req.OrderLines))
	for i, line := range req.OrderLines {
		lines[i] = service.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
	}

	order, err := ctrl.orderService.CreateOrder(service.CreateOrderInput{
		Name:       req.Name,
		ContactID:  req.ContactID,
		OrderLines: lines,
		TagIDs:     req.TagIDs,
	})
	if err != nil {
		log.Error("Failed to create order", err, map[string]interface{}{
			"contact_id": req.ContactID,
		})
		errors.InternalError(c, err)
		return
	}

	log.Info("Order created successfully", map[string]interface{}{
		"order_id":     order.ID,
		"amount_total": order.AmountTotal,
	})
	c.JSON(http.StatusOK, order)
}

// GetOrders returns all orders with lines, tags and derived totals
// GET /order
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orders, err := ctrl.orderService.ListOrders()
	if err != nil {
		log.Error("Failed to fetch orders", err)
		errors.InternalError(c, err)
		return
	}

	log.Info("Orders fetched successfully", map[string]interface{}{
		"count": len(orders),
	})
	c.JSON(http.StatusOK, orders)
}
