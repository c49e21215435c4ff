package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk-backend/internal/app/service"
	"github.com/orderdesk/orderdesk-backend/internal/errors"
	"github.com/orderdesk/orderdesk-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

type CreateProductRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateProduct creates a new product
// POST /product
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create product request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	product, err := ctrl.productService.CreateProduct(req.Name)
	if err != nil {
		log.Error("Failed to create product", err, map[string]interface{}{
			"name": req.Name,
		})
		errors.InternalError(c, err)
		return
	}

	log.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
	})
	c.JSON(http.StatusOK, product)
}

// GetProducts returns all products
// GET /product
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.ListProducts()
	if err != nil {
		log.Error("Failed to fetch products", err)
		errors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}
