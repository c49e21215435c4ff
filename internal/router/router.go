package router

import (
	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk-backend/config"
	"github.com/orderdesk/orderdesk-backend/internal/app/controller"
	"github.com/orderdesk/orderdesk-backend/internal/middleware"
)

type Router struct {
	contactController *controller.ContactController
	productController *controller.ProductController
	tagController     *controller.TagController
	orderController   *controller.OrderController
	config            *config.Config
}

func NewRouter(
	contactController *controller.ContactController,
	productController *controller.ProductController,
	tagController *controller.TagController,
	orderController *controller.OrderController,
	cfg *config.Config,
) *Router {
	return &Router{
		contactController: contactController,
		productController: productController,
		tagController:     tagController,
		orderController:   orderController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "ORDERDESK API is running",
		})
	})

	// The API keeps the historical sync/async split as two path prefixes
	// over a single handler set. Both prefixes behave identically,
	// eager loading included.
	r.registerRoutes(router.Group("/sync"))
	r.registerRoutes(router.Group("/async"))

	return router
}

func (r *Router) registerRoutes(g *gin.RouterGroup) {
	g.POST("/contact", r.contactController.CreateContact)
	g.GET("/contact", r.contactController.GetContacts)

	g.POST("/product", r.productController.CreateProduct)
	g.GET("/product", r.productController.GetProducts)

	g.POST("/tag", r.tagController.CreateTag)
	g.GET("/tag", r.tagController.GetTags)

	g.POST("/order", r.orderController.CreateOrder)
	g.GET("/order", r.orderController.GetOrders)
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
