package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mraditya/warungo/internal/cart"
	"github.com/mraditya/warungo/internal/catalog"
	"github.com/mraditya/warungo/internal/checkout"
	"github.com/mraditya/warungo/internal/database"
	"github.com/mraditya/warungo/internal/metrics"
)

type Server struct {
	router   *gin.Engine
	db       *database.DB
	catalog  *catalog.Store
	cart     *cart.Store
	checkout *checkout.Transactor
	metrics  *metrics.ServerMetrics
}

// NewServer creates a new server instance
func NewServer(db *database.DB) *Server {
	router := gin.Default()

	server := &Server{
		router:   router,
		db:       db,
		catalog:  catalog.NewStore(db),
		cart:     cart.NewStore(db),
		checkout: checkout.NewTransactor(db),
		metrics:  metrics.NewServerMetrics("storefront"),
	}

	router.Use(server.metrics.Middleware())
	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		api.GET("/categories", s.listCategories)
		api.POST("/categories", s.createCategory)
		api.GET("/categories/:id/products", s.listProductsByCategory)

		api.GET("/products", s.listProducts)
		api.GET("/products/with-category", s.listProductsWithCategory)
		api.GET("/products/search", s.searchProducts)
		api.POST("/products", s.createProduct)
		api.PATCH("/products/:id", s.updateProduct)

		api.GET("/cart", s.listCartItems)
		api.POST("/cart", s.addToCart)
		api.PATCH("/cart/:id", s.updateCartItem)
		api.DELETE("/cart/:id", s.removeFromCart)

		api.POST("/orders", s.createOrder)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	// Check database health
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "warungo",
		"version": "0.1.0",
	})
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
