package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/cart-widget/internal/port"
	"github.com/nikolayk812/cart-widget/internal/widget"
	"go.uber.org/zap"
)

// Server exposes one cart over HTTP. The cart is single-threaded, so every
// handler that touches it holds mu.
type Server struct {
	mu      sync.Mutex
	cart    *widget.Cart
	catalog port.ProductCatalog
	orders  port.OrderRepository
	logger  *zap.Logger
}

func New(cart *widget.Cart, catalog port.ProductCatalog, orders port.OrderRepository, logger *zap.Logger) *Server {
	return &Server{
		cart:    cart,
		catalog: catalog,
		orders:  orders,
		logger:  logger,
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger))

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/", s.page)

	router.GET("/products", s.listProducts)

	cart := router.Group("/cart")
	{
		cart.GET("", s.fragment)
		cart.GET("/total", s.total)
		cart.POST("/items", s.addItem)
		cart.DELETE("/items/:id", s.removeItem)
		cart.POST("/items/:id/increment", s.increment)
		cart.POST("/items/:id/decrement", s.decrement)
		cart.POST("/click", s.click)
		cart.POST("/order", s.placeOrder)
	}

	router.GET("/orders", s.listOrders)
	router.GET("/orders/:id", s.getOrder)

	return router
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
