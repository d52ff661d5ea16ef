package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/metrics"
	"github.com/vladislavdragonenkov/orders/internal/service/catalog"
	"github.com/vladislavdragonenkov/orders/internal/service/order"
)

// Server связывает движок заказов и каталог с REST-маршрутами.
type Server struct {
	engine  *order.Engine
	catalog *catalog.Service
	logger  *log.Entry
}

// NewServer конструирует HTTP-слой API.
func NewServer(engine *order.Engine, catalogSvc *catalog.Service, logger *log.Entry) *Server {
	if logger == nil {
		logger = log.WithField("component", "http-api")
	}
	return &Server{
		engine:  engine,
		catalog: catalogSvc,
		logger:  logger,
	}
}

// Router собирает gin-маршрутизатор со всеми эндпоинтами и middleware.
// httpMetrics опционален.
func (s *Server) Router(httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(s.logger))
	if httpMetrics != nil {
		router.Use(requestMetrics(httpMetrics))
	}

	orders := router.Group("/orders")
	{
		orders.POST("", s.createOrder)
		orders.GET("/:id", s.getOrder)
		orders.PUT("/:id", s.updateOrder)
		orders.DELETE("/:id", s.deleteOrder)
	}

	products := router.Group("/products")
	{
		products.POST("", s.createProduct)
		products.GET("", s.findProducts)
		products.GET("/:id", s.getProduct)
		products.PUT("/:id", s.updateProduct)
		products.DELETE("/:id", s.deleteProduct)
	}

	return router
}

// writeDomainError отображает доменную таксономию ошибок на HTTP-статусы.
// Отсутствие товара, на который ссылается заказ, сознательно отдаётся как
// 400: так ведёт себя публичный контракт сервиса.
func (s *Server) writeDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.IsBadInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.WithError(err).WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
