package handlers

import (
	"net/http"

	"tobacco_drying/internal/logger"
	"tobacco_drying/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  http.Handler
}

// NewHandler constructs a new HTTP handler with dependencies.
// metrics may be nil, in which case /metrics is not registered.
func NewHandler(services *service.Service, log *logger.Logger, metrics http.Handler) *Handler {
	return &Handler{services: services, log: log, metrics: metrics}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics))
	}

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Live dashboard stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerChamberRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerChamberRoutes(api *gin.RouterGroup) {
	chambers := api.Group("/chambers")
	{
		chambers.GET("", h.listChambers)
		chambers.GET("/:id", h.getChamber)
		chambers.POST("/:id/devices/:name/toggle", h.toggleDevice)
		// Body example: {"desired_temperature":32,"drying_time":90}
		chambers.PATCH("/:id/settings", h.updateSettings)
		chambers.POST("/:id/drying/start", h.startDrying)
		chambers.POST("/:id/drying/reset", h.resetDrying)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
	}
}
