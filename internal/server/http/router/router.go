package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/qrplate/qrplate/internal/server/http/handlers"
	"github.com/qrplate/qrplate/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.OrderingFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	businessHandler := handlers.NewBusinessHandler(facade)
	configHandler := handlers.NewSinkConfigHandler(facade)

	api := engine.Group("/api")
	api.POST("/orders", orderHandler.Place)
	api.GET("/orders/:id", orderHandler.Get)

	api.POST("/businesses", businessHandler.Register)
	business := api.Group("/businesses/:id")
	business.PUT("/ordering", businessHandler.SetOrderingGate)
	business.GET("/printer-config", configHandler.PrinterConfig)
	business.PUT("/printer-config", configHandler.SavePrinterConfig)
	business.GET("/pos-config", configHandler.PosConfig)
	business.PUT("/pos-config", configHandler.SavePosConfig)

	return engine
}
