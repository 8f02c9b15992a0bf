package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sugarline/cakeshop/internal/server/http/handlers"
	"github.com/sugarline/cakeshop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	sessionHandler := handlers.NewSessionHandler(facade)
	studioHandler := handlers.NewStudioHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	voucherHandler := handlers.NewVoucherHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	fileHandler := handlers.NewFileHandler(facade)

	api := engine.Group("/api")
	api.Use(middleware.AuthRequired(facade))

	sessions := api.Group("/sessions")
	sessions.POST("", sessionHandler.Start)
	sessions.GET("/:id", sessionHandler.Get)
	sessions.DELETE("/:id", sessionHandler.Discard)
	sessions.POST("/:id/reset", sessionHandler.Reset)
	sessions.PUT("/:id/options", sessionHandler.SelectOption)
	sessions.PUT("/:id/decorations", sessionHandler.ToggleDecoration)
	sessions.PUT("/:id/extras", sessionHandler.ToggleExtra)
	sessions.PUT("/:id/message/type", sessionHandler.SetMessageType)
	sessions.PUT("/:id/message/text", sessionHandler.SetMessageText)
	sessions.PUT("/:id/message/plaque-color", sessionHandler.SetPlaqueColor)
	sessions.PUT("/:id/message/piping-color", sessionHandler.SetPipingColor)
	sessions.PUT("/:id/message/image", sessionHandler.SetUploadedImage)
	sessions.POST("/:id/stages/:stage/complete", sessionHandler.CompleteStage)
	sessions.GET("/:id/submission", sessionHandler.Submission)
	sessions.POST("/:id/cart", sessionHandler.AddToCart)

	sessions.GET("/:id/studio", studioHandler.Scene)
	sessions.DELETE("/:id/studio", studioHandler.Clear)
	sessions.PUT("/:id/studio/colors", studioHandler.SetColor)
	sessions.PUT("/:id/studio/textures", studioHandler.SetTexture)
	sessions.POST("/:id/studio/texts", studioHandler.AddText)
	sessions.DELETE("/:id/studio/texts/:textID", studioHandler.RemoveText)
	sessions.POST("/:id/studio/toppings", studioHandler.AddTopping)
	sessions.DELETE("/:id/studio/toppings/:toppingID", studioHandler.RemoveTopping)

	checkout := api.Group("/checkout")
	checkout.POST("/quote", checkoutHandler.Quote)
	checkout.POST("/address", checkoutHandler.ResolveAddress)
	checkout.DELETE("/address", checkoutHandler.InvalidateAddress)
	checkout.GET("/address/autocomplete", checkoutHandler.Autocomplete)
	checkout.POST("/orders", checkoutHandler.Submit)

	api.GET("/vouchers", voucherHandler.List)

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Detail)
	orders.DELETE("/:id", orderHandler.Cancel)
	orders.POST("/:id/review", orderHandler.Review)
	orders.POST("/:id/report", orderHandler.Report)

	api.POST("/files", fileHandler.Upload)

	return engine
}
