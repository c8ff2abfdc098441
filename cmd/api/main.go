package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"roombook/internal/config"
	"roombook/internal/gateway"
	"roombook/internal/logger"
	"roombook/internal/middleware"
	"roombook/internal/modules/analytics"
	"roombook/internal/modules/booking"
	"roombook/internal/modules/catalog"
	"roombook/internal/modules/pricing"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	backend := gateway.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout)

	pricingService := pricing.NewService()
	pricingHandler := pricing.NewHandler(pricingService)

	bookingService := booking.NewService(backend, backend, pricingService)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(backend)
	catalogHandler := catalog.NewHandler(catalogService)

	analyticsService := analytics.NewService(backend)
	analyticsHandler := analytics.NewHandler(analyticsService)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}))

	api := r.Group("/api")
	{
		pricingHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		catalogHandler.RegisterRoutes(api)
		analyticsHandler.RegisterRoutes(api)
	}

	zlog.Info("starting roombook api",
		zap.String("addr", cfg.Addr),
		zap.String("backend", cfg.BackendBaseURL),
	)
	if err := r.Run(cfg.Addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
