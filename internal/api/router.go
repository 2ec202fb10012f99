package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amk-marketing/landing-api/internal/api/handler"
	"github.com/amk-marketing/landing-api/internal/core/ports"
	"github.com/amk-marketing/landing-api/internal/core/service"
	"github.com/amk-marketing/landing-api/internal/infrastructure/db/memory"
	mongodb "github.com/amk-marketing/landing-api/internal/infrastructure/db/mongo"
	"github.com/amk-marketing/landing-api/internal/infrastructure/genai"
	"github.com/amk-marketing/landing-api/internal/infrastructure/webhook"
	"github.com/amk-marketing/landing-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// db is nil when the in-memory store is active.
func NewRouter(cfg *config.Config, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("amk_landing"))

	// --- Dependencies ---
	var leadRepo ports.LeadRepository
	if db != nil {
		leadRepo = mongodb.NewLeadRepository(db)
	} else {
		leadRepo = memory.NewLeadRepository()
	}

	relay := webhook.NewRelay(webhook.Config{
		URL:                cfg.Webhook.URL,
		InsecureSkipVerify: cfg.Webhook.InsecureSkipVerify,
		Timeout:            cfg.Webhook.Timeout,
	}, log)

	generator := genai.NewClient(genai.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
	}, log)

	leadService := service.NewLeadService(leadRepo, relay, log)
	contentService := service.NewContentService(generator, log)

	leadHandler := handler.NewLeadHandler(leadService)
	contentHandler := handler.NewContentHandler(contentService)
	healthHandler := handler.NewHealthHandler(db)

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/demo-request", leadHandler.Submit)
	apiGroup.GET("/demo-requests", leadHandler.List)
	apiGroup.POST("/generate-content", contentHandler.Generate)

	// --- Health probes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
