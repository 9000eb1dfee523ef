package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/aidlink/backend/internal/config"
	"github.com/aidlink/backend/internal/discovery"
	"github.com/aidlink/backend/internal/eligibility"
	"github.com/aidlink/backend/internal/http/handlers"
	"github.com/aidlink/backend/internal/http/middleware"

	_ "github.com/aidlink/backend/docs"
)

func Router(cfg config.Config, orch *discovery.Orchestrator, nav *eligibility.Navigator, googleAvailable, geminiAvailable bool, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Discovery:       orch,
		Navigator:       nav,
		Validator:       validator.New(),
		Logger:          logger,
		DefaultLocation: cfg.DefaultLocation,
		RequestTimeout:  cfg.RequestTimeout,
		GoogleAvailable: googleAvailable,
		GeminiAvailable: geminiAvailable,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/status", h.Status)
		api.POST("/search", h.Search)
		api.POST("/analyze-eligibility", h.AnalyzeEligibility)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
