package main

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/travelplanner/internal/agents"
	"github.com/dharmasatrya/travelplanner/internal/cache"
	"github.com/dharmasatrya/travelplanner/internal/config"
	"github.com/dharmasatrya/travelplanner/internal/flights"
	"github.com/dharmasatrya/travelplanner/internal/handler"
	"github.com/dharmasatrya/travelplanner/internal/planner"
	"github.com/dharmasatrya/travelplanner/internal/ratelimit"
	"github.com/dharmasatrya/travelplanner/internal/web"
)

func main() {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration error", "error", err)
	}
	if level, err := charmlog.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	sessionCache := buildCache(cfg, logger)
	defer sessionCache.Close()

	limiter := ratelimit.NewEndpointLimiterWithDefaults()
	limiter.SetEndpointLimit(ratelimit.EndpointFlights, 2, 5)
	limiter.SetEndpointLimit(ratelimit.EndpointCompletion, 1, 3)

	flightClient := flights.NewClient(flights.Config{
		APIKey:   cfg.SerpAPIKey,
		Currency: cfg.Currency,
		Symbol:   cfg.CurrencySymbol,
		Language: cfg.Language,
		Timeout:  cfg.RequestTimeout,
	}, sessionCache, limiter, logger.With("component", "flights"))

	completer, err := agents.NewGoogleAICompleter(context.Background(), cfg.GoogleAPIKey, limiter)
	if err != nil {
		logger.Fatal("failed to initialize completion client", "error", err)
	}

	researcher := agents.NewResearcher(completer, cfg.ResearchModel)
	finder := agents.NewFinder(completer, cfg.FinderModel)
	itinerary := agents.NewPlanner(completer, cfg.PlannerModel)

	store := planner.NewStore()
	service := planner.NewService(flightClient, researcher, finder, itinerary, store,
		logger.With("component", "planner"))

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal("failed to parse templates", "error", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	h := handler.NewPlanHandler(service, store, flightClient, cfg.CurrencySymbol)

	e.GET("/", h.Index)
	e.POST("/plan", h.CreatePlanPage)
	e.GET("/plans/:id/export", h.ExportPlan)

	api := e.Group("/api/v1")
	api.POST("/plans", h.CreatePlanAPI)
	api.POST("/flights/search", h.SearchFlightsAPI)

	e.GET("/health", handler.HealthHandler)

	logger.Info("starting travel planner server", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

func buildCache(cfg *config.Config, logger *charmlog.Logger) cache.Cache {
	if !cfg.CacheEnabled {
		logger.Info("api cache disabled")
		return cache.NewNoOpCache()
	}

	if cfg.RedisEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			logger.Fatal("failed to connect to redis", "error", err)
		}
		logger.Info("redis cache enabled", "host", cfg.RedisHost+":"+cfg.RedisPort, "ttl", cfg.RedisTTL)
		return redisCache
	}

	logger.Info("in-memory session cache enabled")
	return cache.NewMemoryCache()
}
