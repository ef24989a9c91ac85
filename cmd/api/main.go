package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"rent-vs-buy/internal/api/handlers"
	"rent-vs-buy/internal/api/middleware"
	"rent-vs-buy/internal/cache"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	if limit := os.Getenv("RATE_LIMIT"); limit != "" {
		var capacity int
		if _, err := fmt.Sscanf(limit, "%d", &capacity); err == nil && capacity > 0 {
			log.Printf("Rate limiting enabled: %d requests/minute per client", capacity)
			router.Use(middleware.RateLimit(middleware.NewRateLimiter(capacity, time.Minute)))
		}
	}

	// Result cache: Redis when configured, in-process otherwise.
	resultCache := buildCache()

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(resultCache)
	scenarioHandler := handlers.NewScenarioHandler()
	sellYearHandler := handlers.NewSellYearHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analyzeHandler.RunAnalysis)
		api.POST("/analyze/compare", analyzeHandler.Compare)

		api.POST("/sell-years", sellYearHandler.RankSellYears)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/methods", handlers.ListMethods)
		api.GET("/modes", handlers.ListModes)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildCache() cache.Cache {
	ttl := 1 * time.Hour
	if ttlStr := os.Getenv("CACHE_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			ttl = parsed
		}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		log.Printf("Result cache: redis at %s (ttl %s)", addr, ttl)
		return cache.NewRedis(addr, ttl)
	}
	log.Printf("Result cache: in-memory (ttl %s)", ttl)
	return cache.NewMemory(ttl)
}
