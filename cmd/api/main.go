package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/api/middleware"
	"github.com/jaewonk/gpu-admin-go/internal/api/routes"
	"github.com/jaewonk/gpu-admin-go/internal/cache"
	"github.com/jaewonk/gpu-admin-go/internal/config"
	"github.com/jaewonk/gpu-admin-go/internal/config/db"
	"github.com/jaewonk/gpu-admin-go/internal/domain/audit"
	"github.com/jaewonk/gpu-admin-go/internal/domain/pool"
	"github.com/jaewonk/gpu-admin-go/internal/domain/registry"
	"github.com/jaewonk/gpu-admin-go/internal/domain/reservation"
	"github.com/jaewonk/gpu-admin-go/internal/domain/usage"

	_ "github.com/jaewonk/gpu-admin-go/docs"
)

// @title GPU Admin API
// @version 1.0
// @description GPU capacity, usage and reservation management API
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&pool.GPUPool{},
		&registry.Service{},
		&usage.Record{},
		&reservation.Reservation{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Optional Redis cache for the capacity read models
	cacheClient, err := cache.New(config.RedisURL, time.Duration(config.CacheTTLSecs)*time.Second)
	if err != nil {
		log.Printf("Warning: cache disabled: %v", err)
	}
	if cacheClient != nil {
		defer cacheClient.Close()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger())

	routes.RegisterRoutes(router, db.DB, cacheClient)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
