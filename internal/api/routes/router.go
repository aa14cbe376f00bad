package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jaewonk/gpu-admin-go/internal/api/handlers"
	"github.com/jaewonk/gpu-admin-go/internal/api/middleware"
	"github.com/jaewonk/gpu-admin-go/internal/application"
	"github.com/jaewonk/gpu-admin-go/internal/cache"
	"github.com/jaewonk/gpu-admin-go/internal/cron"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, gormDB *gorm.DB, cacheClient *cache.Cache) {
	// init
	repos := repository.NewRepositories(gormDB)
	services := application.New(repos, cacheClient)
	h := handlers.New(services, repos, r)

	// Start background tasks
	cron.StartCleanupTask(services.Audit)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// setup
	r.POST("/login", h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), handlers.AuthStatusHandler)

	// Read surface is open; the dashboard polls these without a token.
	capacity := r.Group("/capacity")
	{
		capacity.GET("/status", h.Capacity.Status)
		capacity.GET("/timeline", h.Capacity.Timeline)
		capacity.GET("/details", h.Capacity.Details)
	}
	r.GET("/pools", h.Pool.ListPools)
	r.GET("/services", h.Registry.ListServices)
	r.GET("/usage", h.Usage.ListUsage)
	r.GET("/reservations", h.Reservation.ListReservations)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		reservations := auth.Group("/reservations")
		{
			reservations.POST("", h.Reservation.CreateReservation)
			reservations.PUT("/:id/approve", h.Reservation.ApproveReservation)
			reservations.DELETE("/:id", h.Reservation.DeleteReservation)
		}

		admin := auth.Group("/")
		admin.Use(middleware.Admin())
		{
			admin.PUT("/pools", h.Pool.UpsertPool)
			admin.POST("/services", h.Registry.AddService)
			admin.POST("/usage", h.Usage.CreateUsage)
			admin.GET("/audit/logs", h.Audit.GetAuditLogs)
		}
	}
}
