package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/application"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
)

type Handlers struct {
	Auth        *AuthHandler
	Pool        *PoolHandler
	Registry    *RegistryHandler
	Usage       *UsageHandler
	Reservation *ReservationHandler
	Capacity    *CapacityHandler
	Audit       *AuditHandler
	Router      *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(),
		Pool:        NewPoolHandler(svc.Pool),
		Registry:    NewRegistryHandler(svc.Registry),
		Usage:       NewUsageHandler(svc.Usage),
		Reservation: NewReservationHandler(svc.Reservation),
		Capacity:    NewCapacityHandler(svc.Capacity),
		Audit:       NewAuditHandler(svc.Audit),
		Router:      router,
	}
}
