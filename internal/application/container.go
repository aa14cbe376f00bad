package application

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/cache"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
)

type Services struct {
	Pool        *PoolService
	Registry    *RegistryService
	Usage       *UsageService
	Reservation *ReservationService
	Capacity    *CapacityService
	Audit       *AuditService
}

func New(repos *repository.Repos, c *cache.Cache) *Services {
	return &Services{
		Pool:        NewPoolService(repos, c),
		Registry:    NewRegistryService(repos, c),
		Usage:       NewUsageService(repos, c),
		Reservation: NewReservationService(repos, c),
		Capacity:    NewCapacityService(repos, c),
		Audit:       NewAuditService(repos),
	}
}

// requestContext tolerates test contexts that carry no *http.Request.
func requestContext(c *gin.Context) context.Context {
	if c == nil || c.Request == nil {
		return context.Background()
	}
	return c.Request.Context()
}
