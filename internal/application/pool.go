package application

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/cache"
	"github.com/jaewonk/gpu-admin-go/internal/domain/pool"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
	"github.com/jaewonk/gpu-admin-go/pkg/utils"
)

var ErrNegativeTotal = errors.New("total must not be negative")

// PoolService manages the per-type GPU pool totals. Writes are admin-only,
// enforced at the route layer.
type PoolService struct {
	Repos *repository.Repos
	Cache *cache.Cache
}

func NewPoolService(repos *repository.Repos, c *cache.Cache) *PoolService {
	return &PoolService{Repos: repos, Cache: c}
}

// Upsert creates or replaces the total for a GPU type, last write wins.
func (s *PoolService) Upsert(c *gin.Context, input pool.UpsertPoolDTO) (*pool.GPUPool, error) {
	if input.Total < 0 {
		return nil, ErrNegativeTotal
	}

	old, _ := s.Repos.Pool.GetByType(input.GPUType)

	p := &pool.GPUPool{GPUType: input.GPUType, Total: input.Total}
	if err := s.Repos.Pool.Upsert(p); err != nil {
		return nil, err
	}

	s.Cache.InvalidateCapacityViews(requestContext(c))
	utils.LogAuditWithConsole(c, "upsert", "gpu_pool", input.GPUType, &old, p, "pool total updated", s.Repos.Audit)
	return p, nil
}

func (s *PoolService) List() ([]pool.GPUPool, error) {
	return s.Repos.Pool.List()
}
