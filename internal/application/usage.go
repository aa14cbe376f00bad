package application

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/cache"
	"github.com/jaewonk/gpu-admin-go/internal/domain/usage"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
	"github.com/jaewonk/gpu-admin-go/pkg/dates"
	"github.com/jaewonk/gpu-admin-go/pkg/utils"
)

// UsageService records directly observed GPU consumption. Records are
// immutable once written; there is no update or expiry path.
type UsageService struct {
	Repos *repository.Repos
	Cache *cache.Cache
}

func NewUsageService(repos *repository.Repos, c *cache.Cache) *UsageService {
	return &UsageService{Repos: repos, Cache: c}
}

// Create validates and persists a usage record.
func (s *UsageService) Create(c *gin.Context, input usage.CreateRecordDTO) (*usage.Record, error) {
	if input.Count < 1 {
		return nil, ErrInvalidCount
	}

	start, err := dates.Parse(input.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if input.EndDate != "" {
		end, err := dates.Parse(input.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if end.Before(start) {
			return nil, ErrInvalidDateRange
		}
	}

	rec := &usage.Record{
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		GPUType:     input.GPUType,
		ServiceName: input.ServiceName,
		Count:       input.Count,
		Source:      input.Source,
	}
	if err := s.Repos.Usage.Create(rec); err != nil {
		return nil, err
	}

	s.Cache.InvalidateCapacityViews(requestContext(c))
	utils.LogAuditWithConsole(c, "create", "gpu_usage", strconv.Itoa(int(rec.ID)), nil, rec, "usage recorded", s.Repos.Audit)
	return rec, nil
}

func (s *UsageService) List() ([]usage.Record, error) {
	return s.Repos.Usage.List()
}
