package application

import (
	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/cache"
	"github.com/jaewonk/gpu-admin-go/internal/domain/registry"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
	"github.com/jaewonk/gpu-admin-go/pkg/utils"
)

// RegistryService manages the append-only service name list.
type RegistryService struct {
	Repos *repository.Repos
	Cache *cache.Cache
}

func NewRegistryService(repos *repository.Repos, c *cache.Cache) *RegistryService {
	return &RegistryService{Repos: repos, Cache: c}
}

// Add registers a service name; registering an existing name is a no-op.
func (s *RegistryService) Add(c *gin.Context, input registry.AddServiceDTO) (*registry.Service, error) {
	svc := &registry.Service{ServiceName: input.ServiceName}
	if err := s.Repos.Registry.Add(svc); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "add", "service", input.ServiceName, nil, svc, "service registered", s.Repos.Audit)
	return svc, nil
}

func (s *RegistryService) List() ([]registry.Service, error) {
	return s.Repos.Registry.List()
}
