package application_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/jaewonk/gpu-admin-go/internal/application"
	"github.com/jaewonk/gpu-admin-go/internal/domain/registry"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
	"github.com/jaewonk/gpu-admin-go/internal/repository/mock"
	"github.com/jaewonk/gpu-admin-go/pkg/utils"
)

func TestRegistryAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRegistry := mock.NewMockRegistryRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)

	repos := &repository.Repos{
		Registry: mockRegistry,
		Audit:    mockAudit,
	}

	svc := application.NewRegistryService(repos, nil)
	c, _ := gin.CreateTestContext(nil)

	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}

	// the repository swallows duplicates, so Add is idempotent at the service
	mockRegistry.EXPECT().Add(gomock.Any()).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		s, err := svc.Add(c, registry.AddServiceDTO{ServiceName: "svc-a"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ServiceName != "svc-a" {
			t.Fatalf("expected svc-a, got %s", s.ServiceName)
		}
	}
}
