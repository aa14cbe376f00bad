package application_test

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/jaewonk/gpu-admin-go/internal/application"
	"github.com/jaewonk/gpu-admin-go/internal/domain/pool"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
	"github.com/jaewonk/gpu-admin-go/internal/repository/mock"
	"github.com/jaewonk/gpu-admin-go/pkg/utils"
)

func setupPoolMocks(t *testing.T) (*application.PoolService, *mock.MockPoolRepo, *gin.Context) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockPool := mock.NewMockPoolRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)

	repos := &repository.Repos{
		Pool:  mockPool,
		Audit: mockAudit,
	}

	svc := application.NewPoolService(repos, nil)
	c, _ := gin.CreateTestContext(nil)

	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}

	return svc, mockPool, c
}

func TestPoolUpsert(t *testing.T) {
	t.Run("creates or replaces the total", func(t *testing.T) {
		svc, mockPool, c := setupPoolMocks(t)

		mockPool.EXPECT().GetByType("A100").Return(pool.GPUPool{GPUType: "A100", Total: 4}, nil)
		mockPool.EXPECT().Upsert(gomock.Any()).Return(nil)

		p, err := svc.Upsert(c, pool.UpsertPoolDTO{GPUType: "A100", Total: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Total != 10 {
			t.Fatalf("expected total 10, got %d", p.Total)
		}
	})

	t.Run("rejects a negative total", func(t *testing.T) {
		svc, _, c := setupPoolMocks(t)

		_, err := svc.Upsert(c, pool.UpsertPoolDTO{GPUType: "A100", Total: -1})
		if !errors.Is(err, application.ErrNegativeTotal) {
			t.Fatalf("expected ErrNegativeTotal, got %v", err)
		}
	})

	t.Run("zero is a valid total", func(t *testing.T) {
		svc, mockPool, c := setupPoolMocks(t)

		mockPool.EXPECT().GetByType("H100").Return(pool.GPUPool{}, errors.New("record not found"))
		mockPool.EXPECT().Upsert(gomock.Any()).Return(nil)

		p, err := svc.Upsert(c, pool.UpsertPoolDTO{GPUType: "H100", Total: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Total != 0 {
			t.Fatalf("expected total 0, got %d", p.Total)
		}
	})
}
