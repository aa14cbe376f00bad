package application_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaewonk/gpu-admin-go/internal/application"
	"github.com/jaewonk/gpu-admin-go/internal/domain/pool"
	"github.com/jaewonk/gpu-admin-go/internal/domain/reservation"
	"github.com/jaewonk/gpu-admin-go/internal/domain/usage"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
	"github.com/jaewonk/gpu-admin-go/internal/repository/mock"
)

func TestSnapshotUsage(t *testing.T) {
	pools := []pool.GPUPool{
		{GPUType: "A100", Total: 10},
		{GPUType: "H100", Total: 4},
	}

	t.Run("sums counts per known type", func(t *testing.T) {
		records := []usage.Record{
			{GPUType: "A100", Count: 3},
			{GPUType: "A100", Count: 4},
			{GPUType: "H100", Count: 1},
		}

		used := application.SnapshotUsage(records, pools)
		assert.Equal(t, map[string]int{"A100": 7, "H100": 1}, used)
	})

	t.Run("every pool type present with zero default", func(t *testing.T) {
		used := application.SnapshotUsage(nil, pools)
		assert.Equal(t, map[string]int{"A100": 0, "H100": 0}, used)
	})

	t.Run("unknown types silently dropped", func(t *testing.T) {
		records := []usage.Record{
			{GPUType: "A100", Count: 2},
			{GPUType: "V100", Count: 99},
		}

		used := application.SnapshotUsage(records, pools)
		assert.Equal(t, 2, used["A100"])
		_, ok := used["V100"]
		assert.False(t, ok)
	})
}

func TestCurrentAvailability(t *testing.T) {
	t.Run("available is total minus used, sorted by type", func(t *testing.T) {
		pools := []pool.GPUPool{
			{GPUType: "H100", Total: 4},
			{GPUType: "A100", Total: 10},
		}
		used := map[string]int{"A100": 7, "H100": 1}

		rows := application.CurrentAvailability(pools, used)
		require.Len(t, rows, 2)
		assert.Equal(t, "A100", rows[0].GPUType)
		assert.Equal(t, 3, rows[0].Available)
		assert.Equal(t, "H100", rows[1].GPUType)
		assert.Equal(t, 3, rows[1].Available)
	})

	t.Run("over-allocation yields negative available", func(t *testing.T) {
		pools := []pool.GPUPool{{GPUType: "A100", Total: 2}}
		rows := application.CurrentAvailability(pools, map[string]int{"A100": 5})
		require.Len(t, rows, 1)
		assert.Equal(t, -3, rows[0].Available)
	})
}

func TestDailyTimeline(t *testing.T) {
	pools := []pool.GPUPool{
		{GPUType: "A100", Total: 8},
		{GPUType: "H100", Total: 4},
	}

	t.Run("expands inclusive ranges and pivots per day", func(t *testing.T) {
		records := []usage.Record{
			{StartDate: "2026-03-01", EndDate: "2026-03-03", GPUType: "A100", Count: 2},
			{StartDate: "2026-03-02", EndDate: "", GPUType: "A100", Count: 1},
		}

		rows := application.DailyTimeline(records, nil, pools)
		require.Len(t, rows, 3)

		assert.Equal(t, "2026-03-01", rows[0].Date)
		assert.Equal(t, 2, rows[0].Types["A100"].Used)
		assert.Equal(t, 6, rows[0].Types["A100"].Available)

		// single-day record stacks on the middle day
		assert.Equal(t, "2026-03-02", rows[1].Date)
		assert.Equal(t, 3, rows[1].Types["A100"].Used)

		// every pool type appears on every covered day
		assert.Equal(t, 0, rows[0].Types["H100"].Used)
		assert.Equal(t, 4, rows[0].Types["H100"].Available)
	})

	t.Run("range record equals the sum of single-day records", func(t *testing.T) {
		ranged := []usage.Record{
			{StartDate: "2026-04-01", EndDate: "2026-04-03", GPUType: "A100", Count: 2},
		}
		singles := []usage.Record{
			{StartDate: "2026-04-01", GPUType: "A100", Count: 2},
			{StartDate: "2026-04-02", GPUType: "A100", Count: 2},
			{StartDate: "2026-04-03", GPUType: "A100", Count: 2},
		}

		assert.Equal(t,
			application.DailyTimeline(singles, nil, pools),
			application.DailyTimeline(ranged, nil, pools))
	})

	t.Run("pending reservations contribute nothing", func(t *testing.T) {
		resvs := []reservation.Reservation{
			{StartDate: "2026-03-01", GPUType: "A100", Count: 5, Status: reservation.StatusPending},
		}

		rows := application.DailyTimeline(nil, resvs, pools)
		assert.Empty(t, rows)
	})

	t.Run("approved reservations stack on usage", func(t *testing.T) {
		records := []usage.Record{
			{StartDate: "2026-03-01", GPUType: "A100", Count: 2},
		}
		resvs := []reservation.Reservation{
			{StartDate: "2026-03-01", GPUType: "A100", Count: 5, Status: reservation.StatusApproved},
		}

		rows := application.DailyTimeline(records, resvs, pools)
		require.Len(t, rows, 1)
		assert.Equal(t, 7, rows[0].Types["A100"].Used)
		assert.Equal(t, 1, rows[0].Types["A100"].Available)
	})

	t.Run("malformed start drops the record from the pivot", func(t *testing.T) {
		records := []usage.Record{
			{StartDate: "not-a-date", GPUType: "A100", Count: 2},
		}

		rows := application.DailyTimeline(records, nil, pools)
		assert.Empty(t, rows)
	})

	t.Run("end before start degrades to the single start day", func(t *testing.T) {
		records := []usage.Record{
			{StartDate: "2026-03-05", EndDate: "2026-03-01", GPUType: "A100", Count: 1},
		}

		rows := application.DailyTimeline(records, nil, pools)
		require.Len(t, rows, 1)
		assert.Equal(t, "2026-03-05", rows[0].Date)
	})

	t.Run("rows sorted chronologically", func(t *testing.T) {
		records := []usage.Record{
			{StartDate: "2026-03-10", GPUType: "A100", Count: 1},
			{StartDate: "2026-02-28", GPUType: "A100", Count: 1},
			{StartDate: "2026-03-01", GPUType: "A100", Count: 1},
		}

		rows := application.DailyTimeline(records, nil, pools)
		require.Len(t, rows, 3)
		assert.Equal(t, "2026-02-28", rows[0].Date)
		assert.Equal(t, "2026-03-01", rows[1].Date)
		assert.Equal(t, "2026-03-10", rows[2].Date)
	})
}

func TestUsageDetails(t *testing.T) {
	records := []usage.Record{
		{ID: 1, StartDate: "2026-03-01", GPUType: "A100", ServiceName: "svc-a", Count: 2, Source: "manual"},
	}
	resvs := []reservation.Reservation{
		{ID: 7, StartDate: "2026-03-02", GPUType: "H100", ServiceName: "svc-b", Count: 1, Status: reservation.StatusApproved},
		{ID: 8, StartDate: "2026-03-03", GPUType: "H100", ServiceName: "svc-c", Count: 1, Status: reservation.StatusPending},
	}

	rows := application.UsageDetails(records, resvs)
	require.Len(t, rows, 2)

	assert.Equal(t, "manual", rows[0].Source)
	assert.Equal(t, application.SourceReservation, rows[1].Source)
	assert.Equal(t, "svc-b", rows[1].ServiceName)
}

func TestCapacityServicePoolStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockPool := mock.NewMockPoolRepo(ctrl)
	mockUsage := mock.NewMockUsageRepo(ctrl)

	repos := &repository.Repos{
		Pool:  mockPool,
		Usage: mockUsage,
	}
	svc := application.NewCapacityService(repos, nil)

	mockPool.EXPECT().List().Return([]pool.GPUPool{{GPUType: "A100", Total: 8}}, nil)
	mockUsage.EXPECT().List().Return([]usage.Record{
		{GPUType: "A100", Count: 3},
		{GPUType: "V100", Count: 5}, // orphan type, ignored
	}, nil)

	rows, err := svc.PoolStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Used)
	assert.Equal(t, 5, rows[0].Available)
}

func TestCapacityServiceTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockPool := mock.NewMockPoolRepo(ctrl)
	mockUsage := mock.NewMockUsageRepo(ctrl)
	mockResv := mock.NewMockReservationRepo(ctrl)

	repos := &repository.Repos{
		Pool:        mockPool,
		Usage:       mockUsage,
		Reservation: mockResv,
	}
	svc := application.NewCapacityService(repos, nil)

	mockPool.EXPECT().List().Return([]pool.GPUPool{{GPUType: "A100", Total: 8}}, nil)
	mockUsage.EXPECT().List().Return([]usage.Record{
		{StartDate: "2026-03-01", EndDate: "2026-03-02", GPUType: "A100", Count: 2},
	}, nil)
	mockResv.EXPECT().ListByStatus(reservation.StatusApproved).Return([]reservation.Reservation{
		{StartDate: "2026-03-02", GPUType: "A100", Count: 3, Status: reservation.StatusApproved},
	}, nil)

	rows, err := svc.Timeline(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Types["A100"].Used)
	assert.Equal(t, 5, rows[1].Types["A100"].Used)
}
