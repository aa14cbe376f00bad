package application

import (
	"context"
	"sort"

	"github.com/jaewonk/gpu-admin-go/internal/cache"
	"github.com/jaewonk/gpu-admin-go/internal/domain/pool"
	"github.com/jaewonk/gpu-admin-go/internal/domain/reservation"
	"github.com/jaewonk/gpu-admin-go/internal/domain/usage"
	"github.com/jaewonk/gpu-admin-go/internal/domain/view"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
	"github.com/jaewonk/gpu-admin-go/pkg/dates"
)

// SourceReservation tags approved reservations in the combined detail view.
const SourceReservation = "reservation"

// CapacityService derives the capacity read models from the stored records.
// All derivations are pure functions of a consistent snapshot read; the
// Redis cache in front of them is best effort.
type CapacityService struct {
	Repos *repository.Repos
	Cache *cache.Cache
}

func NewCapacityService(repos *repository.Repos, c *cache.Cache) *CapacityService {
	return &CapacityService{Repos: repos, Cache: c}
}

// poolIndex is the single place deciding which gpu_type values are known.
// Records referencing anything else are silently dropped from aggregation.
func poolIndex(pools []pool.GPUPool) map[string]int {
	idx := make(map[string]int, len(pools))
	for _, p := range pools {
		idx[p.GPUType] = p.Total
	}
	return idx
}

// SnapshotUsage sums the count of every usage record per known GPU type.
// The sum is cumulative over all recorded history, not filtered to today;
// callers treating it as "current" usage accept that simplification. Exactly
// one entry per pool type comes back, zero when nothing matched.
func SnapshotUsage(records []usage.Record, pools []pool.GPUPool) map[string]int {
	known := poolIndex(pools)
	used := make(map[string]int, len(known))
	for t := range known {
		used[t] = 0
	}
	for _, rec := range records {
		if _, ok := known[rec.GPUType]; ok {
			used[rec.GPUType] += rec.Count
		}
	}
	return used
}

// CurrentAvailability builds the snapshot table, ordered by GPU type.
// Available goes negative on over-allocation; that is a reportable state,
// not an error.
func CurrentAvailability(pools []pool.GPUPool, used map[string]int) []view.PoolStatusRow {
	rows := make([]view.PoolStatusRow, 0, len(pools))
	for _, p := range pools {
		u := used[p.GPUType]
		rows = append(rows, view.PoolStatusRow{
			GPUType:   p.GPUType,
			Total:     p.Total,
			Used:      u,
			Available: p.Total - u,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].GPUType < rows[j].GPUType })
	return rows
}

// DailyTimeline expands every usage record and approved reservation into
// per-day contributions, then pivots into one row per date with used and
// available units for each pool type. The table is sparse: only dates
// covered by at least one record appear. ISO dates sort lexicographically,
// so plain string order is chronological.
func DailyTimeline(records []usage.Record, approved []reservation.Reservation, pools []pool.GPUPool) []view.TimelineRow {
	known := poolIndex(pools)

	daily := make(map[string]map[string]int)
	contribute := func(start, end, gpuType string, count int) {
		for _, day := range dates.Range(start, end) {
			if daily[day] == nil {
				daily[day] = make(map[string]int)
			}
			daily[day][gpuType] += count
		}
	}

	for _, rec := range records {
		contribute(rec.StartDate, rec.EndDate, rec.GPUType, rec.Count)
	}
	for _, resv := range approved {
		if resv.Status != reservation.StatusApproved {
			continue
		}
		contribute(resv.StartDate, resv.EndDate, resv.GPUType, resv.Count)
	}

	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)

	rows := make([]view.TimelineRow, 0, len(days))
	for _, day := range days {
		types := make(map[string]view.TypeUsage, len(known))
		for t, total := range known {
			u := daily[day][t]
			types[t] = view.TypeUsage{Used: u, Available: total - u}
		}
		rows = append(rows, view.TimelineRow{Date: day, Types: types})
	}
	return rows
}

// UsageDetails merges raw usage records with approved reservations tagged
// source "reservation", preserving record order within each stream.
func UsageDetails(records []usage.Record, approved []reservation.Reservation) []view.UsageDetailRow {
	rows := make([]view.UsageDetailRow, 0, len(records)+len(approved))
	for _, rec := range records {
		rows = append(rows, view.UsageDetailRow{
			ID:          rec.ID,
			StartDate:   rec.StartDate,
			EndDate:     rec.EndDate,
			GPUType:     rec.GPUType,
			ServiceName: rec.ServiceName,
			Count:       rec.Count,
			Source:      rec.Source,
		})
	}
	for _, resv := range approved {
		if resv.Status != reservation.StatusApproved {
			continue
		}
		rows = append(rows, view.UsageDetailRow{
			ID:          resv.ID,
			StartDate:   resv.StartDate,
			EndDate:     resv.EndDate,
			GPUType:     resv.GPUType,
			ServiceName: resv.ServiceName,
			Count:       resv.Count,
			Source:      SourceReservation,
		})
	}
	return rows
}

// PoolStatus returns the current-snapshot capacity table.
func (s *CapacityService) PoolStatus(ctx context.Context) ([]view.PoolStatusRow, error) {
	var cached []view.PoolStatusRow
	if s.Cache.GetJSON(ctx, cache.KeyPoolStatus, &cached) {
		return cached, nil
	}

	pools, err := s.Repos.Pool.List()
	if err != nil {
		return nil, err
	}
	records, err := s.Repos.Usage.List()
	if err != nil {
		return nil, err
	}

	rows := CurrentAvailability(pools, SnapshotUsage(records, pools))
	s.Cache.SetJSON(ctx, cache.KeyPoolStatus, rows)
	return rows, nil
}

// Timeline returns the daily pivot of used and available units.
func (s *CapacityService) Timeline(ctx context.Context) ([]view.TimelineRow, error) {
	var cached []view.TimelineRow
	if s.Cache.GetJSON(ctx, cache.KeyTimeline, &cached) {
		return cached, nil
	}

	pools, err := s.Repos.Pool.List()
	if err != nil {
		return nil, err
	}
	records, err := s.Repos.Usage.List()
	if err != nil {
		return nil, err
	}
	approved, err := s.Repos.Reservation.ListByStatus(reservation.StatusApproved)
	if err != nil {
		return nil, err
	}

	rows := DailyTimeline(records, approved, pools)
	s.Cache.SetJSON(ctx, cache.KeyTimeline, rows)
	return rows, nil
}

// Details returns the combined usage and approved-reservation table.
func (s *CapacityService) Details(ctx context.Context) ([]view.UsageDetailRow, error) {
	var cached []view.UsageDetailRow
	if s.Cache.GetJSON(ctx, cache.KeyDetails, &cached) {
		return cached, nil
	}

	records, err := s.Repos.Usage.List()
	if err != nil {
		return nil, err
	}
	approved, err := s.Repos.Reservation.ListByStatus(reservation.StatusApproved)
	if err != nil {
		return nil, err
	}

	rows := UsageDetails(records, approved)
	s.Cache.SetJSON(ctx, cache.KeyDetails, rows)
	return rows, nil
}
