package application

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/cache"
	"github.com/jaewonk/gpu-admin-go/internal/config"
	"github.com/jaewonk/gpu-admin-go/internal/domain/reservation"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
	"github.com/jaewonk/gpu-admin-go/pkg/dates"
	"github.com/jaewonk/gpu-admin-go/pkg/utils"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyApproved     = errors.New("reservation is already approved")
	ErrInvalidCount        = errors.New("count must be at least 1")
	ErrInvalidDate         = errors.New("dates must be formatted YYYY-MM-DD")
	ErrInvalidDateRange    = errors.New("end_date must not precede start_date")
	ErrStartInPast         = errors.New("start_date must not precede today")
	ErrStartTooFarAhead    = errors.New("start_date is beyond the reservation horizon")
)

// ReservationService drives the approval state machine. A reservation is
// pending until it has collected RequiredApprovals distinct approvers; there
// is no rejected state, only deletion.
type ReservationService struct {
	Repos *repository.Repos
	Cache *cache.Cache

	// RequiredApprovals and MaxReservationDays come from config; fields so
	// tests can vary the policy.
	RequiredApprovals  int
	MaxReservationDays int
}

func NewReservationService(repos *repository.Repos, c *cache.Cache) *ReservationService {
	return &ReservationService{
		Repos:              repos,
		Cache:              c,
		RequiredApprovals:  config.RequiredApprovals,
		MaxReservationDays: config.MaxReservationDays,
	}
}

// Create validates and persists a new pending reservation. Validation
// rejects before anything is written.
func (s *ReservationService) Create(c *gin.Context, input reservation.CreateReservationDTO) (*reservation.Reservation, error) {
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

	today := dates.Today()
	if start.Before(today) {
		return nil, ErrStartInPast
	}
	if s.MaxReservationDays > 0 && start.After(today.AddDate(0, 0, s.MaxReservationDays)) {
		return nil, ErrStartTooFarAhead
	}

	resv := &reservation.Reservation{
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		GPUType:     input.GPUType,
		ServiceName: input.ServiceName,
		Count:       input.Count,
		Status:      reservation.StatusPending,
		Approvers:   "",
	}
	if err := s.Repos.Reservation.Create(resv); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "reservation", strconv.Itoa(int(resv.ID)), nil, resv, "reservation requested", s.Repos.Audit)
	return resv, nil
}

// Approve appends the next positional approver and flips the status once the
// quorum is reached. The row lock inside the transaction serializes
// concurrent approvals on the same reservation; without it two callers
// reading the same approver count would synthesize the same identifier and
// silently under-count quorum progress.
func (s *ReservationService) Approve(c *gin.Context, id uint) (*reservation.Reservation, error) {
	var updated reservation.Reservation

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		resv, err := tx.Reservation.GetByIDForUpdate(id)
		if err != nil {
			return ErrReservationNotFound
		}
		if resv.Status == reservation.StatusApproved {
			return ErrAlreadyApproved
		}

		// Approvals are positional member slots, not acting-user identity.
		next := fmt.Sprintf("member%d", len(resv.ApproverList())+1)
		resv.AddApprover(next)

		if len(resv.ApproverList()) >= s.RequiredApprovals {
			resv.Status = reservation.StatusApproved
		}

		if err := tx.Reservation.Update(&resv); err != nil {
			return err
		}
		updated = resv
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status == reservation.StatusApproved {
		// Newly approved reservations join the capacity ledger.
		s.Cache.InvalidateCapacityViews(requestContext(c))
	}

	utils.LogAuditWithConsole(c, "approve", "reservation", strconv.Itoa(int(updated.ID)), nil, &updated, "reservation approval", s.Repos.Audit)
	return &updated, nil
}

// Delete removes a reservation unconditionally, whatever its status.
func (s *ReservationService) Delete(c *gin.Context, id uint) error {
	resv, err := s.Repos.Reservation.GetByID(id)
	if err != nil {
		return ErrReservationNotFound
	}

	if err := s.Repos.Reservation.Delete(id); err != nil {
		return err
	}

	if resv.Status == reservation.StatusApproved {
		s.Cache.InvalidateCapacityViews(requestContext(c))
	}

	utils.LogAuditWithConsole(c, "delete", "reservation", strconv.Itoa(int(id)), &resv, nil, "reservation cancelled", s.Repos.Audit)
	return nil
}

// List returns every reservation for the status board.
func (s *ReservationService) List() ([]reservation.Reservation, error) {
	return s.Repos.Reservation.List()
}
