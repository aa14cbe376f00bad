package application_test

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/jaewonk/gpu-admin-go/internal/application"
	"github.com/jaewonk/gpu-admin-go/internal/domain/reservation"
	"github.com/jaewonk/gpu-admin-go/internal/repository"
	"github.com/jaewonk/gpu-admin-go/internal/repository/mock"
	"github.com/jaewonk/gpu-admin-go/pkg/dates"
	"github.com/jaewonk/gpu-admin-go/pkg/utils"
)

func setupReservationMocks(t *testing.T) (*application.ReservationService,
	*mock.MockReservationRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockResv := mock.NewMockReservationRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)

	repos := &repository.Repos{
		Reservation: mockResv,
		Audit:       mockAudit,
	}

	svc := application.NewReservationService(repos, nil)
	svc.RequiredApprovals = 3
	svc.MaxReservationDays = 90

	c, _ := gin.CreateTestContext(nil)

	// mock utils globally
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}

	return svc, mockResv, c
}

func validInput() reservation.CreateReservationDTO {
	start := dates.Today().AddDate(0, 0, 1)
	return reservation.CreateReservationDTO{
		StartDate:   dates.Format(start),
		EndDate:     dates.Format(start.AddDate(0, 0, 2)),
		GPUType:     "A100",
		ServiceName: "svc-a",
		Count:       2,
	}
}

func TestReservationCreate(t *testing.T) {
	t.Run("persists a pending reservation with no approvers", func(t *testing.T) {
		svc, mockResv, c := setupReservationMocks(t)

		mockResv.EXPECT().Create(gomock.Any()).Do(func(r *reservation.Reservation) {
			r.ID = 1
		}).Return(nil)

		resv, err := svc.Create(c, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resv.Status != reservation.StatusPending {
			t.Fatalf("expected pending, got %s", resv.Status)
		}
		if resv.Approvers != "" {
			t.Fatalf("expected empty approvers, got %q", resv.Approvers)
		}
	})

	t.Run("rejects invalid input before persisting", func(t *testing.T) {
		svc, _, c := setupReservationMocks(t)

		cases := []struct {
			name    string
			mutate  func(*reservation.CreateReservationDTO)
			wantErr error
		}{
			{"zero count", func(d *reservation.CreateReservationDTO) { d.Count = 0 }, application.ErrInvalidCount},
			{"bad start date", func(d *reservation.CreateReservationDTO) { d.StartDate = "03/01/2026" }, application.ErrInvalidDate},
			{"end before start", func(d *reservation.CreateReservationDTO) {
				d.EndDate = dates.Format(dates.Today().AddDate(0, 0, -5))
			}, application.ErrInvalidDateRange},
			{"start in the past", func(d *reservation.CreateReservationDTO) {
				d.StartDate = dates.Format(dates.Today().AddDate(0, 0, -1))
				d.EndDate = ""
			}, application.ErrStartInPast},
			{"start beyond horizon", func(d *reservation.CreateReservationDTO) {
				d.StartDate = dates.Format(dates.Today().AddDate(0, 0, 91))
				d.EndDate = ""
			}, application.ErrStartTooFarAhead},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				input := validInput()
				tc.mutate(&input)

				_, err := svc.Create(c, input)
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})
}

func TestReservationApprove(t *testing.T) {
	t.Run("three approvals flip pending to approved", func(t *testing.T) {
		svc, mockResv, c := setupReservationMocks(t)

		stored := reservation.Reservation{
			ID:        1,
			StartDate: dates.Format(dates.Today().AddDate(0, 0, 1)),
			GPUType:   "A100",
			Count:     1,
			Status:    reservation.StatusPending,
		}

		mockResv.EXPECT().GetByIDForUpdate(uint(1)).DoAndReturn(func(id uint) (reservation.Reservation, error) {
			return stored, nil
		}).Times(3)
		mockResv.EXPECT().Update(gomock.Any()).Do(func(r *reservation.Reservation) {
			stored = *r
		}).Return(nil).Times(3)

		wantApprovers := []string{"member1", "member1,member2", "member1,member2,member3"}
		for i := 0; i < 3; i++ {
			resv, err := svc.Approve(c, 1)
			if err != nil {
				t.Fatalf("approval %d: unexpected error: %v", i+1, err)
			}
			if resv.Approvers != wantApprovers[i] {
				t.Fatalf("approval %d: expected approvers %q, got %q", i+1, wantApprovers[i], resv.Approvers)
			}
			wantStatus := reservation.StatusPending
			if i == 2 {
				wantStatus = reservation.StatusApproved
			}
			if resv.Status != wantStatus {
				t.Fatalf("approval %d: expected status %s, got %s", i+1, wantStatus, resv.Status)
			}
		}
	})

	t.Run("approving an approved reservation fails", func(t *testing.T) {
		svc, mockResv, c := setupReservationMocks(t)

		mockResv.EXPECT().GetByIDForUpdate(uint(2)).Return(reservation.Reservation{
			ID:        2,
			Status:    reservation.StatusApproved,
			Approvers: "member1,member2,member3",
		}, nil)

		_, err := svc.Approve(c, 2)
		if !errors.Is(err, application.ErrAlreadyApproved) {
			t.Fatalf("expected ErrAlreadyApproved, got %v", err)
		}
	})

	t.Run("missing reservation maps to not found", func(t *testing.T) {
		svc, mockResv, c := setupReservationMocks(t)

		mockResv.EXPECT().GetByIDForUpdate(uint(3)).Return(reservation.Reservation{}, errors.New("record not found"))

		_, err := svc.Approve(c, 3)
		if !errors.Is(err, application.ErrReservationNotFound) {
			t.Fatalf("expected ErrReservationNotFound, got %v", err)
		}
	})

	t.Run("duplicate approver identifier is not appended twice", func(t *testing.T) {
		svc, mockResv, c := setupReservationMocks(t)

		// a row already carrying member2 in the slot the synthesis would pick
		mockResv.EXPECT().GetByIDForUpdate(uint(4)).Return(reservation.Reservation{
			ID:        4,
			Status:    reservation.StatusPending,
			Approvers: "member2",
		}, nil)
		mockResv.EXPECT().Update(gomock.Any()).Return(nil)

		resv, err := svc.Approve(c, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resv.Approvers != "member2" {
			t.Fatalf("expected approvers unchanged, got %q", resv.Approvers)
		}
		if resv.Status != reservation.StatusPending {
			t.Fatalf("expected still pending, got %s", resv.Status)
		}
	})
}

func TestReservationDelete(t *testing.T) {
	t.Run("deletes regardless of status", func(t *testing.T) {
		svc, mockResv, c := setupReservationMocks(t)

		for _, status := range []reservation.Status{reservation.StatusPending, reservation.StatusApproved} {
			mockResv.EXPECT().GetByID(uint(5)).Return(reservation.Reservation{ID: 5, Status: status}, nil)
			mockResv.EXPECT().Delete(uint(5)).Return(nil)

			if err := svc.Delete(c, 5); err != nil {
				t.Fatalf("delete with status %s: unexpected error: %v", status, err)
			}
		}
	})

	t.Run("missing reservation maps to not found", func(t *testing.T) {
		svc, mockResv, c := setupReservationMocks(t)

		mockResv.EXPECT().GetByID(uint(6)).Return(reservation.Reservation{}, errors.New("record not found"))

		if err := svc.Delete(c, 6); !errors.Is(err, application.ErrReservationNotFound) {
			t.Fatalf("expected ErrReservationNotFound, got %v", err)
		}
	})
}

// Quorum is a policy knob, not a constant baked into the state machine.
func TestReservationQuorumConfigurable(t *testing.T) {
	svc, mockResv, c := setupReservationMocks(t)
	svc.RequiredApprovals = 1

	mockResv.EXPECT().GetByIDForUpdate(uint(7)).Return(reservation.Reservation{
		ID:     7,
		Status: reservation.StatusPending,
	}, nil)
	mockResv.EXPECT().Update(gomock.Any()).Return(nil)

	resv, err := svc.Approve(c, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resv.Status != reservation.StatusApproved {
		t.Fatalf("expected approved after single approval, got %s", resv.Status)
	}
}
