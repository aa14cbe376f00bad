package repository

import (
	"github.com/jaewonk/gpu-admin-go/internal/domain/reservation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationRepo interface {
	Create(resv *reservation.Reservation) error
	GetByID(id uint) (reservation.Reservation, error)
	// GetByIDForUpdate takes a row lock so concurrent approvals on the same
	// reservation serialize. Only meaningful inside a transaction.
	GetByIDForUpdate(id uint) (reservation.Reservation, error)
	Update(resv *reservation.Reservation) error
	Delete(id uint) error
	List() ([]reservation.Reservation, error)
	ListByStatus(status reservation.Status) ([]reservation.Reservation, error)
	WithTx(tx *gorm.DB) ReservationRepo
}

type DBReservationRepo struct {
	db *gorm.DB
}

func NewReservationRepo(db *gorm.DB) *DBReservationRepo {
	return &DBReservationRepo{db: db}
}

func (r *DBReservationRepo) Create(resv *reservation.Reservation) error {
	return r.db.Create(resv).Error
}

func (r *DBReservationRepo) GetByID(id uint) (reservation.Reservation, error) {
	var resv reservation.Reservation
	err := r.db.First(&resv, id).Error
	return resv, err
}

func (r *DBReservationRepo) GetByIDForUpdate(id uint) (reservation.Reservation, error) {
	var resv reservation.Reservation
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&resv, id).Error
	return resv, err
}

func (r *DBReservationRepo) Update(resv *reservation.Reservation) error {
	return r.db.Save(resv).Error
}

func (r *DBReservationRepo) Delete(id uint) error {
	return r.db.Delete(&reservation.Reservation{}, id).Error
}

func (r *DBReservationRepo) List() ([]reservation.Reservation, error) {
	var resvs []reservation.Reservation
	err := r.db.Order("id").Find(&resvs).Error
	return resvs, err
}

func (r *DBReservationRepo) ListByStatus(status reservation.Status) ([]reservation.Reservation, error) {
	var resvs []reservation.Reservation
	err := r.db.Where("status = ?", status).Order("id").Find(&resvs).Error
	return resvs, err
}

func (r *DBReservationRepo) WithTx(tx *gorm.DB) ReservationRepo {
	if tx == nil {
		return r
	}
	return &DBReservationRepo{db: tx}
}
