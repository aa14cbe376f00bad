package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Pool        PoolRepo
	Registry    RegistryRepo
	Usage       UsageRepo
	Reservation ReservationRepo
	Audit       AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Pool:        NewPoolRepo(db),
		Registry:    NewRegistryRepo(db),
		Usage:       NewUsageRepo(db),
		Reservation: NewReservationRepo(db),
		Audit:       NewAuditRepo(db),
		db:          db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	if tx == nil {
		return r
	}
	return &Repos{
		Pool:        r.Pool.WithTx(tx),
		Registry:    r.Registry.WithTx(tx),
		Usage:       r.Usage.WithTx(tx),
		Reservation: r.Reservation.WithTx(tx),
		Audit:       r.Audit.WithTx(tx),
		db:          tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		// Repos assembled without a live handle (mock setups) run the
		// callback directly.
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
