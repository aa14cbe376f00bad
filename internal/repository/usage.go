package repository

import (
	"github.com/jaewonk/gpu-admin-go/internal/domain/usage"
	"gorm.io/gorm"
)

type UsageRepo interface {
	Create(rec *usage.Record) error
	GetByID(id uint) (usage.Record, error)
	List() ([]usage.Record, error)
	WithTx(tx *gorm.DB) UsageRepo
}

type DBUsageRepo struct {
	db *gorm.DB
}

func NewUsageRepo(db *gorm.DB) *DBUsageRepo {
	return &DBUsageRepo{db: db}
}

func (r *DBUsageRepo) Create(rec *usage.Record) error {
	return r.db.Create(rec).Error
}

func (r *DBUsageRepo) GetByID(id uint) (usage.Record, error) {
	var rec usage.Record
	err := r.db.First(&rec, id).Error
	return rec, err
}

func (r *DBUsageRepo) List() ([]usage.Record, error) {
	var records []usage.Record
	err := r.db.Order("id").Find(&records).Error
	return records, err
}

func (r *DBUsageRepo) WithTx(tx *gorm.DB) UsageRepo {
	if tx == nil {
		return r
	}
	return &DBUsageRepo{db: tx}
}
