package repository

import (
	"github.com/jaewonk/gpu-admin-go/internal/domain/pool"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PoolRepo interface {
	Upsert(p *pool.GPUPool) error
	GetByType(gpuType string) (pool.GPUPool, error)
	List() ([]pool.GPUPool, error)
	WithTx(tx *gorm.DB) PoolRepo
}

type DBPoolRepo struct {
	db *gorm.DB
}

func NewPoolRepo(db *gorm.DB) *DBPoolRepo {
	return &DBPoolRepo{db: db}
}

// Upsert is keyed on gpu_type, last write wins on total.
func (r *DBPoolRepo) Upsert(p *pool.GPUPool) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "gpu_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"total"}),
	}).Create(p).Error
}

func (r *DBPoolRepo) GetByType(gpuType string) (pool.GPUPool, error) {
	var p pool.GPUPool
	err := r.db.First(&p, "gpu_type = ?", gpuType).Error
	return p, err
}

func (r *DBPoolRepo) List() ([]pool.GPUPool, error) {
	var pools []pool.GPUPool
	err := r.db.Order("gpu_type").Find(&pools).Error
	return pools, err
}

func (r *DBPoolRepo) WithTx(tx *gorm.DB) PoolRepo {
	if tx == nil {
		return r
	}
	return &DBPoolRepo{db: tx}
}
