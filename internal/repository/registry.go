package repository

import (
	"github.com/jaewonk/gpu-admin-go/internal/domain/registry"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RegistryRepo interface {
	Add(s *registry.Service) error
	List() ([]registry.Service, error)
	WithTx(tx *gorm.DB) RegistryRepo
}

type DBRegistryRepo struct {
	db *gorm.DB
}

func NewRegistryRepo(db *gorm.DB) *DBRegistryRepo {
	return &DBRegistryRepo{db: db}
}

// Add is insert-if-absent; re-registering an existing name is a no-op.
func (r *DBRegistryRepo) Add(s *registry.Service) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(s).Error
}

func (r *DBRegistryRepo) List() ([]registry.Service, error) {
	var services []registry.Service
	err := r.db.Order("service_name").Find(&services).Error
	return services, err
}

func (r *DBRegistryRepo) WithTx(tx *gorm.DB) RegistryRepo {
	if tx == nil {
		return r
	}
	return &DBRegistryRepo{db: tx}
}
