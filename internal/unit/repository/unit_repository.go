package repository

import (
	"errors"

	unitdomain "crockpot-backend/internal/unit/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnitRepository defines the interface for unit data access
type UnitRepository interface {
	Create(unit *unitdomain.Unit) error
	FindAll() ([]unitdomain.Unit, error)
	FindByID(id string) (*unitdomain.Unit, error)
}

type unitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) Create(unit *unitdomain.Unit) error {
	unit.ID = uuid.New().String()
	return r.db.Create(unit).Error
}

func (r *unitRepository) FindAll() ([]unitdomain.Unit, error) {
	var units []unitdomain.Unit
	if err := r.db.Order("name").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *unitRepository) FindByID(id string) (*unitdomain.Unit, error) {
	var unit unitdomain.Unit
	err := r.db.Where("id = ?", id).First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &unit, nil
}
