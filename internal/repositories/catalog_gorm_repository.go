package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMStateRepository is a GORM implementation of StateRepository.
type GORMStateRepository struct {
	db *gorm.DB
}

// NewGORMStateRepository creates a new instance of GORMStateRepository.
func NewGORMStateRepository(db *gorm.DB) *GORMStateRepository {
	return &GORMStateRepository{
		db: db,
	}
}

// GetAll retrieves all states ordered by abbreviation.
func (r *GORMStateRepository) GetAll() ([]models.State, error) {
	var states []models.State
	if err := r.db.Order("abbr").Find(&states).Error; err != nil {
		return nil, fmt.Errorf("failed to get states: %w", err)
	}
	return states, nil
}

// GORMShippingTypeRepository is a GORM implementation of ShippingTypeRepository.
type GORMShippingTypeRepository struct {
	db *gorm.DB
}

// NewGORMShippingTypeRepository creates a new instance of GORMShippingTypeRepository.
func NewGORMShippingTypeRepository(db *gorm.DB) *GORMShippingTypeRepository {
	return &GORMShippingTypeRepository{
		db: db,
	}
}

// GetAll retrieves all shipping types.
func (r *GORMShippingTypeRepository) GetAll() ([]models.ShippingType, error) {
	var types []models.ShippingType
	if err := r.db.Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to get shipping types: %w", err)
	}
	return types, nil
}

// GetByID retrieves a single shipping type.
func (r *GORMShippingTypeRepository) GetByID(id uint) (*models.ShippingType, error) {
	var st models.ShippingType
	if err := r.db.First(&st, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shipping type %d: %w", id, err)
	}
	return &st, nil
}
