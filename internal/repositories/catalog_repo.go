package repositories

import "storefront/internal/models"

// StateRepository defines the interface for state data access.
type StateRepository interface {
	GetAll() ([]models.State, error)
}

// ShippingTypeRepository defines the interface for shipping-type data access.
type ShippingTypeRepository interface {
	GetAll() ([]models.ShippingType, error)
	GetByID(id uint) (*models.ShippingType, error)
}
