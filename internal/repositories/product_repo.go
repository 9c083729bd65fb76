package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	Categories() ([]string, error)
	Create(product *models.Product) error
}
