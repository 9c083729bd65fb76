package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create persists the order and its line items in one transaction.
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByUser(userID uint) ([]models.Order, error)
}
