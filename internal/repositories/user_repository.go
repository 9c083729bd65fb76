package repositories

import "storefront/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	// CreateWithAuth creates the user and its first identity link in a
	// single transaction.
	CreateWithAuth(user *models.User, auth *models.Auth) error
	GetByID(id uint) (*models.User, error)
	// GetByEmail matches case-insensitively.
	GetByEmail(email string) (*models.User, error)
	UpdateBilling(id uint, billing models.Address) error
	UpdateShipping(id uint, shipping models.Address) error
}
