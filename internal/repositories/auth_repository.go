package repositories

import "storefront/internal/models"

// AuthRepository defines the interface for identity-link data access.
type AuthRepository interface {
	// GetByProviderID looks up a link by its (provider, providerId) pair.
	// Returns (nil, nil) when no row matches so callers can branch without
	// error juggling.
	GetByProviderID(provider, providerID string) (*models.Auth, error)
	Create(auth *models.Auth) error
	// Touch bumps lastUsedAt and, when avatar is non-nil, backfills the
	// stored avatar if it is currently unset.
	Touch(id uint, avatar *string) error
	// ListByUser returns the user's links newest-used first.
	ListByUser(userID uint) ([]models.Auth, error)
	// RemoveOwned deletes the link if it belongs to the user and is not the
	// user's last one.
	RemoveOwned(id, userID uint) error
}
