package repositories

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMAuthRepository is a GORM implementation of AuthRepository.
type GORMAuthRepository struct {
	db *gorm.DB
}

// NewGORMAuthRepository creates a new instance of GORMAuthRepository.
func NewGORMAuthRepository(db *gorm.DB) *GORMAuthRepository {
	return &GORMAuthRepository{
		db: db,
	}
}

// GetByProviderID looks up an identity link by (provider, providerId).
func (r *GORMAuthRepository) GetByProviderID(provider, providerID string) (*models.Auth, error) {
	var auth models.Auth
	err := r.db.First(&auth, "provider = ? AND provider_id = ?", provider, providerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get auth by provider identity: %w", err)
	}
	return &auth, nil
}

// Create inserts a new identity link.
func (r *GORMAuthRepository) Create(auth *models.Auth) error {
	if err := r.db.Create(auth).Error; err != nil {
		return fmt.Errorf("failed to create auth: %w", err)
	}
	return nil
}

// Touch updates lastUsedAt and backfills the avatar when the stored one is
// still null. Both writes run in one transaction.
func (r *GORMAuthRepository) Touch(id uint, avatar *string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Auth{}).Where("id = ?", id).
			Update("last_used_at", time.Now()).Error; err != nil {
			return err
		}
		if avatar != nil {
			if err := tx.Model(&models.Auth{}).
				Where("id = ? AND avatar IS NULL", id).
				Update("avatar", *avatar).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to touch auth %d: %w", id, err)
	}
	return nil
}

// ListByUser returns all links for a user, most recently used first.
func (r *GORMAuthRepository) ListByUser(userID uint) ([]models.Auth, error) {
	var auths []models.Auth
	if err := r.db.Where("user_id = ?", userID).
		Order("last_used_at DESC").Find(&auths).Error; err != nil {
		return nil, fmt.Errorf("failed to list auths for user %d: %w", userID, err)
	}
	return auths, nil
}

// RemoveOwned deletes an identity link after verifying, inside one
// transaction, that the row belongs to the user and is not their last
// login method.
func (r *GORMAuthRepository) RemoveOwned(id, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var auth models.Auth
		err := tx.First(&auth, "id = ? AND user_id = ?", id, userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load auth %d: %w", id, err)
		}

		var count int64
		if err := tx.Model(&models.Auth{}).
			Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count auths for user %d: %w", userID, err)
		}
		if count <= 1 {
			return models.ErrLastAuthMethod
		}

		if err := tx.Delete(&models.Auth{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete auth %d: %w", id, err)
		}
		return nil
	})
}
