package repositories

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user. Email is normalized to lower case before the
// insert; a duplicate email surfaces as models.ErrEmailTaken.
func (r *GORMUserRepository) Create(user *models.User) error {
	user.Email = strings.ToLower(user.Email)
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// CreateWithAuth creates a user and its first auth row in one transaction.
// If a concurrent request created the same email first, the unique index
// turns the second insert into models.ErrEmailTaken instead of a duplicate
// user.
func (r *GORMUserRepository) CreateWithAuth(user *models.User, auth *models.Auth) error {
	user.Email = strings.ToLower(user.Email)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		auth.UserID = user.ID
		return tx.Create(auth).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user with auth: %w", err)
	}
	return nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "LOWER(email) = ?", strings.ToLower(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// UpdateBilling replaces the user's billing address snapshot.
func (r *GORMUserRepository) UpdateBilling(id uint, billing models.Address) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"billing_first_name": billing.FirstName,
			"billing_last_name":  billing.LastName,
			"billing_address1":   billing.Address1,
			"billing_address2":   billing.Address2,
			"billing_city":       billing.City,
			"billing_state":      billing.State,
			"billing_zip":        billing.Zip,
			"billing_phone":      billing.Phone,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update billing for user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdateShipping replaces the user's shipping address snapshot.
func (r *GORMUserRepository) UpdateShipping(id uint, shipping models.Address) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"shipping_first_name": shipping.FirstName,
			"shipping_last_name":  shipping.LastName,
			"shipping_address1":   shipping.Address1,
			"shipping_address2":   shipping.Address2,
			"shipping_city":       shipping.City,
			"shipping_state":      shipping.State,
			"shipping_zip":        shipping.Zip,
			"shipping_phone":      shipping.Phone,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update shipping for user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
