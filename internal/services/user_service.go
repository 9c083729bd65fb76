package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// UserService handles business logic related to user profiles.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetUserByID retrieves a user's full profile.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateBilling replaces the user's billing address snapshot.
func (s *UserService) UpdateBilling(id uint, billing models.Address) error {
	return s.repo.UpdateBilling(id, billing)
}

// UpdateShipping replaces the user's shipping address snapshot.
func (s *UserService) UpdateShipping(id uint, shipping models.Address) error {
	return s.repo.UpdateShipping(id, shipping)
}
