package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/oauth"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, password login, the OAuth identity
// linking flow and auth-method management.
type AuthService struct {
	users  repositories.UserRepository
	auths  repositories.AuthRepository
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repositories.UserRepository, auths repositories.AuthRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		users:  users,
		auths:  auths,
		tokens: tokens,
	}
}

// AuthStatus is the payload of the auth-status endpoint: the resolved user,
// their most recently used avatar and the linked provider names.
type AuthStatus struct {
	ID        uint     `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Avatar    *string  `json:"avatar"`
	Providers []string `json:"authProviders"`
}

// Register creates a user with a bcrypt-hashed password.
func (s *AuthService) Register(firstName, lastName, email, password string) (*models.User, error) {
	if existing, err := s.users.GetByEmail(email); err == nil && existing != nil {
		return nil, models.ErrEmailTaken
	} else if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     strings.ToLower(email),
		Password:  string(hash),
		Billing:   models.Address{FirstName: firstName, LastName: lastName},
		Shipping:  models.Address{FirstName: firstName, LastName: lastName},
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates an email/password pair and issues a session token.
// Unknown email and wrong password produce the same ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			log.Printf("Login lookup failed: %v", err)
		}
		return "", nil, models.ErrInvalidCredentials
	}

	if user.Password == "" {
		// OAuth-only account, no password to compare against.
		return "", nil, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ResolveProfile runs the identity-linking flow for an OAuth profile:
//
//  1. An existing (provider, providerId) link wins: its lastUsedAt is
//     bumped, the avatar backfilled if missing, and the linked user returned.
//  2. Otherwise a user matched by the profile email gets a new link
//     (account merge).
//  3. Otherwise a fresh user plus link are created atomically, names split
//     from the display name.
//
// A profile without an email that matches no link fails with
// ErrNoProfileEmail.
func (s *AuthService) ResolveProfile(provider string, profile oauth.Profile) (*models.User, error) {
	if profile.ProviderID == "" {
		return nil, fmt.Errorf("profile has no provider id")
	}

	var avatar *string
	if profile.AvatarURL != "" {
		a := profile.AvatarURL
		avatar = &a
	}

	existing, err := s.auths.GetByProviderID(provider, profile.ProviderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.auths.Touch(existing.ID, avatar); err != nil {
			return nil, err
		}
		return s.users.GetByID(existing.UserID)
	}

	email := strings.ToLower(profile.Email())
	if email == "" {
		return nil, models.ErrNoProfileEmail
	}

	user, err := s.users.GetByEmail(email)
	if err == nil {
		// Account merge: link this provider to the user that registered
		// with the same email earlier.
		auth := &models.Auth{
			Provider:   provider,
			ProviderID: profile.ProviderID,
			Avatar:     avatar,
			UserID:     user.ID,
		}
		if err := s.auths.Create(auth); err != nil {
			return nil, err
		}
		log.Printf("Linked %s identity to existing user %d", provider, user.ID)
		return user, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	firstName, lastName := splitDisplayName(profile.DisplayName)
	newUser := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Billing:   models.Address{FirstName: firstName, LastName: lastName},
		Shipping:  models.Address{FirstName: firstName, LastName: lastName},
	}
	newAuth := &models.Auth{
		Provider:   provider,
		ProviderID: profile.ProviderID,
		Avatar:     avatar,
	}
	if err := s.users.CreateWithAuth(newUser, newAuth); err != nil {
		return nil, err
	}
	log.Printf("Created user %d from %s profile", newUser.ID, provider)
	return newUser, nil
}

// Status resolves the auth-status payload for a user: profile fields, the
// avatar of the most recently used link that has one, and all provider names.
func (s *AuthService) Status(userID uint) (*AuthStatus, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	auths, err := s.auths.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	status := &AuthStatus{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Providers: make([]string, 0, len(auths)),
	}
	for _, a := range auths {
		status.Providers = append(status.Providers, a.Provider)
		if status.Avatar == nil && a.Avatar != nil {
			status.Avatar = a.Avatar
		}
	}
	return status, nil
}

// ListAuthMethods returns the user's identity links, newest-used first.
func (s *AuthService) ListAuthMethods(userID uint) ([]models.Auth, error) {
	return s.auths.ListByUser(userID)
}

// RemoveAuthMethod deletes one of the user's identity links. Removal of the
// last link is refused so the account always keeps a way to sign in.
func (s *AuthService) RemoveAuthMethod(authID, userID uint) error {
	return s.auths.RemoveOwned(authID, userID)
}

// splitDisplayName derives first and last name from an OAuth display name:
// first token becomes the first name, the final token the last name when
// more than one token is present.
func splitDisplayName(displayName string) (string, string) {
	parts := strings.Fields(displayName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[len(parts)-1]
	}
}
