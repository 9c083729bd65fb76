package models

import "errors"

// Sentinel errors shared by repositories and services. Handlers match them
// with errors.Is to pick HTTP status codes.
var (
	// ErrNotFound means no row matched the lookup.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login endpoint cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken means a user with that email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrLastAuthMethod blocks removal of a user's only login method.
	ErrLastAuthMethod = errors.New("cannot remove last authentication method")

	// ErrNoProfileEmail means an OAuth profile carried no email address, so
	// no existing user can be matched and no new user can be created.
	ErrNoProfileEmail = errors.New("oauth profile has no usable email")
)
