package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/url"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"
	"storefront/pkg/oauth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const stateCookie = "oauth_state"

// AuthHandler handles HTTP requests for authentication: password login,
// registration, the OAuth redirect/callback pairs and auth-method management.
type AuthHandler struct {
	authService *services.AuthService
	tokens      *services.TokenService
	providers   []oauth.Provider
	clientURL   string
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokens *services.TokenService, providers []oauth.Provider, clientURL string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
		providers:   providers,
		clientURL:   clientURL,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	for _, p := range h.providers {
		authRoutes.Get("/"+p.Name(), h.handleOAuthRedirect(p))
		authRoutes.Get("/"+p.Name()+"/callback", h.handleOAuthCallback(p))
	}
}

// RegisterProtectedRoutes registers the routes that need a bearer token.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Get("/auth/me", h.HandleMe)

	userAuth := router.Group("/user-auth")
	userAuth.Get("/", h.HandleListAuthMethods)
	userAuth.Delete("/:id", h.HandleRemoveAuthMethod)
}

// RegisterRequest is the request body for registration.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": validationFields(err),
		})
	}

	user, err := h.authService.Register(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Email already registered",
			})
		}
		log.Printf("Error registering user: %v", err)
		return serverError(c)
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":  fiber.Map{"user": publicUser(user)},
		"token": token,
	})
}

// LoginRequest is the request body for password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles email/password login and issues a session token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		log.Printf("Error during login: %v", err)
		return serverError(c)
	}

	return c.JSON(fiber.Map{
		"data":  fiber.Map{"user": publicUser(user)},
		"token": token,
	})
}

// handleOAuthRedirect sends the browser to the provider's authorization
// page with a fresh state nonce, remembered in a short-lived cookie.
func (h *AuthHandler) handleOAuthRedirect(provider oauth.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := uuid.New().String()
		c.Cookie(&fiber.Cookie{
			Name:     stateCookie,
			Value:    state,
			MaxAge:   300,
			HTTPOnly: true,
			SameSite: "Lax",
		})
		return c.Redirect(provider.LoginURL(state), fiber.StatusFound)
	}
}

// handleOAuthCallback finishes the provider handshake, runs the identity
// linking flow and redirects the browser back to the client with a token.
// Failures never leak past this handler; the browser lands on the login
// error page instead.
func (h *AuthHandler) handleOAuthCallback(provider oauth.Provider) fiber.Handler {
	loginError := func(c *fiber.Ctx, code string) error {
		return c.Redirect(h.clientURL+"/login?error="+code, fiber.StatusFound)
	}

	return func(c *fiber.Ctx) error {
		if c.Query("error") != "" {
			return loginError(c, "true")
		}

		state := c.Query("state")
		if state == "" || state != c.Cookies(stateCookie) {
			return loginError(c, "state_mismatch")
		}

		code := c.Query("code")
		if code == "" {
			return loginError(c, "true")
		}

		profile, err := provider.Exchange(c.Context(), code)
		if err != nil {
			log.Printf("OAuth exchange with %s failed: %v", provider.Name(), err)
			return loginError(c, "true")
		}

		user, err := h.authService.ResolveProfile(provider.Name(), *profile)
		if err != nil {
			log.Printf("Identity linking for %s failed: %v", provider.Name(), err)
			return loginError(c, "auth_failed")
		}

		token, err := h.tokens.Issue(user.ID)
		if err != nil {
			log.Printf("Error issuing token: %v", err)
			return loginError(c, "auth_failed")
		}

		redirect := fmt.Sprintf("%s/auth/callback?token=%s&provider=%s",
			h.clientURL, url.QueryEscape(token), provider.Name())
		return c.Redirect(redirect, fiber.StatusFound)
	}
}

// HandleMe returns the authenticated user's auth status: profile fields,
// most recently used avatar and linked provider names.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	status, err := h.authService.Status(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		log.Printf("Error resolving auth status: %v", err)
		return serverError(c)
	}

	return c.JSON(fiber.Map{
		"isValid": true,
		"user":    status,
	})
}

// HandleListAuthMethods returns the user's linked providers.
func (h *AuthHandler) HandleListAuthMethods(c *fiber.Ctx) error {
	auths, err := h.authService.ListAuthMethods(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing auth methods: %v", err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"authProviders": auths},
	})
}

// HandleRemoveAuthMethod unlinks one provider, refusing to drop the last one.
func (h *AuthHandler) HandleRemoveAuthMethod(c *fiber.Ctx) error {
	authID, err := c.ParamsInt("id")
	if err != nil || authID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid auth ID",
		})
	}

	err = h.authService.RemoveAuthMethod(uint(authID), middleware.UserID(c))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Auth provider not found or not authorized",
			})
		case errors.Is(err, models.ErrLastAuthMethod):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot remove last authentication method. Add another method first.",
			})
		default:
			log.Printf("Error removing auth method: %v", err)
			return serverError(c)
		}
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"message": "Authentication provider removed successfully"},
	})
}

// publicUser strips a user down to the fields safe to return from auth
// endpoints.
func publicUser(user *models.User) fiber.Map {
	return fiber.Map{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
	}
}
