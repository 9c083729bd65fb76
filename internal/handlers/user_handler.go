package handlers

import (
	"errors"
	"log"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/:id", h.HandleGetUserByID)
}

// RegisterProtectedRoutes registers the routes that modify the caller's
// own profile.
func (h *UserHandler) RegisterProtectedRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Post("/billing", h.HandleUpdateBilling)
	userRoutes.Post("/shipping", h.HandleUpdateShipping)
}

// HandleGetUserByID retrieves a user's full profile.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID must be a number",
		})
	}

	user, err := h.service.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		log.Printf("Error getting user %d: %v", id, err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"user": user},
	})
}

// AddressRequest wraps one address payload for billing/shipping updates.
type AddressRequest struct {
	Billing  *models.Address `json:"billing"`
	Shipping *models.Address `json:"shipping"`
}

// HandleUpdateBilling replaces the caller's billing address.
func (h *UserHandler) HandleUpdateBilling(c *fiber.Ctx) error {
	var req AddressRequest
	if err := c.BodyParser(&req); err != nil || req.Billing == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Billing data is required",
		})
	}
	if err := h.validate.Struct(req.Billing); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Invalid billing information format",
			"fields": validationFields(err),
		})
	}

	userID := middleware.UserID(c)
	if err := h.service.UpdateBilling(userID, *req.Billing); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		log.Printf("Error updating billing for user %d: %v", userID, err)
		return serverError(c)
	}

	user, err := h.service.GetUserByID(userID)
	if err != nil {
		log.Printf("Error reloading user %d: %v", userID, err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"user": user},
	})
}

// HandleUpdateShipping replaces the caller's shipping address.
func (h *UserHandler) HandleUpdateShipping(c *fiber.Ctx) error {
	var req AddressRequest
	if err := c.BodyParser(&req); err != nil || req.Shipping == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Shipping data is required",
		})
	}
	if err := h.validate.Struct(req.Shipping); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Invalid shipping information format",
			"fields": validationFields(err),
		})
	}

	userID := middleware.UserID(c)
	if err := h.service.UpdateShipping(userID, *req.Shipping); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		log.Printf("Error updating shipping for user %d: %v", userID, err)
		return serverError(c)
	}

	user, err := h.service.GetUserByID(userID)
	if err != nil {
		log.Printf("Error reloading user %d: %v", userID, err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"user": user},
	})
}
