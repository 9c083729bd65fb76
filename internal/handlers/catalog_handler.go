package handlers

import (
	"log"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for states and shipping types.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the state and shipping-type routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	stateRoutes := router.Group("/states")
	stateRoutes.Get("/", h.HandleGetStates)
	stateRoutes.Get("/abbr", h.HandleGetStates)

	router.Get("/shippingTypes", h.HandleGetShippingTypes)
}

// HandleGetStates lists all states as abbr/name pairs.
func (h *CatalogHandler) HandleGetStates(c *fiber.Ctx) error {
	states, err := h.service.GetStates()
	if err != nil {
		log.Printf("Error getting states: %v", err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"result": states,
	})
}

// HandleGetShippingTypes lists all shipping options.
func (h *CatalogHandler) HandleGetShippingTypes(c *fiber.Ctx) error {
	shippingTypes, err := h.service.GetShippingTypes()
	if err != nil {
		log.Printf("Error getting shipping types: %v", err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"shippingTypes": shippingTypes},
	})
}
