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

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterProtectedRoutes registers the order routes; all of them require a
// bearer token.
func (h *OrderHandler) RegisterProtectedRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/create", h.HandleCreateOrder)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// CreateOrderRequest is the request body for order creation. The order data
// sits under "order" the way the storefront client sends it.
type CreateOrderRequest struct {
	Order services.PlaceOrderInput `json:"order"`
}

// HandleCreateOrder validates the payload and places the order for the
// authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order data",
		})
	}
	if err := h.validate.Struct(req.Order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Invalid order information format",
			"fields": validationFields(err),
		})
	}

	userID := middleware.UserID(c)
	order, err := h.service.PlaceOrder(userID, req.Order)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Order references an unknown product or shipping type",
			})
		}
		log.Printf("Error creating order for user %d: %v", userID, err)
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"order":         order,
			"productsAdded": len(order.Products),
		},
	})
}

// HandleGetOrders lists the authenticated user's orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	orders, err := h.service.GetOrdersByUser(userID)
	if err != nil {
		log.Printf("Error getting orders for user %d: %v", userID, err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"orders": orders},
	})
}

// HandleGetOrderByID retrieves one of the authenticated user's orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order ID must be a number",
		})
	}

	order, err := h.service.GetOrderByID(uint(id), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		log.Printf("Error getting order %d: %v", id, err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"order": order},
	})
}
