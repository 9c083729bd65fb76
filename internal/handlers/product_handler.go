package handlers

import (
	"errors"
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product and category routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/category/:id", h.HandleGetProductsByCategory)
	productRoutes.Get("/:id", h.HandleGetProductByID)

	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/home", h.HandleGetCategorySummaries)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"products": products},
	})
}

// HandleGetProductsByCategory retrieves the products of one category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	products, err := h.service.GetProductsByCategory(c.Params("id"))
	if err != nil {
		log.Printf("Error getting products by category: %v", err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"products": products},
	})
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Product ID must be a number",
		})
	}

	product, err := h.service.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Printf("Error getting product %d: %v", id, err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"product": product},
	})
}

// HandleGetCategories lists the distinct category names.
func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"categories": categories},
	})
}

// HandleGetCategorySummaries lists the per-category home page entries.
func (h *ProductHandler) HandleGetCategorySummaries(c *fiber.Ctx) error {
	summaries, err := h.service.GetCategorySummaries()
	if err != nil {
		log.Printf("Error getting category summaries: %v", err)
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"categories": summaries},
	})
}
