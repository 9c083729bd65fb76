package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// serverError answers 500 with a generic body; details stay in the log.
func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Server error",
	})
}

// validationFields flattens validator errors into a field→reason map for
// 400 responses.
func validationFields(err error) map[string]string {
	fields := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fields
	}
	for _, e := range validationErrors {
		fields[e.Field()] = fmt.Sprintf("failed on the '%s' rule", e.Tag())
	}
	return fields
}
