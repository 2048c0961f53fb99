package handler

import (
	"errors"
	"log"

	"smart-sales-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError renders any error as the JSON error body for its kind.
func respondError(c *fiber.Ctx, err error) error {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case service.KindValidation:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":    svcErr.Message,
				"messages": svcErr.Messages,
			})
		case service.KindUnauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": svcErr.Message})
		case service.KindNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": svcErr.Message})
		}

		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		details := svcErr.Message
		if svcErr.Err != nil {
			details = svcErr.Err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   svcErr.Message,
			"details": details,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal server error",
		"details": err.Error(),
	})
}

// ErrorHandler is installed as fiber.Config.ErrorHandler so errors returned
// by handlers and recovered panics share the same body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, service.NotFoundError("Not found")
	}
	return id, nil
}

func invalidJSON() error {
	return service.ValidationError("Invalid JSON")
}
