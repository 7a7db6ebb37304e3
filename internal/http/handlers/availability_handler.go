package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"missingfit/internal/services"
	"missingfit/internal/validate"
)

type AvailabilityHandler struct {
	Avail *services.AvailabilityService
}

// GET /api/v1/availability?itemId=
func (h *AvailabilityHandler) Check(c *fiber.Ctx) error {
	if c.Query("itemId") == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing itemId",
		})
	}
	itemID, ok := validate.ID(c.Query("itemId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid itemId",
		})
	}

	avail, err := h.Avail.CheckAvailability(itemID)
	if errors.Is(err, services.ErrItemNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": NotFoundMessage})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not check availability",
		})
	}
	return c.JSON(avail)
}
