package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"missingfit/internal/domain"
	"missingfit/internal/services"
	"missingfit/internal/validate"
)

type APIHandler struct {
	Catalog *services.CatalogService
}

type itemsResponse struct {
	Category      string        `json:"category"`
	Items         []domain.Item `json:"items"`
	Total         int           `json:"total"`
	Reveal        int           `json:"reveal"`
	CanRevealMore bool          `json:"canRevealMore"`
	NextReveal    int           `json:"nextReveal,omitempty"`
}

// GET /api/v1/items?category=&show=
func (h *APIHandler) Items(c *fiber.Ctx) error {
	cat, ok := validate.Category(c.Query("category"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
	}
	_, v := h.Catalog.Collection(cat, validate.Reveal(c.Query("show")))
	items := v.Items
	if items == nil {
		items = []domain.Item{}
	}
	return c.JSON(itemsResponse{
		Category:      v.Category,
		Items:         items,
		Total:         v.Total,
		Reveal:        v.Reveal,
		CanRevealMore: v.CanRevealMore,
		NextReveal:    v.NextReveal,
	})
}

// GET /api/v1/items/:id
func (h *APIHandler) Item(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	it, err := h.Catalog.Item(id)
	if errors.Is(err, services.ErrItemNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": NotFoundMessage})
	}
	if err != nil {
		return err
	}
	return c.JSON(it)
}
