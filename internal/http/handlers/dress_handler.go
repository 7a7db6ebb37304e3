package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"missingfit/internal/log"
	"missingfit/internal/services"
	"missingfit/internal/validate"
)

type DressHandler struct {
	Catalog *services.CatalogService
}

// GET /dress/:id?image=&back=
func (h *DressHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "dress"})
		return notFound(c, NotFoundMessage)
	}
	sel, err := h.Catalog.Detail(id, c.Query("image"))
	if errors.Is(err, services.ErrItemNotFound) {
		return notFound(c, NotFoundMessage)
	}
	if err != nil {
		return serverError(c, "dress.detail.fail", err, "Could not load this dress. Please retry.")
	}
	it, _ := sel.Item()
	return render(c, "dress", fiber.Map{
		"Item":        it,
		"ActiveImage": sel.ActiveImage(),
		"Back":        safeBack(c.Query("back")),
	})
}

// safeBack keeps the close link on this site.
func safeBack(s string) string {
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") && !strings.Contains(s, "\\") {
		return s
	}
	return "/collection"
}
