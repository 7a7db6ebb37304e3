package handlers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"missingfit/internal/log"
	"missingfit/internal/services"
	"missingfit/internal/validate"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		// Initial page load: show empty search without errors
		return render(c, "search", fiber.Map{"Q": "", "Items": []any{}, "Count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).Render("search", fiber.Map{
			"Q": "", "Items": []any{}, "Count": 0, "Err": "Enter a valid keyword (letters and numbers only)",
		})
	}

	items := h.Catalog.Search(q)
	back := "/search?" + url.Values{"q": {q}}.Encode()
	return render(c, "search", fiber.Map{"Q": q, "Items": cards(items, back), "Count": len(items)})
}
