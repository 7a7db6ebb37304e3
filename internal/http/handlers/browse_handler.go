package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"missingfit/internal/catalog"
	"missingfit/internal/domain"
	"missingfit/internal/log"
	"missingfit/internal/services"
	"missingfit/internal/validate"
)

type BrowseHandler struct {
	Catalog *services.CatalogService
}

// category reads ?category=. Malformed values are logged and come back
// blank, which Filter matches to nothing.
func category(c *fiber.Ctx) string {
	raw := c.Query("category")
	cat, ok := validate.Category(raw)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "category"})
		return ""
	}
	return cat
}

// GET /
func (h *BrowseHandler) Home(c *fiber.Ctx) error {
	cat := category(c)
	v := h.Catalog.Home(cat)
	return render(c, "home", fiber.Map{
		"Categories": domain.Categories,
		"Category":   cat,
		"FilterPath": "/",
		"View":       v,
		"Cards":      cards(v.Items, homeURL(cat)),
		"Loading":    h.Catalog.Status().Loads == 0,
	})
}

// GET /collection
func (h *BrowseHandler) Collection(c *fiber.Ctx) error {
	cat := category(c)
	b, v := h.Catalog.Collection(cat, validate.Reveal(c.Query("show")))
	data := fiber.Map{
		"Title":      "Collection",
		"Categories": domain.Categories,
		"Category":   cat,
		"FilterPath": "/collection",
		"View":       v,
		"Cards":      cards(v.Items, collectionURL(b)),
		"Loading":    h.Catalog.Status().Loads == 0,
	}
	if v.NextReveal > v.Reveal {
		data["MoreURL"] = collectionURL(b.More())
	}
	return render(c, "collection", data)
}

// card is a grid item plus the page its detail view closes back to.
type card struct {
	domain.Item
	Back string
}

func cards(items []domain.Item, back string) []card {
	out := make([]card, len(items))
	for i, it := range items {
		out[i] = card{Item: it, Back: back}
	}
	return out
}

func homeURL(category string) string {
	if category == "" || category == domain.CategoryAll {
		return "/"
	}
	return "/?" + url.Values{"category": {category}}.Encode()
}

func collectionURL(b catalog.Browse) string {
	if q := b.Query().Encode(); q != "" {
		return "/collection?" + q
	}
	return "/collection"
}
