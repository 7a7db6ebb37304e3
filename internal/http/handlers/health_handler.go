package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"missingfit/internal/services"
)

type HealthHandler struct {
	Catalog *services.CatalogService
}

// GET /healthz. The process is healthy even when the last fetch failed;
// the catalog block says so.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	st := h.Catalog.Status()
	cat := fiber.Map{"items": st.Count, "loads": st.Loads}
	if !st.LoadedAt.IsZero() {
		cat["loadedAt"] = st.LoadedAt.UTC().Format(time.RFC3339)
	}
	if st.Err != nil {
		cat["error"] = "last fetch failed"
	}
	return c.JSON(fiber.Map{"ok": true, "catalog": cat})
}
