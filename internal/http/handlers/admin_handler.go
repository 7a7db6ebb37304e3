package handlers

import (
	"bytes"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"missingfit/internal/export"
	applog "missingfit/internal/log"
	"missingfit/internal/services"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Enquiry *services.EnquiryService
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	counts, err := h.Enquiry.Counts()
	if err != nil {
		return serverError(c, "admin.enquiries.list.fail", err, "Could not load enquiries")
	}
	latest, err := h.Enquiry.Latest(25)
	if err != nil {
		return serverError(c, "admin.enquiries.list.fail", err, "Could not load enquiries")
	}
	st := h.Catalog.Status()
	data := fiber.Map{"Status": st, "Counts": counts, "Latest": latest}
	if st.Err != nil {
		data["LoadError"] = st.Err.Error()
	}
	return render(c, "admin", data)
}

// POST /admin/catalog/reload
func (h *AdminHandler) Reload(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 30*time.Second)
	defer cancel()
	n, err := h.Catalog.Reload(ctx)
	if err != nil {
		// the store already logged the failure
		applog.Audit(c, "admin.catalog.reload", map[string]any{"ok": false})
		return c.Redirect("/admin")
	}
	applog.Audit(c, "admin.catalog.reload", map[string]any{"ok": true, "count": n})
	return c.Redirect("/admin")
}

// GET /admin/catalog.xlsx
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := export.CatalogWorkbook(h.Catalog.Store.Items(), &buf); err != nil {
		return serverError(c, "admin.catalog.export.fail", err, "Could not build the export")
	}
	applog.Audit(c, "admin.catalog.export", map[string]any{"count": h.Catalog.Status().Count})
	c.Attachment("catalog.xlsx")
	return c.Send(buf.Bytes())
}
