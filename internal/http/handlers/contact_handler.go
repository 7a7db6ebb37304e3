package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "missingfit/internal/log"
	"missingfit/internal/services"
	"missingfit/internal/validate"
)

// ContactHandler records enquiries and sends the visitor on to WhatsApp or
// the phone dialer.
type ContactHandler struct {
	Catalog   *services.CatalogService
	Enquiry   *services.EnquiryService
	Shortlist *services.ShortlistService
}

func (h *ContactHandler) item(c *fiber.Ctx) (string, error) {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "dress"})
		return "", services.ErrItemNotFound
	}
	return id, nil
}

// GET /dress/:id/whatsapp[?from=card]
func (h *ContactHandler) WhatsApp(c *fiber.Ctx) error {
	id, err := h.item(c)
	if err != nil {
		return notFound(c, NotFoundMessage)
	}
	it, err := h.Catalog.Item(id)
	if errors.Is(err, services.ErrItemNotFound) {
		return notFound(c, NotFoundMessage)
	}
	if err != nil {
		return err
	}
	e := h.Enquiry.WhatsApp(c.Cookies(SessionCookie), it, c.Query("from") == "card")
	h.logged(c, "whatsapp", it.ID, e)
	return c.Redirect(e.URL, fiber.StatusFound)
}

// GET /dress/:id/call
func (h *ContactHandler) Call(c *fiber.Ctx) error {
	id, err := h.item(c)
	if err != nil {
		return notFound(c, NotFoundMessage)
	}
	it, err := h.Catalog.Item(id)
	if errors.Is(err, services.ErrItemNotFound) {
		return notFound(c, NotFoundMessage)
	}
	if err != nil {
		return err
	}
	e := h.Enquiry.Call(c.Cookies(SessionCookie), it)
	h.logged(c, "call", it.ID, e)
	return c.Redirect(e.URL, fiber.StatusFound)
}

// GET /shortlist/whatsapp
func (h *ContactHandler) ShortlistWhatsApp(c *fiber.Ctx) error {
	sid := c.Cookies(SessionCookie)
	if sid == "" {
		return c.Redirect("/shortlist")
	}
	items, err := h.Shortlist.List(sid)
	if err != nil {
		return serverError(c, "shortlist.list.fail", err, "Could not load your shortlist")
	}
	e, err := h.Enquiry.Shortlist(sid, items)
	if errors.Is(err, services.ErrEmptyShortlist) {
		return c.Redirect("/shortlist")
	}
	if err != nil {
		return err
	}
	h.logged(c, "shortlist", "", e)
	return c.Redirect(e.URL, fiber.StatusFound)
}

// logged writes the audit line. A failed insert is reported but never
// blocks the redirect.
func (h *ContactHandler) logged(c *fiber.Ctx, channel, itemID string, e services.Enquiry) {
	fields := map[string]any{"channel": channel, "enquiry_id": e.ID}
	if itemID != "" {
		fields["item"] = itemID
	}
	if e.Err != nil {
		applog.Error(c, "enquiry.record.fail", e.Err, fields)
		return
	}
	applog.Audit(c, "enquiry."+channel, fields)
}
