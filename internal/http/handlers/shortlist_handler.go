package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "missingfit/internal/log"
	"missingfit/internal/services"
	"missingfit/internal/validate"
)

type ShortlistHandler struct {
	Shortlist *services.ShortlistService
}

func (h *ShortlistHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Shortlist.List(sid)
	if err != nil {
		return serverError(c, "shortlist.list.fail", err, "Could not load your shortlist")
	}
	return render(c, "shortlist", fiber.Map{"Items": items})
}

func (h *ShortlistHandler) Save(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("itemId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing itemId")
	}
	if err := h.Shortlist.Save(sid, id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return notFound(c, NotFoundMessage)
		}
		applog.Error(c, "shortlist.save.fail", err, map[string]any{"item": id})
		return c.Status(fiber.StatusInternalServerError).SendString("Could not save dress")
	}
	applog.Audit(c, "shortlist.save", map[string]any{"item": id})
	// redirect back to the dress or the shortlist
	return c.Redirect(safeBack(c.FormValue("back", "/shortlist")))
}

func (h *ShortlistHandler) Unsave(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("itemId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing itemId")
	}
	if err := h.Shortlist.Unsave(sid, id); err != nil {
		applog.Error(c, "shortlist.unsave.fail", err, map[string]any{"item": id})
		return c.Status(fiber.StatusInternalServerError).SendString("Could not remove dress")
	}
	applog.Audit(c, "shortlist.unsave", map[string]any{"item": id})
	return c.Redirect("/shortlist")
}
