package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionCookie names the anonymous visitor cookie that keys shortlists and
// enquiries.
const SessionCookie = "sid"

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies(SessionCookie)
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    sid,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 90,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}
