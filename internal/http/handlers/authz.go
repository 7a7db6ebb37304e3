package handlers

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"

	applog "missingfit/internal/log"
)

// RequireAdmin guards /admin with HTTP basic auth checked against a bcrypt
// hash. An empty hash disables the admin pages entirely.
func RequireAdmin(user, passwordHash string) fiber.Handler {
	if passwordHash == "" {
		return func(c *fiber.Ctx) error {
			applog.Security(c, "access.denied.admin", map[string]any{"reason": "disabled"})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
	}
	hash := []byte(passwordHash)
	return basicauth.New(basicauth.Config{
		Realm: "Admin",
		Authorizer: func(u, p string) bool {
			userOK := subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1
			passOK := bcrypt.CompareHashAndPassword(hash, []byte(p)) == nil
			return userOK && passOK
		},
		Unauthorized: func(c *fiber.Ctx) error {
			if hasCredentials(c) {
				applog.Security(c, "access.denied.admin", nil)
			}
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Admin"`)
			return c.SendStatus(fiber.StatusUnauthorized)
		},
	})
}

// hasCredentials is false for a browser's first probe, which is not a
// denial worth logging.
func hasCredentials(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderAuthorization), "Basic ")
}
