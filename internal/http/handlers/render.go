package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "missingfit/internal/log"
)

// NotFoundMessage is shown for dresses that left the catalog.
const NotFoundMessage = "This dress is no longer available"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if b, ok := c.Locals("business").(string); ok && b != "" {
		data["Business"] = b
	}
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		// Fall back to the cookie when Locals was not populated
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": msg})
}

// serverError renders the friendly page after logging err under action.
func serverError(c *fiber.Ctx, action string, err error, msg string) error {
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": msg})
}

// ErrorHandler logs err and shows a friendly page without internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	applog.Error(c, "server.error", err, nil)
	code := fiber.StatusInternalServerError
	msg := "Something went wrong. Please try again."
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code = fe.Code
		msg = "Page not found"
		if code != fiber.StatusNotFound {
			msg = "We could not handle that request."
		}
	}
	if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}
