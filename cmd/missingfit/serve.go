package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"missingfit/internal/catalog"
	"missingfit/internal/config"
	"missingfit/internal/http/handlers"
	applog "missingfit/internal/log"
	"missingfit/internal/metrics"
	"missingfit/internal/repos"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	closer := applog.Setup(cfg.LogFile)
	defer closer.Close()

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	m := metrics.New()
	store := catalog.NewStore(repos.NewItemsClient(cfg.ItemsBaseURL, cfg.FetchTimeout)).WithObserver(m)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The page renders straight away; the grid fills once the first fetch lands.
	go func() { _, _ = store.Load(ctx) }()

	app := newApp(cfg, db, store, m)

	go func() {
		<-ctx.Done()
		log.Printf("[server] shutting down")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			applog.Error(nil, "server.shutdown.fail", err, nil)
		}
	}()

	if !cfg.AdminEnabled() {
		log.Printf("[admin] ADMIN_PASSWORD_HASH not set, /admin is disabled")
	}
	log.Printf("[server] listening on %s, items from %s", cfg.Addr(), cfg.ItemsBaseURL)
	return app.Listen(cfg.Addr())
}

// newApp builds the Fiber app with every middleware and route.
func newApp(cfg config.Config, db *sqlx.DB, store *catalog.Store, m *metrics.Metrics) *fiber.App {
	engine := html.New(cfg.TemplatesDir, ".html")

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New(helmet.Config{
		// product images are served from the items API host
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	app.Use(m.Middleware())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := c.Path()
			return strings.HasPrefix(p, "/static/") || p == "/healthz" || p == "/metrics"
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		c.Locals("business", cfg.BusinessName)
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", cfg.StaticDir)

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, store, m)

	app.Get("/", deps.BrowseHandler.Home)
	app.Get("/collection", deps.BrowseHandler.Collection)
	app.Get("/search", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.search.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("search", fiber.Map{"Err": "Too many searches. Please wait a moment."})
		},
	}), deps.SearchHandler.Search)

	// Dress detail and contact redirects
	contactLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|contact"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.contact.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("notfound", fiber.Map{"Message": "Too many requests. Please try again shortly."})
		},
	})
	app.Get("/dress", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": handlers.NotFoundMessage})
	})
	app.Get("/dress/:id", deps.DressHandler.Detail)
	app.Get("/dress/:id/whatsapp", contactLimiter, deps.ContactHandler.WhatsApp)
	app.Get("/dress/:id/call", contactLimiter, deps.ContactHandler.Call)

	// Shortlist
	app.Get("/shortlist", deps.ShortlistHandler.List)
	app.Post("/shortlist", deps.ShortlistHandler.Save)
	app.Post("/shortlist/delete", deps.ShortlistHandler.Unsave)
	app.Get("/shortlist/whatsapp", contactLimiter, deps.ContactHandler.ShortlistWhatsApp)

	// API
	api := app.Group("/api/v1")
	availLimiter := limiter.New(limiter.Config{
		Max:        15,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|avail"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.availability.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Get("/items", deps.APIHandler.Items)
	api.Get("/items/:id", deps.APIHandler.Item)
	api.Get("/availability", availLimiter, deps.AvailabilityHandler.Check)

	// Admin
	admin := app.Group("/admin", handlers.RequireAdmin(cfg.AdminUser, cfg.AdminPasswordHash))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Post("/catalog/reload", deps.AdminHandler.Reload)
	admin.Get("/catalog.xlsx", deps.AdminHandler.Export)

	// Health, metrics & 404
	app.Get("/healthz", deps.HealthHandler.Check)
	app.Get("/metrics", m.Handler())
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	return app
}
