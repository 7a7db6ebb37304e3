package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"missingfit/internal/catalog"
	"missingfit/internal/config"
	"missingfit/internal/http/handlers"
	"missingfit/internal/metrics"
	"missingfit/internal/repos"
)

// wireItem mirrors the items API payload.
type wireItem struct {
	ID             any      `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	DressType      string   `json:"dress_type"`
	PriceWithout   string   `json:"price_without_jewelry"`
	PriceWith      string   `json:"price_with_jewelry"`
	Deposit        string   `json:"security_deposit"`
	Status         string   `json:"status"`
	AvailableAfter string   `json:"available_after,omitempty"`
	Sizes          string   `json:"sizes"`
	Images         []string `json:"images"`
}

// sampleCatalog is twelve dresses: four gowns, then lehengas.
func sampleCatalog() []wireItem {
	out := make([]wireItem, 0, 12)
	for i := 1; i <= 12; i++ {
		it := wireItem{
			ID:           i,
			Name:         fmt.Sprintf("Lehenga %02d", i),
			DressType:    "lehenga",
			PriceWithout: "4500.00",
			PriceWith:    "6000.00",
			Deposit:      "10000.00",
			Status:       "available",
			Sizes:        `["S", "M"]`,
			Images: []string{
				fmt.Sprintf("https://img.test/%d/front.jpg", i),
				fmt.Sprintf("https://img.test/%d/back.jpg", i),
			},
		}
		if i <= 4 {
			it.Name = fmt.Sprintf("Gown %02d", i)
			it.DressType = "gown"
		}
		out = append(out, it)
	}
	out[1].Status = "rented"
	out[1].AvailableAfter = "2026-11-02"
	return out
}

func itemsServer(t *testing.T, status int, items []wireItem) *httptest.Server {
	t.Helper()
	body, err := json.Marshal(items)
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != repos.ItemsPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// loadedStore fetches items through a real client and waits for the load.
func loadedStore(t *testing.T, status int, items []wireItem) *catalog.Store {
	t.Helper()
	srv := itemsServer(t, status, items)
	store := catalog.NewStore(repos.NewItemsClient(srv.URL, 2*time.Second))
	_, _ = store.Load(context.Background())
	return store
}

type testApp struct {
	app     *fiber.App
	db      *sqlx.DB
	store   *catalog.Store
	deps    *handlers.Deps
	metrics *metrics.Metrics
}

// newTestApp mounts the public routes over store without rate limits.
func newTestApp(t *testing.T, store *catalog.Store) testApp {
	t.Helper()
	cfg := config.Defaults()
	cfg.DBDSN = ":memory:"
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine, ErrorHandler: handlers.ErrorHandler})
	app.Server().MaxRequestBodySize = 1 << 20
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	m := metrics.New()
	deps := handlers.NewDeps(db, cfg, store, m)
	app.Get("/", deps.BrowseHandler.Home)
	app.Get("/collection", deps.BrowseHandler.Collection)
	app.Get("/search", deps.SearchHandler.Search)
	app.Get("/dress/:id", deps.DressHandler.Detail)
	app.Get("/dress/:id/whatsapp", deps.ContactHandler.WhatsApp)
	app.Get("/dress/:id/call", deps.ContactHandler.Call)
	app.Get("/shortlist", deps.ShortlistHandler.List)
	app.Post("/shortlist", deps.ShortlistHandler.Save)
	app.Post("/shortlist/delete", deps.ShortlistHandler.Unsave)
	app.Get("/shortlist/whatsapp", deps.ContactHandler.ShortlistWhatsApp)
	api := app.Group("/api/v1")
	api.Get("/items", deps.APIHandler.Items)
	api.Get("/items/:id", deps.APIHandler.Item)
	api.Get("/availability", deps.AvailabilityHandler.Check)
	app.Get("/healthz", deps.HealthHandler.Check)

	return testApp{app: app, db: db, store: store, deps: deps, metrics: m}
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
