package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"missingfit/internal/catalog"
	"missingfit/internal/config"
	"missingfit/internal/metrics"
	"missingfit/internal/repos"
)

func TestNewAppWiring(t *testing.T) {
	items := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id": 1, "name": "Teal Anarkali", "dress_type": "anarkali",
			"price_without_jewelry": "1800.00", "status": "available", "sizes": "M, L", "images": []}]`)
	}))
	defer items.Close()

	cfg := config.Defaults()
	cfg.DBDSN = ":memory:"
	cfg.ItemsBaseURL = items.URL
	cfg.TemplatesDir = "../../web/templates"
	cfg.StaticDir = "../../web/static"

	db, err := repos.OpenDB(cfg.DBDSN)
	require.NoError(t, err)
	defer db.Close()

	m := metrics.New()
	store := catalog.NewStore(repos.NewItemsClient(cfg.ItemsBaseURL, time.Second)).WithObserver(m)
	_, err = store.Load(context.Background())
	require.NoError(t, err)

	app := newApp(cfg, db, store, m)

	body := func(target string) (int, string) {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		b, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(b)
	}

	code, page := body("/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, page, "Teal Anarkali")
	assert.Contains(t, page, "The Missing Fit")

	code, _ = body("/static/site.css")
	assert.Equal(t, http.StatusOK, code)

	code, page = body("/no/such/page")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, page, "Page not found")

	code, _ = body("/admin")
	assert.Equal(t, http.StatusForbidden, code, "admin stays closed without a password hash")

	code, page = body("/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, page, `"items":1`)

	code, page = body("/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, page, "catalog_items 1")
	assert.Contains(t, page, `catalog_fetch_total{result="ok"} 1`)
	assert.True(t, strings.Contains(page, `http_requests_total{method="GET",path="/",status="200"} 1`))
}
