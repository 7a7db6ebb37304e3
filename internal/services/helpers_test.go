package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"missingfit/internal/catalog"
	"missingfit/internal/domain"
	"missingfit/internal/repos"
)

type staticFetcher []domain.Item

func (f staticFetcher) FetchItems(context.Context) ([]domain.Item, error) { return f, nil }

func loadedStore(t *testing.T) *catalog.Store {
	t.Helper()
	back := time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC)
	items := staticFetcher{
		{ID: "7", Name: "Ruby Lehenga", Category: "lehenga", Status: domain.StatusAvailable,
			Images: []string{"https://img/ruby-1.jpg", "https://img/ruby-2.jpg"}},
		{ID: "g-2", Name: "Ivory Gown", Category: "gown", Status: domain.StatusRented, AvailableAfter: &back},
		{ID: "s-1", Name: "Silk Saree", Description: "Kanjivaram silk", Category: "saree", Status: domain.StatusMaintenance},
	}
	store := catalog.NewStore(items)
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	return store
}

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
