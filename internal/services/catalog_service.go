package services

import (
	"context"
	"errors"

	"missingfit/internal/catalog"
	"missingfit/internal/domain"
)

var ErrItemNotFound = errors.New("item not found")

type CatalogService struct {
	Store *catalog.Store
}

func NewCatalogService(store *catalog.Store) *CatalogService {
	return &CatalogService{Store: store}
}

// Home is the landing grid: capped at one page, with a link onwards when
// the catalog is larger.
func (s *CatalogService) Home(category string) catalog.View {
	b := catalog.NewBrowse(catalog.LandingPager).WithCategory(category)
	return b.View(s.Store.Items())
}

// Collection is the full grid for a category with reveal items showing.
// reveal <= 0 means the first page.
func (s *CatalogService) Collection(category string, reveal int) (catalog.Browse, catalog.View) {
	b := catalog.NewBrowse(catalog.CollectionPager).WithCategory(category).WithReveal(reveal)
	return b, b.View(s.Store.Items())
}

func (s *CatalogService) Item(id string) (domain.Item, error) {
	it, ok := catalog.Find(s.Store.Items(), id)
	if !ok {
		return domain.Item{}, ErrItemNotFound
	}
	return it, nil
}

// Detail selects an item and, when image names one of its images, shows it.
func (s *CatalogService) Detail(id, image string) (catalog.Selection, error) {
	var sel catalog.Selection
	it, err := s.Item(id)
	if err != nil {
		return sel, err
	}
	sel.Select(it)
	if image != "" {
		sel.SetActiveImage(image)
	}
	return sel, nil
}

func (s *CatalogService) Search(q string) []domain.Item {
	return catalog.Search(s.Store.Items(), q)
}

// Reload refetches the catalog and returns the new item count.
func (s *CatalogService) Reload(ctx context.Context) (int, error) {
	items, err := s.Store.Load(ctx)
	return len(items), err
}

func (s *CatalogService) Status() catalog.Status { return s.Store.Status() }
