package catalog

import (
	"net/url"
	"strconv"

	"missingfit/internal/domain"
)

// MaxReveal bounds how far a URL can ask the grid to grow.
const MaxReveal = 900

// Window returns the first n items.
func Window(items []domain.Item, n int) []domain.Item {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// Pager fixes the reveal increment for a grid. A non-zero Ceiling caps the
// grid; past it the page links to the full collection instead.
type Pager struct {
	PageSize int
	Ceiling  int
}

var (
	LandingPager    = Pager{PageSize: 8, Ceiling: 8}
	CollectionPager = Pager{PageSize: 9}
)

// Clamp brings a requested reveal count into range for this pager.
func (p Pager) Clamp(n int) int {
	if n < p.PageSize {
		n = p.PageSize
	}
	if p.Ceiling > 0 && n > p.Ceiling {
		n = p.Ceiling
	}
	if n > MaxReveal {
		n = MaxReveal
	}
	return n
}

// Browse is the grid state a page URL encodes: category and reveal count.
type Browse struct {
	Pager    Pager
	Category string
	Reveal   int
}

func NewBrowse(p Pager) Browse {
	return Browse{Pager: p, Category: domain.CategoryAll, Reveal: p.PageSize}
}

// WithCategory switches the filter and starts the reveal over.
func (b Browse) WithCategory(category string) Browse {
	b.Category = category
	b.Reveal = b.Pager.PageSize
	return b
}

// WithReveal sets a reveal count taken from a request, clamped.
func (b Browse) WithReveal(n int) Browse {
	b.Reveal = b.Pager.Clamp(n)
	return b
}

// More grows the reveal by one page.
func (b Browse) More() Browse {
	b.Reveal = b.Pager.Clamp(b.Reveal + b.Pager.PageSize)
	return b
}

// Query encodes b for a grid link. The default reveal is left out.
func (b Browse) Query() url.Values {
	v := url.Values{}
	if b.Category != "" && b.Category != domain.CategoryAll {
		v.Set("category", b.Category)
	}
	if b.Reveal != b.Pager.PageSize {
		v.Set("show", strconv.Itoa(b.Reveal))
	}
	return v
}

// View is everything a grid template needs.
type View struct {
	Category           string
	Items              []domain.Item
	Total              int
	Reveal             int
	CanRevealMore      bool
	NextReveal         int // 0 when no further reveal can be requested
	ShowFullCollection bool
}

// View derives the visible grid from the whole snapshot.
func (b Browse) View(all []domain.Item) View {
	filtered := Filter(all, b.Category)
	reveal := b.Pager.Clamp(b.Reveal)
	v := View{
		Category: b.Category,
		Items:    Window(filtered, reveal),
		Total:    len(filtered),
		Reveal:   reveal,
	}
	if b.Pager.Ceiling > 0 {
		v.ShowFullCollection = len(all) > b.Pager.Ceiling
		return v
	}
	v.CanRevealMore = reveal < len(filtered)
	// At MaxReveal there is more to see but no larger reveal to ask for.
	if next := b.More().Reveal; v.CanRevealMore && next > reveal {
		v.NextReveal = next
	}
	return v
}
