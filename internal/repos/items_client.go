package repos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"missingfit/internal/domain"
	applog "missingfit/internal/log"
)

// ItemsPath is the items endpoint relative to the API base URL.
const ItemsPath = "/api/items/"

// FetchError reports a failed catalog fetch.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ItemsClient reads the catalog from the external items API.
type ItemsClient struct {
	url    string
	client *http.Client
}

func NewItemsClient(baseURL string, timeout time.Duration) *ItemsClient {
	return &ItemsClient{
		url:    strings.TrimRight(baseURL, "/") + ItemsPath,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *ItemsClient) URL() string { return c.url }

// FetchItems issues one GET and decodes the array leniently: fields of the
// wrong type come back blank and non-object entries are skipped.
func (c *ItemsClient) FetchItems(ctx context.Context) ([]domain.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, &FetchError{URL: c.url, Status: resp.StatusCode}
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("decoding items: %w", err)}
	}

	items := make([]domain.Item, 0, len(raw))
	for i, r := range raw {
		var fields wireItem
		if err := json.Unmarshal(r, &fields); err != nil || fields == nil {
			applog.Warn(nil, "catalog.item.skip", map[string]any{"index": i})
			continue
		}
		items = append(items, fields.item())
	}
	return items, nil
}

// wireItem is one element of the items array, kept raw so every field can
// be read on its own.
type wireItem map[string]json.RawMessage

func (w wireItem) item() domain.Item {
	category := w.str("category")
	if category == "" {
		category = w.str("dress_type")
	}
	it := domain.Item{
		ID:                      w.id(),
		Name:                    w.str("name"),
		Description:             w.str("description"),
		Category:                category,
		PriceWithoutAccessories: w.amount("price_without_jewelry"),
		PriceWithAccessories:    w.amount("price_with_jewelry"),
		SecurityDeposit:         w.amount("security_deposit"),
		Status:                  domain.ParseStatus(w.str("status")),
		Sizes:                   domain.NormalizeSizes(w.sizes()),
		Images:                  w.images(),
	}
	if t, ok := w.date("available_after"); ok {
		it.AvailableAfter = &t
	}
	return it
}

func (w wireItem) str(key string) string {
	var s string
	if err := json.Unmarshal(w[key], &s); err != nil {
		return ""
	}
	return s
}

// id keeps numeric ids as their literal text.
func (w wireItem) id() string {
	raw := bytes.TrimSpace(w["id"])
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return w.str("id")
}

func (w wireItem) amount(key string) domain.Amount {
	raw := w[key]
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return domain.ParseAmount(n.String())
	}
	return domain.ParseAmount(w.str(key))
}

func (w wireItem) date(key string) (time.Time, bool) {
	s := strings.TrimSpace(w.str(key))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (w wireItem) sizes() domain.RawSizes {
	raw := w["sizes"]
	if raw == nil {
		raw = w["size"]
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		labels := make([]string, 0, len(list))
		for _, v := range list {
			switch v := v.(type) {
			case string:
				labels = append(labels, v)
			case float64:
				labels = append(labels, strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		return domain.SizeList(labels)
	}
	var s string
	_ = json.Unmarshal(raw, &s)
	return domain.SizeString(s)
}

// images accepts [{"url": "..."}] as well as ["..."].
func (w wireItem) images() []string {
	raw := w["images"]
	var objs []struct {
		URL string `json:"url"`
	}
	var urls []string
	if err := json.Unmarshal(raw, &objs); err == nil {
		for _, o := range objs {
			urls = append(urls, o.URL)
		}
	} else if err := json.Unmarshal(raw, &urls); err != nil {
		return nil
	}

	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
