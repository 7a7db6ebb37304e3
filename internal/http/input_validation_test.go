package handlers_test

import (
	"net/http"
	"testing"
)

// reject malformed inputs early
func TestValidationBadInputs(t *testing.T) {
	ta := newTestApp(t, loadedStore(t, http.StatusOK, sampleCatalog()))

	cases := []struct {
		target string
		want   int
	}{
		{"/api/v1/availability", http.StatusBadRequest},
		{"/api/v1/availability?itemId=..%2Fetc", http.StatusBadRequest},
		{"/api/v1/availability?itemId=404", http.StatusNotFound},
		{"/api/v1/items?category=%3Cb%3E", http.StatusBadRequest},
		{"/search?q=%3Cscript%3E", http.StatusBadRequest},
		{"/search?q=gown", http.StatusOK},
		{"/search", http.StatusOK},
		// garbage reveal counts fall back to the first page
		{"/collection?show=-5", http.StatusOK},
		{"/collection?show=99999999999999999999", http.StatusOK},
	}
	for _, tc := range cases {
		resp, body := get(t, ta, tc.target)
		if resp.StatusCode != tc.want {
			t.Fatalf("%s: want %d, got %d body=%s", tc.target, tc.want, resp.StatusCode, body)
		}
	}

	_, body := get(t, ta, "/collection?show=-5")
	if n := cards(body); n != 9 {
		t.Fatalf("negative show should render one page, got %d", n)
	}
}
