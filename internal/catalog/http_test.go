package catalog

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	s := &Server{Store: seedStore(t), Log: zap.NewNop()}

	r := chi.NewRouter()
	s.Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("decode %s: %v body=%s", url, err, string(raw))
		}
	}
	return resp.StatusCode
}

func TestHTTP_GetCategory_UnknownSlugIs404(t *testing.T) {
	ts := newTestServer(t)

	if status := get(t, ts.URL+"/categories/watches", nil); status != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", status)
	}
}

func TestHTTP_GetCategory_BySlug(t *testing.T) {
	ts := newTestServer(t)

	var c Category
	if status := get(t, ts.URL+"/categories/necklaces", &c); status != http.StatusOK {
		t.Fatalf("status=%d", status)
	}
	if c.Slug != "necklaces" {
		t.Fatalf("slug=%q", c.Slug)
	}
}

func TestHTTP_ListFeatured(t *testing.T) {
	ts := newTestServer(t)

	var products []Product
	if status := get(t, ts.URL+"/products/featured", &products); status != http.StatusOK {
		t.Fatalf("status=%d", status)
	}
	if len(products) != 2 {
		t.Fatalf("len=%d, want 2", len(products))
	}
	for _, p := range products {
		if !p.Featured {
			t.Fatalf("product %q not featured", p.Slug)
		}
	}
}

func TestHTTP_ListByCategory_BadIDIs400(t *testing.T) {
	ts := newTestServer(t)

	if status := get(t, ts.URL+"/products/category/not-a-number", nil); status != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", status)
	}
}

func TestHTTP_GetProduct_UnknownSlugIs404(t *testing.T) {
	ts := newTestServer(t)

	if status := get(t, ts.URL+"/products/nope", nil); status != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", status)
	}
}
