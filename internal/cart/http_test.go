package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Elegante/internal/catalog"
)

const testUserID = 1

func newTestServer(t *testing.T) (*httptest.Server, *catalog.MemStore) {
	t.Helper()

	products := catalog.NewMemStore()
	s := &Server{
		Store:    NewMemStore(),
		Products: products,
		Log:      zap.NewNop(),
		UserID:   testUserID,
	}

	r := chi.NewRouter()
	s.Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, products
}

func addProduct(t *testing.T, products *catalog.MemStore, slug, price string) catalog.Product {
	t.Helper()

	p, err := products.CreateProduct(context.Background(), catalog.NewProduct{
		Name:  slug,
		Slug:  slug,
		Price: price,
		Stock: 5,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func do(t *testing.T, method, url string, body any, out any) int {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do %s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("decode: %v body=%s", err, string(raw))
		}
	}
	return resp.StatusCode
}

func TestHTTP_AddToCart_MergesDuplicates(t *testing.T) {
	ts, products := newTestServer(t)
	p := addProduct(t, products, "solitaire", "1200.00")

	var first Item
	status := do(t, http.MethodPost, ts.URL+"/cart", map[string]any{"productId": p.ID, "quantity": 2}, &first)
	if status != http.StatusCreated {
		t.Fatalf("status=%d, want 201", status)
	}

	var second Item
	status = do(t, http.MethodPost, ts.URL+"/cart", map[string]any{"productId": p.ID, "quantity": 3}, &second)
	if status != http.StatusCreated {
		t.Fatalf("status=%d, want 201", status)
	}

	if second.ID != first.ID || second.Quantity != 5 {
		t.Fatalf("got id=%d qty=%d, want id=%d qty=5", second.ID, second.Quantity, first.ID)
	}

	var items []DetailedItem
	if status := do(t, http.MethodGet, ts.URL+"/cart", nil, &items); status != http.StatusOK {
		t.Fatalf("get cart status=%d", status)
	}
	if len(items) != 1 {
		t.Fatalf("rows=%d, want 1", len(items))
	}
	if items[0].Product == nil || items[0].Product.ID != p.ID {
		t.Fatalf("product not joined: %+v", items[0])
	}
}

func TestHTTP_AddToCart_ValidationErrors(t *testing.T) {
	ts, _ := newTestServer(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing product", map[string]any{"quantity": 1}},
		{"zero product", map[string]any{"productId": 0}},
		{"negative quantity", map[string]any{"productId": 1, "quantity": -2}},
	}

	for _, tc := range cases {
		if status := do(t, http.MethodPost, ts.URL+"/cart", tc.body, nil); status != http.StatusBadRequest {
			t.Fatalf("%s: status=%d, want 400", tc.name, status)
		}
	}
}

func TestHTTP_UpdateCartItem_NonPositiveQuantityIs400(t *testing.T) {
	ts, products := newTestServer(t)
	p := addProduct(t, products, "solitaire", "1200.00")

	var it Item
	do(t, http.MethodPost, ts.URL+"/cart", map[string]any{"productId": p.ID, "quantity": 2}, &it)

	url := fmt.Sprintf("%s/cart/%d", ts.URL, it.ID)
	if status := do(t, http.MethodPut, url, map[string]any{"quantity": 0}, nil); status != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", status)
	}

	// The schema rejection must not have deleted the row.
	var items []DetailedItem
	do(t, http.MethodGet, ts.URL+"/cart", nil, &items)
	if len(items) != 1 {
		t.Fatalf("rows=%d, want 1", len(items))
	}
}

func TestHTTP_UpdateCartItem_MissingIs404(t *testing.T) {
	ts, _ := newTestServer(t)

	if status := do(t, http.MethodPut, ts.URL+"/cart/99", map[string]any{"quantity": 2}, nil); status != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", status)
	}
}

func TestHTTP_RemoveCartItem(t *testing.T) {
	ts, products := newTestServer(t)
	p := addProduct(t, products, "solitaire", "1200.00")

	var it Item
	do(t, http.MethodPost, ts.URL+"/cart", map[string]any{"productId": p.ID}, &it)

	url := fmt.Sprintf("%s/cart/%d", ts.URL, it.ID)
	if status := do(t, http.MethodDelete, url, nil, nil); status != http.StatusNoContent {
		t.Fatalf("status=%d, want 204", status)
	}
	if status := do(t, http.MethodDelete, url, nil, nil); status != http.StatusNotFound {
		t.Fatalf("repeat delete status=%d, want 404", status)
	}
}

func TestHTTP_ClearCart(t *testing.T) {
	ts, products := newTestServer(t)
	p1 := addProduct(t, products, "solitaire", "1200.00")
	p2 := addProduct(t, products, "pearl-strand", "640.00")

	do(t, http.MethodPost, ts.URL+"/cart", map[string]any{"productId": p1.ID}, nil)
	do(t, http.MethodPost, ts.URL+"/cart", map[string]any{"productId": p2.ID}, nil)

	if status := do(t, http.MethodDelete, ts.URL+"/cart", nil, nil); status != http.StatusNoContent {
		t.Fatalf("status=%d, want 204", status)
	}

	var items []DetailedItem
	do(t, http.MethodGet, ts.URL+"/cart", nil, &items)
	if len(items) != 0 {
		t.Fatalf("rows=%d, want 0", len(items))
	}
}

func TestHTTP_CartSummary(t *testing.T) {
	ts, products := newTestServer(t)
	p1 := addProduct(t, products, "solitaire", "1200.00")
	p2 := addProduct(t, products, "pearl-strand", "640.50")

	do(t, http.MethodPost, ts.URL+"/cart", map[string]any{"productId": p1.ID, "quantity": 2}, nil)
	do(t, http.MethodPost, ts.URL+"/cart", map[string]any{"productId": p2.ID, "quantity": 1}, nil)

	var sum Summary
	if status := do(t, http.MethodGet, ts.URL+"/cart/summary", nil, &sum); status != http.StatusOK {
		t.Fatalf("status=%d", status)
	}

	if sum.Count != 3 {
		t.Fatalf("count=%d, want 3", sum.Count)
	}
	if sum.Subtotal != "3040.50" {
		t.Fatalf("subtotal=%q, want 3040.50", sum.Subtotal)
	}
}

func TestHTTP_Cart_DanglingProductJoinsAsNull(t *testing.T) {
	ts, _ := newTestServer(t)

	// Product 42 was never created; the row still lists, product is null.
	do(t, http.MethodPost, ts.URL+"/cart", map[string]any{"productId": 42}, nil)

	var items []DetailedItem
	if status := do(t, http.MethodGet, ts.URL+"/cart", nil, &items); status != http.StatusOK {
		t.Fatalf("status=%d", status)
	}
	if len(items) != 1 {
		t.Fatalf("rows=%d, want 1", len(items))
	}
	if items[0].Product != nil {
		t.Fatalf("expected null product, got %+v", items[0].Product)
	}
}
