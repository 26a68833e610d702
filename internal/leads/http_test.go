package leads

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	s := &Server{Store: NewMemStore(), Log: zap.NewNop()}

	r := chi.NewRouter()
	s.Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
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

func validCustomOrder() map[string]any {
	return map[string]any{
		"name":        "Ada Lovelace",
		"email":       "ada@example.com",
		"jewelryType": "ring",
		"budget":      "1000-2500",
		"description": "A sapphire ring with a vine-engraved band.",
	}
}

func TestHTTP_CustomOrder_Created(t *testing.T) {
	ts := newTestServer(t)

	var o CustomOrder
	if status := postJSON(t, ts.URL+"/custom-order", validCustomOrder(), &o); status != http.StatusCreated {
		t.Fatalf("status=%d, want 201", status)
	}
	if o.ID == 0 {
		t.Fatalf("id not assigned")
	}
	if !strings.HasPrefix(o.Reference, "co_") {
		t.Fatalf("reference=%q", o.Reference)
	}
	if o.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}
}

func TestHTTP_CustomOrder_ShortDescriptionIs400(t *testing.T) {
	ts := newTestServer(t)

	body := validCustomOrder()
	body["description"] = "too short"

	var errResp struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	if status := postJSON(t, ts.URL+"/custom-order", body, &errResp); status != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", status)
	}

	if len(errResp.Details) != 1 || errResp.Details[0].Field != "description" {
		t.Fatalf("details=%+v", errResp.Details)
	}
}

func TestHTTP_CustomOrder_MissingFieldsListed(t *testing.T) {
	ts := newTestServer(t)

	var errResp struct {
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	status := postJSON(t, ts.URL+"/custom-order", map[string]any{"email": "not-an-email"}, &errResp)
	if status != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", status)
	}

	fields := map[string]bool{}
	for _, d := range errResp.Details {
		fields[d.Field] = true
	}
	for _, want := range []string{"name", "email", "jewelryType", "budget", "description"} {
		if !fields[want] {
			t.Fatalf("missing field error for %q: %+v", want, errResp.Details)
		}
	}
}

func TestHTTP_Subscribe_DuplicateStays201WithSameID(t *testing.T) {
	ts := newTestServer(t)

	var first, second Subscription
	if status := postJSON(t, ts.URL+"/subscribe", map[string]any{"email": "gem@example.com"}, &first); status != http.StatusCreated {
		t.Fatalf("status=%d, want 201", status)
	}
	if status := postJSON(t, ts.URL+"/subscribe", map[string]any{"email": "gem@example.com"}, &second); status != http.StatusCreated {
		t.Fatalf("duplicate status=%d, want 201", status)
	}

	if first.ID != second.ID {
		t.Fatalf("ids differ: %d vs %d", first.ID, second.ID)
	}
}

func TestHTTP_Subscribe_BadEmailIs400(t *testing.T) {
	ts := newTestServer(t)

	if status := postJSON(t, ts.URL+"/subscribe", map[string]any{"email": "nope"}, nil); status != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", status)
	}
}

func TestHTTP_Testimonials(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/testimonials")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}

	var list []Testimonial
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}
