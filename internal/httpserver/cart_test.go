package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func doJSON(t *testing.T, env *testEnv, method, path, session, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func TestCartFlowAddUpdateRemove(t *testing.T) {
	env := newTestEnv()

	rec, body := doJSON(t, env, http.MethodPost, "/api/cart/items", "sess-1",
		`{"productId":"p1","size":"M"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add item: status %d body %s", rec.Code, rec.Body.String())
	}
	if got := body["totalItems"].(float64); got != 1 {
		t.Fatalf("expected 1 item, got %v", got)
	}

	// Same (product, size) merges into one slot.
	rec, body = doJSON(t, env, http.MethodPost, "/api/cart/items", "sess-1",
		`{"productId":"p1","size":"M"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add item again: status %d", rec.Code)
	}
	items := body["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected a single slot, got %d", len(items))
	}
	if qty := items[0].(map[string]interface{})["quantity"].(float64); qty != 2 {
		t.Fatalf("expected quantity 2, got %v", qty)
	}
	subtotal := body["subtotal"].(map[string]interface{})
	if subtotal["centAmount"].(float64) != 9800 || subtotal["formatted"].(string) != "98.00" {
		t.Fatalf("unexpected subtotal %v", subtotal)
	}
	// 98.00 is over the free-shipping threshold.
	if shipping := body["shipping"].(map[string]interface{}); shipping["centAmount"].(float64) != 0 {
		t.Fatalf("expected free shipping, got %v", shipping)
	}

	// A different size opens a second slot.
	rec, body = doJSON(t, env, http.MethodPost, "/api/cart/items", "sess-1",
		`{"productId":"p1","size":"L"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add size L: status %d", rec.Code)
	}
	if got := len(body["items"].([]interface{})); got != 2 {
		t.Fatalf("expected 2 slots, got %d", got)
	}

	rec, body = doJSON(t, env, http.MethodPatch, "/api/cart/items", "sess-1",
		`{"productId":"p1","size":"M","quantity":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update quantity: status %d", rec.Code)
	}
	if got := len(body["items"].([]interface{})); got != 1 {
		t.Fatalf("quantity 0 must remove the slot, got %d slots", got)
	}

	rec, body = doJSON(t, env, http.MethodDelete, "/api/cart/items", "sess-1",
		`{"productId":"p1","size":"L"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove item: status %d", rec.Code)
	}
	if got := body["totalItems"].(float64); got != 0 {
		t.Fatalf("expected empty cart, got %v items", got)
	}
}

func TestCartShippingBelowThreshold(t *testing.T) {
	env := newTestEnv()

	_, body := doJSON(t, env, http.MethodPost, "/api/cart/items", "sess-1",
		`{"productId":"p1","size":"M"}`)
	shipping := body["shipping"].(map[string]interface{})
	if shipping["centAmount"].(float64) != 999 || shipping["formatted"].(string) != "9.99" {
		t.Fatalf("expected standard fee, got %v", shipping)
	}
	total := body["total"].(map[string]interface{})
	if total["centAmount"].(float64) != 5899 {
		t.Fatalf("expected total 5899, got %v", total)
	}
}

func TestCartSessionsAreIsolated(t *testing.T) {
	env := newTestEnv()

	doJSON(t, env, http.MethodPost, "/api/cart/items", "sess-1", `{"productId":"p1","size":"M"}`)
	_, body := doJSON(t, env, http.MethodGet, "/api/cart", "sess-2", "")
	if got := body["totalItems"].(float64); got != 0 {
		t.Fatalf("sessions must not share carts, got %v items", got)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	env := newTestEnv()

	rec, _ := doJSON(t, env, http.MethodPost, "/api/cart/items", "sess-1",
		`{"productId":"ghost","size":"M"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAddUnknownSize(t *testing.T) {
	env := newTestEnv()

	rec, _ := doJSON(t, env, http.MethodPost, "/api/cart/items", "sess-1",
		`{"productId":"p1","size":"XXXL"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartIssuesSessionWhenMissing(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Header().Get(sessionHeader) == "" {
		t.Fatalf("expected a session id to be issued")
	}
}

func TestClearCart(t *testing.T) {
	env := newTestEnv()

	doJSON(t, env, http.MethodPost, "/api/cart/items", "sess-1", `{"productId":"p1","size":"M"}`)
	rec, body := doJSON(t, env, http.MethodDelete, "/api/cart", "sess-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("clear cart: status %d", rec.Code)
	}
	if got := body["totalItems"].(float64); got != 0 {
		t.Fatalf("expected cleared cart, got %v", got)
	}
}
