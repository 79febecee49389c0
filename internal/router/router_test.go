package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mem "bee-store-api/internal/adapters/storage/memory"
	"bee-store-api/internal/adapters/storage/unavailable"
	"bee-store-api/internal/config"
	"bee-store-api/internal/router"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Catalog: mem.NewCatalogRepo(),
		Orders:  mem.NewOrdersRepo(),
		Diag:    mem.NewDiagnostics(),
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_SeedAndOrder(t *testing.T) {
	ts := newTestServer(t)

	// 1) Seed sobre catálogo vacío inserta los 4 defaults
	{
		st, body := doReq(t, ts.URL, "POST", "/api/seed", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 seed, got %d body=%s", st, string(body))
		}
		var resp struct {
			Message string `json:"message"`
			Count   int64  `json:"count"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Message != "Seeded products" || resp.Count != 4 {
			t.Fatalf("unexpected seed response: %s", string(body))
		}
	}

	// 2) Segundo seed no escribe nada y reporta el count vigente
	{
		st, body := doReq(t, ts.URL, "POST", "/api/seed", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 re-seed, got %d body=%s", st, string(body))
		}
		var resp struct {
			Message string `json:"message"`
			Count   int64  `json:"count"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Message != "Products already seeded" || resp.Count != 4 {
			t.Fatalf("unexpected re-seed response: %s", string(body))
		}
	}

	// 3) Listado devuelve los 4 con ids string bien formados
	products := listProducts(t, ts.URL)
	if len(products) != 4 {
		t.Fatalf("expected 4 products, got %d", len(products))
	}
	for _, p := range products {
		if _, err := primitive.ObjectIDFromHex(p.ID); err != nil {
			t.Fatalf("expected ObjectID-format id, got %q", p.ID)
		}
	}

	// 4) Orden con el primer producto seedeado, quantity 1
	{
		st, body := doReq(t, ts.URL, "POST", "/api/orders", map[string]any{
			"customer_name": "Ana",
			"items": []map[string]any{
				{"product_id": products[0].ID, "quantity": 1},
			},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create order, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &resp)
		if _, err := primitive.ObjectIDFromHex(resp.ID); err != nil {
			t.Fatalf("expected ObjectID-format order id, got %q", resp.ID)
		}
	}

	// 5) Las órdenes no mutan el catálogo
	if got := listProducts(t, ts.URL); len(got) != 4 {
		t.Fatalf("expected catalog untouched at 4 products, got %d", len(got))
	}
}

func TestHTTP_CreateProduct_ThenList(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/products", map[string]any{
		"name":        "Saskatraz Queens",
		"species":     "Apis mellifera",
		"description": "Marked, mated queen ready to introduce.",
		"price":       42.0,
		"image":       "https://example.com/queen.jpg",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create product, got %d body=%s", st, string(body))
	}
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &created)
	if created.ID == "" {
		t.Fatalf("create product: missing id body=%s", string(body))
	}

	products := listProducts(t, ts.URL)
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.ID != created.ID {
		t.Fatalf("expected listed id %q to match created id %q", p.ID, created.ID)
	}
	if p.Name != "Saskatraz Queens" || p.Species != "Apis mellifera" || p.Price != 42.0 {
		t.Fatalf("listed product mismatch: %+v", p)
	}
	if !p.InStock {
		t.Fatalf("expected in_stock default true")
	}
}

func TestHTTP_CreateProduct_Validation(t *testing.T) {
	ts := newTestServer(t)

	// name vacío => 400 antes de escribir
	{
		st, body := doReq(t, ts.URL, "POST", "/api/products", map[string]any{
			"species":     "Apis mellifera",
			"description": "x",
			"price":       1.0,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing name, got %d body=%s", st, string(body))
		}
	}

	// precio negativo => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/products", map[string]any{
			"name":        "x",
			"species":     "y",
			"description": "z",
			"price":       -1.0,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for negative price, got %d", st)
		}
	}

	// json roto => 400
	{
		req, _ := http.NewRequest("POST", ts.URL+"/api/products", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for broken json, got %d", resp.StatusCode)
		}
	}

	if got := listProducts(t, ts.URL); len(got) != 0 {
		t.Fatalf("expected no products after validation failures, got %d", len(got))
	}
}

func TestHTTP_CreateOrder_Errors(t *testing.T) {
	ts := newTestServer(t)

	// catálogo con un producto real para el caso "absent"
	doReq(t, ts.URL, "POST", "/api/seed", nil)

	// items vacío => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/orders", map[string]any{
			"items": []map[string]any{},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for empty items, got %d", st)
		}
	}

	// id malformado => 400 con mensaje de id inválido
	{
		st, body := doReq(t, ts.URL, "POST", "/api/orders", map[string]any{
			"items": []map[string]any{
				{"product_id": "abc", "quantity": 1},
			},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for malformed id, got %d body=%s", st, string(body))
		}
		if detail := errorDetail(t, body); detail != "Invalid product id: abc" {
			t.Fatalf("unexpected detail %q", detail)
		}
	}

	// id bien formado pero inexistente => 400 con mensaje not found
	{
		absent := primitive.NewObjectID().Hex()
		st, body := doReq(t, ts.URL, "POST", "/api/orders", map[string]any{
			"items": []map[string]any{
				{"product_id": absent, "quantity": 1},
			},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for absent id, got %d body=%s", st, string(body))
		}
		if detail := errorDetail(t, body); detail != "Product not found: "+absent {
			t.Fatalf("unexpected detail %q", detail)
		}
	}

	// quantity 0 => 400
	{
		products := listProducts(t, ts.URL)
		st, _ := doReq(t, ts.URL, "POST", "/api/orders", map[string]any{
			"items": []map[string]any{
				{"product_id": products[0].ID, "quantity": 0},
			},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for quantity 0, got %d", st)
		}
	}
}

func TestHTTP_StatusEndpoints(t *testing.T) {
	ts := newTestServer(t)

	{
		st, body := doReq(t, ts.URL, "GET", "/", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 root, got %d", st)
		}
		var resp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Message != "Bee Store API is running" {
			t.Fatalf("unexpected root message %q", resp.Message)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/api/hello", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 hello, got %d", st)
		}
		var resp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Message != "Welcome to the Bee Store" {
			t.Fatalf("unexpected hello message %q", resp.Message)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/test", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 test, got %d", st)
		}
		var resp struct {
			Backend     string   `json:"backend"`
			Database    string   `json:"database"`
			Collections []string `json:"collections"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Backend != "running" {
			t.Fatalf("unexpected backend %q", resp.Backend)
		}
		if resp.Database != "connected and working" {
			t.Fatalf("unexpected database %q", resp.Database)
		}
		if len(resp.Collections) == 0 || resp.Collections[0] != "beeproduct" {
			t.Fatalf("unexpected collections %v", resp.Collections)
		}
	}
}

func TestHTTP_UnavailableStore(t *testing.T) {
	u := unavailable.New("database not configured")
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Config:  config.Config{},
		Catalog: u.Catalog(),
		Orders:  u.Orders(),
		Diag:    u,
	}))
	defer ts.Close()

	// endpoints de datos => 500 con detail
	for _, probe := range []struct {
		method, path string
		payload      any
	}{
		{"GET", "/api/products", nil},
		{"POST", "/api/seed", nil},
	} {
		st, body := doReq(t, ts.URL, probe.method, probe.path, probe.payload)
		if st != http.StatusInternalServerError {
			t.Fatalf("%s %s: expected 500, got %d", probe.method, probe.path, st)
		}
		if detail := errorDetail(t, body); detail != "Database not configured" {
			t.Fatalf("%s %s: unexpected detail %q", probe.method, probe.path, detail)
		}
	}

	// /test lo reporta sin fallar
	{
		st, body := doReq(t, ts.URL, "GET", "/test", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 test, got %d", st)
		}
		var resp struct {
			Database         string `json:"database"`
			DatabaseURL      string `json:"database_url"`
			ConnectionStatus string `json:"connection_status"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Database != "not available" || resp.ConnectionStatus != "not connected" {
			t.Fatalf("unexpected test response: %s", string(body))
		}
		if resp.DatabaseURL != "not set" {
			t.Fatalf("expected database_url 'not set', got %q", resp.DatabaseURL)
		}
	}
}

// -------------------------
// Helpers
// -------------------------

type productJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	InStock     bool    `json:"in_stock"`
}

func listProducts(t *testing.T, baseURL string) []productJSON {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/api/products", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list products, got %d body=%s", st, string(body))
	}

	var resp struct {
		Products []productJSON `json:"products"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode products: %v body=%s", err, string(body))
	}
	return resp.Products
}

func errorDetail(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error body: %v body=%s", err, string(body))
	}
	return resp.Detail
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}
