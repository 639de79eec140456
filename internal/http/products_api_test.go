package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"ecofinds/internal/domain"
	"ecofinds/internal/http/handlers"
	"ecofinds/internal/services"
	"ecofinds/internal/store"
)

// newAPIApp wires the JSON API over seeded stores. The API routes render no
// templates, so no view engine is needed here.
func newAPIApp(t *testing.T) *fiber.App {
	t.Helper()

	products := store.NewSeededProducts()
	orders := store.NewSeededOrders()
	chat := store.NewChat()
	deps := handlers.NewDeps(products, orders, chat, &services.AuthService{})

	app := fiber.New()
	app.Use(requestid.New())

	api := app.Group("/api")
	api.Get("/products", deps.ProductHandler.List)
	api.Post("/products", deps.ProductHandler.Create)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Put("/products/:id", deps.ProductHandler.Update)
	api.Delete("/products/:id", deps.ProductHandler.Delete)

	api.Get("/orders", deps.OrderHandler.List)
	api.Post("/orders", deps.OrderHandler.Place)
	api.Get("/orders/:id", deps.OrderHandler.Get)

	api.Get("/chat/conversations", deps.ChatHandler.Conversations)
	api.Post("/chat/conversations", deps.ChatHandler.CreateConversation)
	api.Get("/chat/messages", deps.ChatHandler.Messages)
	api.Post("/chat/messages", deps.ChatHandler.SendMessage)

	api.Post("/payment", deps.PaymentHandler.Process)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

type productsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

func TestProductsListDefault(t *testing.T) {
	app := newAPIApp(t)
	resp := doJSON(t, app, "GET", "/api/products", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var body productsResponse
	decodeInto(t, resp, &body)
	if body.Total != 6 || len(body.Products) != 6 {
		t.Fatalf("total=%d len=%d, want 6", body.Total, len(body.Products))
	}
	if body.Products[0].ID != "1" {
		t.Fatalf("newest-first: got %s", body.Products[0].ID)
	}
}

func TestProductsListLaptopScenario(t *testing.T) {
	app := newAPIApp(t)
	resp := doJSON(t, app, "GET", "/api/products?q=laptop&sort=price-low", nil)
	var body productsResponse
	decodeInto(t, resp, &body)
	if body.Total != 1 || body.Products[0].Title != "MacBook Air M1 (2020)" {
		t.Fatalf("q=laptop: total=%d products=%+v", body.Total, body.Products)
	}
}

func TestProductsListFilters(t *testing.T) {
	app := newAPIApp(t)

	// Unknown vocabulary values are empty results, not errors.
	resp := doJSON(t, app, "GET", "/api/products?category=spaceships", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unknown category status %d", resp.StatusCode)
	}
	var body productsResponse
	decodeInto(t, resp, &body)
	if body.Total != 0 {
		t.Fatalf("unknown category total %d", body.Total)
	}

	// Inverted price range is empty, not an error.
	resp = doJSON(t, app, "GET", "/api/products?minPrice=500&maxPrice=100", nil)
	decodeInto(t, resp, &body)
	if body.Total != 0 {
		t.Fatalf("inverted range total %d", body.Total)
	}

	// Location is a case-insensitive substring.
	resp = doJSON(t, app, "GET", "/api/products?location=portland", nil)
	decodeInto(t, resp, &body)
	if body.Total != 1 || body.Products[0].Title != "Ceramic Plant Pots Set" {
		t.Fatalf("location filter: %+v", body.Products)
	}

	// Search + filter compose with AND semantics.
	resp = doJSON(t, app, "GET", "/api/products?q=book&maxPrice=100", nil)
	decodeInto(t, resp, &body)
	for _, p := range body.Products {
		if p.Price > 100 {
			t.Fatalf("maxPrice leaked %s at %v", p.ID, p.Price)
		}
	}
}

func TestProductsListMalformedPriceIs400(t *testing.T) {
	app := newAPIApp(t)
	for _, target := range []string{"/api/products?minPrice=abc", "/api/products?maxPrice=1x"} {
		resp := doJSON(t, app, "GET", target, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: status %d, want 400", target, resp.StatusCode)
		}
	}
}

func TestProductsListUnknownSortFallsBack(t *testing.T) {
	app := newAPIApp(t)
	resp := doJSON(t, app, "GET", "/api/products?sort=bestest", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var body productsResponse
	decodeInto(t, resp, &body)
	if body.Products[0].ID != "1" {
		t.Fatalf("fallback sort first = %s", body.Products[0].ID)
	}
}

func TestProductsCRUDOverHTTP(t *testing.T) {
	app := newAPIApp(t)

	// Missing required field
	resp := doJSON(t, app, "POST", "/api/products", fiber.Map{
		"description": "no title", "price": 10, "category": "books", "condition": "good", "location": "Austin, TX",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing title: status %d", resp.StatusCode)
	}
	var errBody struct {
		Error string `json:"error"`
	}
	decodeInto(t, resp, &errBody)
	if errBody.Error != "Missing required field: title" {
		t.Fatalf("error message %q", errBody.Error)
	}

	// Create with defaults
	resp = doJSON(t, app, "POST", "/api/products", fiber.Map{
		"title": "Retro Radio", "description": "Working tube radio", "price": 60,
		"category": "electronics", "condition": "fair", "location": "Denver, CO",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}
	var created struct {
		Product domain.Product `json:"product"`
	}
	decodeInto(t, resp, &created)
	p := created.Product
	if p.ID == "" || p.SellerID != "current-user" || p.SellerName != "Current User" || p.SellerRating != 5.0 {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if len(p.Images) != 1 || !strings.Contains(p.Images[0], "placeholder.svg") {
		t.Fatalf("placeholder image missing: %v", p.Images)
	}

	// Read it back
	resp = doJSON(t, app, "GET", "/api/products/"+p.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: status %d", resp.StatusCode)
	}

	// Partial update
	resp = doJSON(t, app, "PUT", "/api/products/"+p.ID, fiber.Map{"price": 99})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: status %d", resp.StatusCode)
	}
	var updated struct {
		Product domain.Product `json:"product"`
	}
	decodeInto(t, resp, &updated)
	if updated.Product.Price != 99 || updated.Product.Title != "Retro Radio" {
		t.Fatalf("partial update: %+v", updated.Product)
	}
	if !updated.Product.UpdatedAt.After(p.UpdatedAt) {
		t.Fatal("UpdatedAt did not advance")
	}

	// Delete, then the id is gone
	resp = doJSON(t, app, "DELETE", "/api/products/"+p.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "DELETE", "/api/products/"+p.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete: status %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "GET", "/api/products/"+p.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: status %d", resp.StatusCode)
	}
}

func TestProductsUnknownIDIs404(t *testing.T) {
	app := newAPIApp(t)
	resp := doJSON(t, app, "GET", "/api/products/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "PUT", "/api/products/nope", fiber.Map{"price": 1})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("put status %d", resp.StatusCode)
	}
}

func TestProductsNegativePriceRejected(t *testing.T) {
	app := newAPIApp(t)
	resp := doJSON(t, app, "POST", "/api/products", fiber.Map{
		"title": "Bad", "description": "negative", "price": -5,
		"category": "books", "condition": "good", "location": "Austin, TX",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative price: status %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "PUT", "/api/products/1", fiber.Map{"price": -1})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative price update: status %d", resp.StatusCode)
	}
}
