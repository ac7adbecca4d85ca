package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"mercadito/internal/config"
	"mercadito/internal/http/handlers"
	"mercadito/internal/store"
)

const adminToken = "hunter2"

func seedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// newApp stands up the full route tree over a file-backed store seeded
// with a two-product catalog.
func newApp(t *testing.T, adminHash string) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	seedFile(t, dir, "products", `[
	  {"id": 1, "title": "Samsung Galaxy A55", "description": "Pantalla AMOLED",
	   "brand": "Samsung", "model": "Galaxy A55", "condition": "new",
	   "price": 439999, "currency": "ARS", "availableQuantity": 5, "soldQuantity": 500,
	   "categories": [1], "sellerId": 1, "paymentMethodIds": ["visa", "master", "rapipago"]},
	  {"id": 2, "title": "Apple iPhone 13", "description": "Chip A15",
	   "brand": "Apple", "model": "iPhone 13", "condition": "new",
	   "price": 899999, "currency": "ARS", "availableQuantity": 8, "soldQuantity": 1200,
	   "categories": [1], "sellerId": 1, "paymentMethodIds": ["visa"]}
	]`)
	seedFile(t, dir, "categories", `[
	  {"id": 1, "name": "Celulares y Smartphones", "path": ["Tecnologia", "Celulares"]}
	]`)
	seedFile(t, dir, "sellers", `[
	  {"id": 1, "name": "TecnoHouse", "reputation": "green", "level": 5,
	   "salesCount": 15430, "isOfficialStore": true}
	]`)
	seedFile(t, dir, "images", `[
	  {"id": 1, "productId": 1, "url": "/img/a55-front.webp", "order": 1, "isMain": true}
	]`)
	seedFile(t, dir, "priceHistory", `[
	  {"id": 1, "productId": 1, "price": 439999, "currency": "ARS",
	   "date": "2025-06-10T00:00:00Z", "type": "current"}
	]`)
	seedFile(t, dir, "paymentMethods", `[
	  {"id": "visa", "name": "Visa", "type": "credit_card", "enabled": true, "priority": 1},
	  {"id": "master", "name": "Mastercard", "type": "credit_card", "enabled": true, "priority": 2},
	  {"id": "rapipago", "name": "Rapipago", "type": "cash_payment", "enabled": false, "priority": 7}
	]`)
	seedFile(t, dir, "comments", `[
	  {"id": 1, "productId": 1, "userName": "MARIANA G.", "rating": 5,
	   "comment": "Excelente", "date": "2025-06-18T14:02:00Z"},
	  {"id": 2, "productId": 1, "userName": "JULIAN P.", "rating": 4,
	   "comment": "Muy bueno", "date": "2025-06-22T09:41:00Z"},
	  {"id": 3, "productId": 1, "userName": "SOFIA R.", "rating": 5,
	   "comment": "Feliz", "date": "2025-07-01T19:15:00Z"}
	]`)
	seedFile(t, dir, "purchases", `[]`)

	st, err := store.Open(config.Config{Backend: "file", DataDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	app := fiber.New()
	handlers.Register(app, handlers.NewDeps(st), adminHash)
	return app
}

func adminHash(t *testing.T) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(adminToken), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func do(t *testing.T, app *fiber.App, method, path, body string, header ...string) (*http.Response, []byte) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	return resp, data
}

func TestListProducts(t *testing.T) {
	app := newApp(t, "")
	resp, body := do(t, app, "GET", "/api/products", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	var products []map[string]any
	if err := json.Unmarshal(body, &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("want 2 products, got %d", len(products))
	}
}

func TestGetProduct(t *testing.T) {
	app := newApp(t, "")

	resp, body := do(t, app, "GET", "/api/products/1", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	var p map[string]any
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatal(err)
	}
	if p["title"] != "Samsung Galaxy A55" {
		t.Fatalf("title: %v", p["title"])
	}

	resp, _ = do(t, app, "GET", "/api/products/999", "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown product: want 404, got %d", resp.StatusCode)
	}

	// ids outside the safe charset are treated as not found, not echoed
	resp, _ = do(t, app, "GET", "/api/products/'or1=1", "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("hostile id: want 404, got %d", resp.StatusCode)
	}
}

func TestProductDetail(t *testing.T) {
	app := newApp(t, "")
	resp, body := do(t, app, "GET", "/api/products/1/detail", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	var d map[string]any
	if err := json.Unmarshal(body, &d); err != nil {
		t.Fatal(err)
	}
	cat, _ := d["category"].(map[string]any)
	if cat == nil || cat["name"] != "Celulares y Smartphones" {
		t.Fatalf("category not joined: %v", d["category"])
	}
	seller, _ := d["seller"].(map[string]any)
	if seller == nil || seller["name"] != "TecnoHouse" {
		t.Fatalf("seller not joined: %v", d["seller"])
	}
	if d["currentPrice"] != float64(439999) {
		t.Fatalf("currentPrice: %v", d["currentPrice"])
	}
}

func TestSearch(t *testing.T) {
	app := newApp(t, "")

	resp, body := do(t, app, "GET", "/api/products/search?q=", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("empty query must yield []: %s", body)
	}

	_, body = do(t, app, "GET", "/api/products/search?q=samsung", "")
	var products []map[string]any
	if err := json.Unmarshal(body, &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0]["title"] != "Samsung Galaxy A55" {
		t.Fatalf("search: %s", body)
	}
}

func TestReviewSummaryEndpoint(t *testing.T) {
	app := newApp(t, "")
	resp, body := do(t, app, "GET", "/api/products/1/reviews/summary", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	var s map[string]any
	if err := json.Unmarshal(body, &s); err != nil {
		t.Fatal(err)
	}
	if s["averageRating"] != 4.7 {
		t.Fatalf("averageRating: %v", s["averageRating"])
	}
	if s["totalReviews"] != float64(3) {
		t.Fatalf("totalReviews: %v", s["totalReviews"])
	}
}

func TestPaymentMethodsForProduct(t *testing.T) {
	app := newApp(t, "")

	resp, body := do(t, app, "GET", "/api/products/1/payment-methods", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	var methods []map[string]any
	if err := json.Unmarshal(body, &methods); err != nil {
		t.Fatal(err)
	}
	// rapipago is accepted by the product but disabled platform-wide
	if len(methods) != 2 {
		t.Fatalf("want visa and master, got %s", body)
	}
	if methods[0]["id"] != "visa" || methods[1]["id"] != "master" {
		t.Fatalf("priority order: %s", body)
	}

	resp, _ = do(t, app, "GET", "/api/products/999/payment-methods", "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown product: want 404, got %d", resp.StatusCode)
	}
}

func TestPurchaseEndpoint(t *testing.T) {
	app := newApp(t, "")

	resp, body := do(t, app, "POST", "/api/products/1/purchase", `{"quantity": 2}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	var res map[string]any
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatal(err)
	}
	if res["success"] != true {
		t.Fatalf("purchase rejected: %s", body)
	}
	product, _ := res["product"].(map[string]any)
	if product == nil || product["availableQuantity"] != float64(3) {
		t.Fatalf("stock after purchase: %s", body)
	}

	resp, body = do(t, app, "POST", "/api/products/1/purchase", `{"quantity": 10}`)
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("oversell: want 409, got %d: %s", resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatal(err)
	}
	if res["message"] != "Not enough stock" {
		t.Fatalf("oversell message: %s", body)
	}

	resp, _ = do(t, app, "POST", "/api/products/999/purchase", `{"quantity": 1}`)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown product: want 404, got %d", resp.StatusCode)
	}

	resp, _ = do(t, app, "POST", "/api/products/1/purchase", `{"quantity": 1.5}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("fractional quantity: want 400, got %d", resp.StatusCode)
	}

	resp, _ = do(t, app, "POST", "/api/products/1/purchase", `{"quantity":`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("broken body: want 400, got %d", resp.StatusCode)
	}
}

func TestAdminPriceUpdateAuth(t *testing.T) {
	app := newApp(t, adminHash(t))

	resp, _ := do(t, app, "PUT", "/api/admin/products/1/price", `{"price": 999}`)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("no token: want 401, got %d", resp.StatusCode)
	}

	resp, _ = do(t, app, "PUT", "/api/admin/products/1/price", `{"price": 999}`,
		fiber.HeaderAuthorization, "Bearer wrong")
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("bad token: want 403, got %d", resp.StatusCode)
	}

	resp, body := do(t, app, "PUT", "/api/admin/products/1/price", `{"price": 999}`,
		fiber.HeaderAuthorization, "Bearer "+adminToken)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("valid token: want 200, got %d: %s", resp.StatusCode, body)
	}
	var d map[string]any
	if err := json.Unmarshal(body, &d); err != nil {
		t.Fatal(err)
	}
	if d["currentPrice"] != float64(999) {
		t.Fatalf("price not applied: %s", body)
	}

	resp, _ = do(t, app, "PUT", "/api/admin/products/1/price", `{"price": -5}`,
		fiber.HeaderAuthorization, "Bearer "+adminToken)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("negative price: want 400, got %d", resp.StatusCode)
	}
}

func TestAdminDisabledWithoutHash(t *testing.T) {
	app := newApp(t, "")
	resp, _ := do(t, app, "PUT", "/api/admin/products/1/price", `{"price": 999}`,
		fiber.HeaderAuthorization, "Bearer "+adminToken)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("disabled admin: want 403, got %d", resp.StatusCode)
	}
}

func TestSellerRoutes(t *testing.T) {
	app := newApp(t, "")

	resp, body := do(t, app, "GET", "/api/sellers/1", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	var s map[string]any
	if err := json.Unmarshal(body, &s); err != nil {
		t.Fatal(err)
	}
	if s["isOfficialStore"] != true {
		t.Fatalf("seller payload: %s", body)
	}

	_, body = do(t, app, "GET", "/api/sellers/1/products", "")
	var listings []map[string]any
	if err := json.Unmarshal(body, &listings); err != nil {
		t.Fatal(err)
	}
	if len(listings) != 2 {
		t.Fatalf("want 2 listings, got %s", body)
	}

	resp, _ = do(t, app, "GET", "/api/sellers/999", "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown seller: want 404, got %d", resp.StatusCode)
	}
}

func TestCategoryRoute(t *testing.T) {
	app := newApp(t, "")
	resp, body := do(t, app, "GET", "/api/products/category/1", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	var listings []map[string]any
	if err := json.Unmarshal(body, &listings); err != nil {
		t.Fatal(err)
	}
	if len(listings) != 2 {
		t.Fatalf("want both products in category 1, got %s", body)
	}
}
