package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/hidestyle/storefront/internal/http"
	handler "github.com/hidestyle/storefront/internal/http/handlers"
	"github.com/hidestyle/storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{
		Name:     "Premium T-Shirt",
		Category: "Apparel",
		Price:    29.90,
		Stock:    10,
		Sizes:    []string{"S", "M", "L"},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp models.Product
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.ID.IsZero() {
		t.Error("expected server-assigned id")
	}
	if resp.Name != "Premium T-Shirt" {
		t.Errorf("expected name 'Premium T-Shirt', got %v", resp.Name)
	}
	if resp.Price != 29.90 {
		t.Errorf("expected price 29.90, got %v", resp.Price)
	}
	if resp.CreatedAt.IsZero() || resp.UpdatedAt.IsZero() {
		t.Error("expected server-assigned timestamps")
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and negative price",
			payload:        handler.ProductRequest{Name: "", Price: -1},
			expectedErrors: []string{"Name", "Price"},
		},
		{
			name:           "Empty name only",
			payload:        handler.ProductRequest{Name: "", Price: 100.0},
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Negative stock",
			payload:        handler.ProductRequest{Name: "Mouse", Price: 5.0, Stock: -1},
			expectedErrors: []string{"Stock"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_ZeroPriceAllowed(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Freebie", Price: 0})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for zero price, got %d", w.Code)
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	badJSON := `{name: "Invalid" price: 100 "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(badJSON))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestCreateProductHandler_RequiresToken(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	body, _ := json.Marshal(handler.ProductRequest{Name: "Tee", Price: 10})
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestGetProductByIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestGetProductByIDHandler_InvalidIDIsNotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-hex-id", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestGetProductByIDHandler_Found(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Tee", Price: 10})
	var created models.Product
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+created.ID.Hex(), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	if got.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", got.Code)
	}
	var fetched models.Product
	if err := json.NewDecoder(got.Body).Decode(&fetched); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if fetched.ID != created.ID {
		t.Errorf("expected id %s, got %s", created.ID.Hex(), fetched.ID.Hex())
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := updateProduct(r, primitive.NewObjectID().Hex(), handler.ProductRequest{Name: "Ghost", Price: 1})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestUpdateProductHandler_ReplacesMutableFields(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Tee", Category: "Apparel", Price: 10})
	var created models.Product
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	old := 10.0
	w = updateProduct(r, created.ID.Hex(), handler.ProductRequest{
		Name:     "Tee v2",
		Category: "Apparel",
		Price:    8,
		OldPrice: &old,
		Featured: true,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var updated models.Product
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.ID != created.ID {
		t.Error("identifier must be immutable across updates")
	}
	if updated.Name != "Tee v2" || updated.Price != 8 || !updated.Featured {
		t.Errorf("mutable fields not replaced: %+v", updated)
	}
	if updated.OldPrice == nil || *updated.OldPrice != 10 {
		t.Errorf("expected oldPrice 10, got %v", updated.OldPrice)
	}
}

func TestDeleteProductHandler_Twice(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Tee", Price: 10})
	var created models.Product
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	first := deleteProduct(r, created.ID.Hex())
	if first.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on first delete, got %d", first.Code)
	}

	// deletes are idempotent: an absent identifier still yields no content
	second := deleteProduct(r, created.ID.Hex())
	if second.Code != http.StatusNoContent {
		t.Errorf("expected 204 on repeated delete, got %d", second.Code)
	}
}

func TestListProductsHandler_CategoryAndSort(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	seed := []handler.ProductRequest{
		{Name: "Tee", Category: "Apparel", Price: 20},
		{Name: "Sneaker", Category: "Footwear", Price: 120},
		{Name: "Hoodie", Category: "Apparel", Price: 60},
	}
	for _, p := range seed {
		if w := createProduct(r, p); w.Code != http.StatusCreated {
			t.Fatalf("seed failed with %d", w.Code)
		}
	}

	w := listProducts(r, "category=Apparel&sort=price-desc")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("expected 2 Apparel products, got %d", len(products))
	}
	for _, p := range products {
		if p.Category != "Apparel" {
			t.Errorf("expected only Apparel, got %q", p.Category)
		}
	}
	for i := 1; i < len(products); i++ {
		if products[i-1].Price < products[i].Price {
			t.Errorf("expected non-increasing prices, got %v before %v", products[i-1].Price, products[i].Price)
		}
	}
}

func TestListProductsHandler_UnknownSortFallsBackToNewest(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	for _, p := range []handler.ProductRequest{
		{Name: "First", Price: 1},
		{Name: "Second", Price: 2},
	} {
		if w := createProduct(r, p); w.Code != http.StatusCreated {
			t.Fatalf("seed failed with %d", w.Code)
		}
	}

	w := listProducts(r, "sort=bogus")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].CreatedAt.Before(products[1].CreatedAt) {
		t.Errorf("expected newest first, got %q first", products[0].Name)
	}
}

func TestProductsCollection_MethodNotAllowed(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
	allow := w.Header().Get("Allow")
	if !strings.Contains(allow, http.MethodGet) || !strings.Contains(allow, http.MethodPost) {
		t.Errorf("expected Allow to name GET and POST, got %q", allow)
	}
}

func TestProductItem_MethodNotAllowed(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/products/"+primitive.NewObjectID().Hex(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
	allow := w.Header().Get("Allow")
	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		if !strings.Contains(allow, m) {
			t.Errorf("expected Allow to name %s, got %q", m, allow)
		}
	}
}
