package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/hidestyle/storefront/internal/auth"
	api "github.com/hidestyle/storefront/internal/http"
	handler "github.com/hidestyle/storefront/internal/http/handlers"
	"github.com/hidestyle/storefront/internal/models"
	"github.com/hidestyle/storefront/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
)

// memoryRefreshStore stands in for the redis-backed refresh store.
type memoryRefreshStore struct {
	mu     sync.Mutex
	tokens map[string]string
	next   int
}

func (s *memoryRefreshStore) Issue(_ context.Context, username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	t := fmt.Sprintf("refresh-%d", s.next)
	s.tokens[t] = username
	return t, nil
}

func (s *memoryRefreshStore) Redeem(_ context.Context, t string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.tokens[t]
	if !ok {
		return "", auth.ErrRefreshTokenNotFound
	}
	delete(s.tokens, t)
	return username, nil
}

func init() {
	auth.SetSecret("test-secret")
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)
	handler.SetStatsRepo(repo.NewProductStatsRepository(productRepo))
	handler.SetRefreshStore(&memoryRefreshStore{tokens: map[string]string{}})

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	})
}

func clearAllProducts() {
	productRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func updateProduct(r http.Handler, id string, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPut, "/api/products/"+id, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func deleteProduct(r http.Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/products/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listProducts(r http.Handler, query string) *httptest.ResponseRecorder {
	target := "/api/products"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
