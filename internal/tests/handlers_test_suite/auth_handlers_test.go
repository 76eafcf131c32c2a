package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/hidestyle/storefront/internal/http"
	handler "github.com/hidestyle/storefront/internal/http/handlers"
)

func postJSON(r http.Handler, target string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_Valid(t *testing.T) {
	r := api.NewRouter()

	w := postJSON(r, "/api/login", handler.CredentialsRequest{Username: "admin", Password: "secret"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Error("expected both a JWT and a refresh token")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	r := api.NewRouter()

	w := postJSON(r, "/api/login", handler.CredentialsRequest{Username: "admin", Password: "wrong"})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRefreshHandler_RoundTrip(t *testing.T) {
	r := api.NewRouter()

	w := postJSON(r, "/api/login", handler.CredentialsRequest{Username: "admin", Password: "secret"})
	var login handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&login); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	w = postJSON(r, "/api/refresh", handler.RefreshRequest{RefreshToken: login.RefreshToken})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var refreshed handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&refreshed); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if refreshed.Token == "" {
		t.Error("expected a fresh JWT")
	}

	// a refresh token is single use
	w = postJSON(r, "/api/refresh", handler.RefreshRequest{RefreshToken: login.RefreshToken})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 on reused refresh token, got %d", w.Code)
	}
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	r := api.NewRouter()

	w := postJSON(r, "/api/register", handler.CredentialsRequest{Username: "admin", Password: "another-secret"})

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

