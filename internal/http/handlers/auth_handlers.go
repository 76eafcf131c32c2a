package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/hidestyle/storefront/internal/auth"
	"github.com/hidestyle/storefront/internal/models"
	"github.com/hidestyle/storefront/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// RegisterHandler godoc
// @Summary Register new admin account and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 201 {object} RegisterResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if creds.Username == "" || creds.Password == "" {
		errorJSON(w, http.StatusBadRequest, "missing credentials")
		return
	}

	if len(creds.Username) < 3 || len(creds.Password) < 6 {
		errorJSON(w, http.StatusBadRequest, "username or password too short")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Username:     creds.Username,
		PasswordHash: string(hashed),
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	}

	created, err := userRepo.CreateUser(user)
	if err != nil {
		if errors.Is(err, repo.ErrUserExists) {
			errorJSON(w, http.StatusConflict, "username already exists")
		} else {
			errorJSON(w, http.StatusInternalServerError, "failed to register user")
		}
		return
	}

	token, err := auth.GenerateToken(created)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResult{
		Message: "user registered",
		Token:   token,
	})
}

// LoginHandler godoc
// @Summary Log in and receive a JWT plus a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	user, err := userRepo.GetByUsername(creds.Username)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		errorJSON(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	refresh, err := refreshStore.Issue(r.Context(), user.Username)
	if err != nil {
		log.Printf("failed to issue refresh token: %v", err)
		errorJSON(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{Token: token, RefreshToken: refresh})
}

// RefreshHandler godoc
// @Summary Exchange a refresh token for a new JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body RefreshRequest true "refresh token"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/refresh [post]
func RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := readJSON(w, r, &req); err != nil || req.RefreshToken == "" {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	username, err := refreshStore.Redeem(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrRefreshTokenNotFound) {
			errorJSON(w, http.StatusUnauthorized, "invalid refresh token")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "failed to refresh token")
		return
	}

	user, err := userRepo.GetByUsername(username)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	refresh, err := refreshStore.Issue(r.Context(), user.Username)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{Token: token, RefreshToken: refresh})
}
