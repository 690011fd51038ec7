package handler

import (
	"encoding/json"
	"net/http"

	"github.com/snakesocial/snakesocial-go/internal/api/middleware"
	"github.com/snakesocial/snakesocial-go/internal/api/request"
	"github.com/snakesocial/snakesocial-go/internal/api/response"
	"github.com/snakesocial/snakesocial-go/internal/services/auth"
)

// AuthHandler handles signup, login, logout and identity endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := request.Validate(req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	session, err := h.authService.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := request.Validate(req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetToken(r.Context())

	if err := h.authService.Logout(r.Context(), token); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "Logout successful"})
}

// GetMe handles GET /api/auth/me
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}
