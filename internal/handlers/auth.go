package handlers

import (
	"net/http"

	"devdiary/internal/contextutil"
	"devdiary/internal/service"
)

// AuthHandler handles account and session requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest is the body of register and login requests.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register creates an account. The caller must log in separately.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.authService.Register(r.Context(), service.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to register")
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, user)
}

// Login starts a session and returns its tokens.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.authService.Login(r.Context(), service.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to log in")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, result)
}

// Refresh exchanges a refresh token for a new token pair.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	pair, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to refresh token")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, pair)
}

// Logout ends the local session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context()); err != nil {
		handleServiceError(w, r.Context(), err, "Failed to log out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the current user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := h.authService.Me(ctx, contextutil.SessionFromContext(ctx))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load user")
		return
	}
	writeJSON(ctx, w, http.StatusOK, user)
}
