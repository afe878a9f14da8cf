package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bvieira/accounts-server/internal/apierr"
	"github.com/bvieira/accounts-server/internal/logger"
	"github.com/bvieira/accounts-server/internal/model"
)

// AuthService defines registration, login and token validation operations.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (model.PublicUser, error)
	Login(ctx context.Context, email, password string) (model.PublicUser, string, error)
	ValidateToken(ctx context.Context, token string) (model.PublicUser, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	validator      *validator.Validate
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		validator:      validator.New(),
		logger:         logger,
	}
}

// Only presence is checked at the binding layer. The semantic rules (email
// shape, password strength) belong to the service.
type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User  model.PublicUser `json:"user"`
	Token string           `json:"token"`
}

// Register creates a new user account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "invalid_request_body", Message: "request body must be valid JSON"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "missing_fields", Message: "name, email and password are required"})
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	user, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: registration completed",
		"user_id", user.ID)

	writeJSON(w, http.StatusCreated, user)
}

// Login verifies credentials and returns the user with a session token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "invalid_request_body", Message: "request body must be valid JSON"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "missing_fields", Message: "email and password are required"})
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	user, tokenString, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"user_id", user.ID)

	writeJSON(w, http.StatusOK, loginResponse{User: user, Token: tokenString})
}

// Me returns the user resolved from the request's bearer token by the
// authenticate middleware.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, apierr.NewErrInvalidToken())
		return
	}

	writeJSON(w, http.StatusOK, user)
}
