package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bvieira/accounts-server/internal/apierr"
	"github.com/bvieira/accounts-server/internal/logger"
	"github.com/bvieira/accounts-server/internal/model"
)

// AuthService resolves users from bearer tokens.
type AuthService interface {
	ValidateToken(ctx context.Context, token string) (model.PublicUser, error)
}

// Authenticate validates bearer tokens and injects the resolved user into
// the request context.
type Authenticate struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authService: authService, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and passes the
// request on with the authenticated user in context.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if tokenString == "" {
			m.writeError(w, apierr.NewErrMissingAuthorizationToken())
			return
		}

		user, err := m.authService.ValidateToken(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"error", err.Error())
			m.writeError(w, err)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		w.WriteHeader(apiErr.Status)
		_ = json.NewEncoder(w).Encode(map[string]string{"code": apiErr.Code, "message": apiErr.Message})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"code": "internal_error", "message": "internal server error"})
}
