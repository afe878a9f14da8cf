package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/bvieira/accounts-server/internal/api/http/handler"
	"github.com/bvieira/accounts-server/internal/api/http/middleware"
	"github.com/bvieira/accounts-server/internal/logger"
	"github.com/bvieira/accounts-server/internal/model"
	"github.com/bvieira/accounts-server/internal/service"
)

// Router wires the HTTP handlers and middleware for the auth API.
type Router struct {
	authHandler  *handler.Auth
	authenticate *middleware.Authenticate
	logging      *middleware.Logging
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authHandler:  handler.NewAuth(authService, contextManager, logger),
		authenticate: middleware.NewAuthenticate(authService, contextManager, logger),
		logging:      middleware.NewLogging(logger),
	}
}

// Register mounts all routes and returns the root handler.
func (r *Router) Register() chi.Router {
	mux := chi.NewRouter()
	mux.Use(r.logging.Handle)

	mux.Route("/api/v1/auth", func(api chi.Router) {
		api.Post("/register", r.authHandler.Register)
		api.Post("/login", r.authHandler.Login)

		api.Group(func(protected chi.Router) {
			protected.Use(r.authenticate.Handle)
			protected.Get("/me", r.authHandler.Me)
		})
	})

	return mux
}
