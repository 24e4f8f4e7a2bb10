package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avolkau/fittrack/internal/logging"
	"github.com/avolkau/fittrack/internal/server/auth"
)

// NewRouter wires the full API surface. Workout routes require a valid
// bearer token, auth routes do not.
func NewRouter(
	authHandler *AuthHandler,
	workoutHandler *WorkoutHandler,
	tokens *auth.TokenIssuer,
	logger logging.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/workouts", func(r chi.Router) {
			r.Use(Authenticator(tokens, logger))
			r.Get("/", workoutHandler.List)
			r.Post("/", workoutHandler.Create)
			r.Get("/{id}", workoutHandler.Get)
			r.Put("/{id}", workoutHandler.Update)
			r.Delete("/{id}", workoutHandler.Delete)
		})
	})

	return r
}
