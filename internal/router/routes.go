package router

import (
	"net/http"

	"github.com/AlenaMolokova/cardform/internal/handlers"
	"github.com/AlenaMolokova/cardform/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	CardPrefix   = "/api/card"
	InputPath    = "/input"
	ValidatePath = "/validate"
	ExpiryPath   = "/expiry"
	BrandsPath   = "/brands"
	HealthPath   = "/healthz"
)

// SetupRoutes builds the HTTP API. An empty jwtSecret leaves the card
// endpoints open.
func SetupRoutes(service handlers.CardInputService, validator handlers.RequestValidator, jwtSecret string, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if jwtSecret != "" {
			r.Use(middleware.AuthMiddleware(jwtSecret, log))
		}
		r.Post(CardPrefix+InputPath, handlers.NewInputHandler(service, validator, log).ServeHTTP)
		r.Post(CardPrefix+ValidatePath, handlers.NewValidateHandler(service, validator, log).ServeHTTP)
		r.Post(CardPrefix+ExpiryPath, handlers.NewExpiryHandler(service, validator, log).ServeHTTP)
		r.Get(CardPrefix+BrandsPath, handlers.NewBrandsHandler(service, log).ServeHTTP)
	})

	return r
}
