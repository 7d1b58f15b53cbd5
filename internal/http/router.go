package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janwedde/product-widget/internal/observability"
)

func NewRouter(h *Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(observability.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(observability.RequestLogger(logger))

	r.Get("/health", h.Health)
	r.Get("/", h.Page)
	r.Get("/api/state", h.State)

	r.Post("/variants/{index}", h.SelectVariant)
	r.Route("/cart", func(r chi.Router) {
		r.Post("/add", h.AddToCart)
		r.Post("/remove", h.RemoveFromCart)
	})
	r.Post("/tabs/{panel}", h.SelectTab)
	r.Post("/reviews", h.SubmitReview)

	return r
}
