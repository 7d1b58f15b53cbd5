package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/janwedde/product-widget/internal/catalog"
	"github.com/janwedde/product-widget/internal/review"
	"github.com/janwedde/product-widget/internal/tabs"
	"github.com/janwedde/product-widget/internal/view"
	"github.com/janwedde/product-widget/internal/widget"
)

// Handler hosts one widget. The widget is single-threaded, so every request
// holds mu for its whole duration.
type Handler struct {
	mu       sync.Mutex
	app      *widget.App
	renderer *view.Renderer
	logger   *zap.Logger
}

func NewHandler(app *widget.App, renderer *view.Renderer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{app: app, renderer: renderer, logger: logger}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	snap := h.app.Snapshot()
	h.mu.Unlock()

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, snap); err != nil {
		h.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	snap := h.app.Snapshot()
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) SelectVariant(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	err = h.app.Product.SelectVariant(index)
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, catalog.ErrVariantOutOfRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	err := h.app.Product.AddToCart()
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, catalog.ErrOutOfStock) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.app.Product.RemoveFromCart()
	h.mu.Unlock()

	redirectHome(w, r)
}

func (h *Handler) SelectTab(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	label := r.PostForm.Get("tab")

	h.mu.Lock()
	var err error
	switch chi.URLParam(r, "panel") {
	case "details":
		err = h.app.Details.Select(label)
	case "reviews":
		err = h.app.Reviews.Select(label)
	default:
		h.mu.Unlock()
		http.Error(w, "unknown panel", http.StatusBadRequest)
		return
	}
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, tabs.ErrUnknownTab) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

// SubmitReview accepts the review form. Validation failures are not HTTP
// errors: they are kept on the form and shown on the next page render.
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	in := widget.ReviewInput{
		Name:           r.PostForm.Get("name"),
		ReviewText:     r.PostForm.Get("review"),
		Recommendation: r.PostForm.Get("recommendation"),
	}
	if raw := strings.TrimSpace(r.PostForm.Get("rating")); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, review.ErrInvalidRating.Error(), http.StatusBadRequest)
			return
		}
		in.Rating = rating
	}

	h.mu.Lock()
	_, err := h.app.SubmitReview(r.Context(), in)
	h.mu.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating), errors.Is(err, review.ErrInvalidRecommendation):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			// The review was accepted; only a subscriber failed.
			h.logger.Error("deliver review", zap.Error(err))
		}
	}
	redirectHome(w, r)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
