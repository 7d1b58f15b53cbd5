package widget

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/janwedde/product-widget/internal/cart"
	"github.com/janwedde/product-widget/internal/catalog"
	"github.com/janwedde/product-widget/internal/events"
	"github.com/janwedde/product-widget/internal/review"
	"github.com/janwedde/product-widget/internal/tabs"
)

type Options struct {
	Product catalog.Product
	Premium bool
	// AccumulateReviewErrors keeps validation messages across submit attempts.
	AccumulateReviewErrors bool
	Logger                 *zap.Logger
}

// App is the root of the widget. It owns the event channel and the cart and
// wires the product card, review form and tab panels to them.
type App struct {
	premium bool
	logger  *zap.Logger

	Channel *events.Channel
	Cart    *cart.Controller
	Product *catalog.Item
	Form    *review.Form
	Details *tabs.DetailsPanel
	Reviews *tabs.ReviewsPanel
}

func New(opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ch := events.NewChannel(logger.Named("events"))
	c := cart.NewController(logger.Named("cart"))

	item, err := catalog.NewItem(opts.Product, ch, c, logger.Named("catalog"))
	if err != nil {
		return nil, fmt.Errorf("build product card: %w", err)
	}

	formOpts := []review.Option{review.WithLogger(logger.Named("review"))}
	if opts.AccumulateReviewErrors {
		formOpts = append(formOpts, review.WithAccumulatedErrors())
	}

	return &App{
		premium: opts.Premium,
		logger:  logger,
		Channel: ch,
		Cart:    c,
		Product: item,
		Form:    review.NewForm(ch, formOpts...),
		Details: tabs.NewDetailsPanel(),
		Reviews: tabs.NewReviewsPanel(),
	}, nil
}

func (a *App) Premium() bool {
	return a.premium
}

// ReviewInput is one submit attempt as it arrives from the form.
type ReviewInput struct {
	Name           string
	ReviewText     string
	Rating         int
	Recommendation string
}

// SubmitReview copies in into the form and submits it. Input errors (rating
// outside 1..5, unknown recommendation) are returned before any submit.
func (a *App) SubmitReview(ctx context.Context, in ReviewInput) (bool, error) {
	if err := a.Form.Fill(in.Name, in.ReviewText, in.Rating, in.Recommendation); err != nil {
		return false, err
	}
	_, ok, err := a.Form.Submit(ctx)
	return ok, err
}

// Snapshot is the full, serialisable state of the widget.
type Snapshot struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	AltText      string               `json:"altText"`
	Link         string               `json:"link"`
	Image        string               `json:"image"`
	InStock      bool                 `json:"inStock"`
	OnSale       bool                 `json:"onSale"`
	SaleMessage  string               `json:"saleMessage"`
	Shipping     catalog.ShippingCost `json:"shipping"`
	Variants     []catalog.Variant    `json:"variants"`
	Selected     int                  `json:"selectedVariant"`
	Cart         []int                `json:"cart"`
	Details      tabs.DetailsView     `json:"details"`
	Reviews      tabs.ReviewsView     `json:"reviews"`
	ReviewErrors []string             `json:"reviewErrors"`
	Form         review.Fields        `json:"-"`
}

func (a *App) Snapshot() Snapshot {
	p := a.Product.Product()
	shipping := a.Product.ShippingCost(a.premium)

	cartItems := a.Cart.Items()
	if cartItems == nil {
		cartItems = []int{}
	}

	return Snapshot{
		Title:       a.Product.Title(),
		Description: p.Description,
		AltText:     p.AltText,
		Link:        p.Link,
		Image:       a.Product.DisplayImage(),
		InStock:     a.Product.InStock(),
		OnSale:      p.OnSale,
		SaleMessage: a.Product.SaleMessage(),
		Shipping:    shipping,
		Variants:    p.Variants,
		Selected:    a.Product.SelectedIndex(),
		Cart:        cartItems,
		Details: a.Details.View(tabs.DetailsData{
			Details:  p.Details,
			Sizes:    p.Sizes,
			Shipping: shipping.String(),
		}),
		Reviews:      a.Reviews.View(a.Product.Reviews()),
		ReviewErrors: a.Form.Errors(),
		Form:         a.Form.Fields(),
	}
}
