package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/janwedde/product-widget/internal/events"
	"github.com/janwedde/product-widget/internal/review"
)

// CartIntents receives the add/remove intents a product card emits. The cart
// controller implements it.
type CartIntents interface {
	AddToCart(variantID int)
	RemoveItem(variantID int)
}

// Item is one product card: static product data, the selected variant and the
// reviews received so far.
type Item struct {
	product  Product
	selected int
	reviews  []review.Review

	intents CartIntents
	logger  *zap.Logger
}

// NewItem validates p and subscribes the item to review submissions on ch.
func NewItem(p Product, ch *events.Channel, intents CartIntents, logger *zap.Logger) (*Item, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	it := &Item{
		product: p,
		intents: intents,
		logger:  logger,
	}
	if ch != nil {
		ch.Subscribe(events.ReviewSubmitted, it.handleReviewSubmitted)
	}
	return it, nil
}

// Validate checks the invariants an Item relies on.
func Validate(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Brand) == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidProduct)
	}
	if len(p.Variants) == 0 {
		return fmt.Errorf("%w: at least one variant is required", ErrInvalidProduct)
	}
	seen := make(map[int]struct{}, len(p.Variants))
	for i, v := range p.Variants {
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("%w: duplicate variant id %d", ErrInvalidProduct, v.ID)
		}
		seen[v.ID] = struct{}{}
		if v.Quantity < 0 {
			return fmt.Errorf("%w: variant %d has negative quantity", ErrInvalidProduct, i)
		}
	}
	return nil
}

// Product returns the product data; its slices are copies.
func (it *Item) Product() Product {
	p := it.product
	p.Variants = append([]Variant(nil), p.Variants...)
	p.Details = append([]string(nil), p.Details...)
	p.Sizes = append([]string(nil), p.Sizes...)
	return p
}

// SelectVariant rejects indices outside the variant list and keeps the
// current selection in that case.
func (it *Item) SelectVariant(index int) error {
	if index < 0 || index >= len(it.product.Variants) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVariantOutOfRange, index, len(it.product.Variants))
	}
	it.selected = index
	return nil
}

func (it *Item) SelectedIndex() int {
	return it.selected
}

func (it *Item) SelectedVariant() Variant {
	return it.product.Variants[it.selected]
}

func (it *Item) Title() string {
	return it.product.Brand + " " + it.product.Name
}

func (it *Item) DisplayImage() string {
	return it.SelectedVariant().ImageRef
}

func (it *Item) InStock() bool {
	return it.SelectedVariant().Quantity > 0
}

func (it *Item) SaleMessage() string {
	if it.product.OnSale {
		return it.Title() + " are on sale!"
	}
	return it.Title() + " are not on sale"
}

func (it *Item) ShippingCost(premium bool) ShippingCost {
	if premium {
		return FreeShipping()
	}
	return ShippingAmount(StandardShipping)
}

// AddToCart emits an add intent for the selected variant. Nothing is emitted
// while the variant is out of stock.
func (it *Item) AddToCart() error {
	v := it.SelectedVariant()
	if v.Quantity <= 0 {
		return fmt.Errorf("%w: variant %d", ErrOutOfStock, v.ID)
	}
	if it.intents != nil {
		it.intents.AddToCart(v.ID)
	}
	return nil
}

func (it *Item) RemoveFromCart() {
	if it.intents != nil {
		it.intents.RemoveItem(it.SelectedVariant().ID)
	}
}

// Reviews returns the received reviews in arrival order.
func (it *Item) Reviews() []review.Review {
	return append([]review.Review(nil), it.reviews...)
}

func (it *Item) handleReviewSubmitted(ctx context.Context, env events.Envelope) error {
	r, ok := env.Payload.(review.Review)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedPayload, env.Payload)
	}
	it.reviews = append(it.reviews, r)
	it.logger.Debug("review received",
		zap.String("event_id", env.EventID),
		zap.Int("reviews", len(it.reviews)),
	)
	return nil
}
