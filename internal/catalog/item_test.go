package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janwedde/product-widget/internal/events"
	"github.com/janwedde/product-widget/internal/review"
)

type fakeIntents struct {
	added   []int
	removed []int
}

func (f *fakeIntents) AddToCart(id int)  { f.added = append(f.added, id) }
func (f *fakeIntents) RemoveItem(id int) { f.removed = append(f.removed, id) }

func testProduct() Product {
	return Product{
		Name:  "Socks",
		Brand: "Vue Mastery",
		Variants: []Variant{
			{ID: 2234, Color: "green", ImageRef: "green.jpg", Quantity: 10},
			{ID: 2235, Color: "blue", ImageRef: "blue.jpg", Quantity: 0},
		},
		OnSale: true,
	}
}

func newTestItem(t *testing.T) (*Item, *events.Channel, *fakeIntents) {
	t.Helper()
	ch := events.NewChannel(nil)
	intents := &fakeIntents{}
	it, err := NewItem(testProduct(), ch, intents, nil)
	require.NoError(t, err)
	return it, ch, intents
}

func TestDerivedFields(t *testing.T) {
	it, _, _ := newTestItem(t)

	assert.Equal(t, "Vue Mastery Socks", it.Title())
	assert.Equal(t, "green.jpg", it.DisplayImage())
	assert.True(t, it.InStock())
	assert.Equal(t, "Vue Mastery Socks are on sale!", it.SaleMessage())
}

func TestSaleMessageWhenNotOnSale(t *testing.T) {
	p := testProduct()
	p.OnSale = false
	it, err := NewItem(p, nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Vue Mastery Socks are not on sale", it.SaleMessage())
}

func TestSelectVariantDrivesImageAndStock(t *testing.T) {
	it, _, _ := newTestItem(t)
	p := it.Product()

	for i := range p.Variants {
		require.NoError(t, it.SelectVariant(i))
		assert.Equal(t, p.Variants[i].ImageRef, it.DisplayImage())
		assert.Equal(t, p.Variants[i].Quantity != 0, it.InStock())
	}
}

func TestSelectVariantRejectsOutOfRange(t *testing.T) {
	it, _, _ := newTestItem(t)
	require.NoError(t, it.SelectVariant(1))

	for _, idx := range []int{-1, 2, 100} {
		err := it.SelectVariant(idx)
		assert.ErrorIs(t, err, ErrVariantOutOfRange)
		assert.Equal(t, 1, it.SelectedIndex())
	}
}

func TestShippingCost(t *testing.T) {
	it, _, _ := newTestItem(t)

	free := it.ShippingCost(true)
	assert.True(t, free.IsFree())
	assert.Equal(t, "Free", free.String())
	_, ok := free.Amount()
	assert.False(t, ok)

	paid := it.ShippingCost(false)
	assert.False(t, paid.IsFree())
	amount, ok := paid.Amount()
	require.True(t, ok)
	assert.Equal(t, 2.99, amount)
	assert.Equal(t, "2.99", paid.String())
}

func TestShippingCostJSON(t *testing.T) {
	raw, err := json.Marshal(FreeShipping())
	require.NoError(t, err)
	assert.JSONEq(t, `"Free"`, string(raw))

	raw, err = json.Marshal(ShippingAmount(StandardShipping))
	require.NoError(t, err)
	assert.JSONEq(t, `2.99`, string(raw))
}

func TestCartIntentsCarrySelectedVariantID(t *testing.T) {
	it, _, intents := newTestItem(t)

	require.NoError(t, it.AddToCart())
	it.RemoveFromCart()

	require.NoError(t, it.SelectVariant(1))
	it.RemoveFromCart()

	assert.Equal(t, []int{2234}, intents.added)
	assert.Equal(t, []int{2234, 2235}, intents.removed)
}

func TestAddToCartOutOfStockEmitsNothing(t *testing.T) {
	it, _, intents := newTestItem(t)
	require.NoError(t, it.SelectVariant(1))

	err := it.AddToCart()
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Empty(t, intents.added)
}

func TestReviewSubscriptionAppendsInArrivalOrder(t *testing.T) {
	it, ch, _ := newTestItem(t)
	first := review.Review{ReviewerName: "Ada", ReviewText: "first", Rating: 5, Recommendation: review.RecommendYes}
	second := review.Review{ReviewerName: "Grace", ReviewText: "second", Rating: 3, Recommendation: review.RecommendNo}

	require.NoError(t, ch.Publish(context.Background(), events.ReviewSubmitted, first))
	require.NoError(t, ch.Publish(context.Background(), events.ReviewSubmitted, second))

	assert.Equal(t, []review.Review{first, second}, it.Reviews())
}

func TestReviewSubscriptionRejectsForeignPayload(t *testing.T) {
	it, ch, _ := newTestItem(t)

	err := ch.Publish(context.Background(), events.ReviewSubmitted, "not a review")
	assert.ErrorIs(t, err, ErrUnexpectedPayload)
	assert.Empty(t, it.Reviews())
}

func TestReviewFormToItemFlow(t *testing.T) {
	it, ch, _ := newTestItem(t)
	form := review.NewForm(ch)

	form.SetName("Ada")
	form.SetReviewText("Warm.")
	require.NoError(t, form.SetRating(4))
	require.NoError(t, form.SetRecommendation("Yes"))

	_, ok, err := form.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	reviews := it.Reviews()
	require.Len(t, reviews, 1)
	assert.Equal(t, "Ada", reviews[0].ReviewerName)
	assert.Empty(t, form.Errors())
}

func TestReviewsReturnsCopy(t *testing.T) {
	it, ch, _ := newTestItem(t)
	require.NoError(t, ch.Publish(context.Background(), events.ReviewSubmitted, review.Review{ReviewerName: "Ada"}))

	got := it.Reviews()
	got[0].ReviewerName = "mutated"
	assert.Equal(t, "Ada", it.Reviews()[0].ReviewerName)
}

func TestNewItemValidatesProduct(t *testing.T) {
	tests := map[string]func(p *Product){
		"missing name":      func(p *Product) { p.Name = "" },
		"missing brand":     func(p *Product) { p.Brand = " " },
		"no variants":       func(p *Product) { p.Variants = nil },
		"duplicate ids":     func(p *Product) { p.Variants[1].ID = p.Variants[0].ID },
		"negative quantity": func(p *Product) { p.Variants[0].Quantity = -1 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			p := testProduct()
			mutate(&p)
			_, err := NewItem(p, nil, nil, nil)
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}
}

func TestProductReturnsCopies(t *testing.T) {
	it, _, _ := newTestItem(t)

	p := it.Product()
	p.Variants[0].Quantity = 0
	p.Variants[1].Color = "red"

	again := it.Product()
	assert.Equal(t, 10, again.Variants[0].Quantity)
	assert.Equal(t, "blue", again.Variants[1].Color)
	assert.True(t, it.InStock())
}
