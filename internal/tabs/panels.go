package tabs

import "github.com/janwedde/product-widget/internal/review"

const (
	DetailsTab  = "Details"
	ShippingTab = "Shipping"

	ReviewsTab    = "Reviews"
	MakeReviewTab = "Make a Review"
)

const NoReviewsMessage = "There are no reviews yet."

// DetailsPanel switches between product details and shipping information.
type DetailsPanel struct {
	*Selector
}

func NewDetailsPanel() *DetailsPanel {
	return &DetailsPanel{Selector: mustSelector(DetailsTab, ShippingTab)}
}

type DetailsData struct {
	Details  []string
	Sizes    []string
	Shipping string
}

// DetailsView carries only the data for the active tab.
type DetailsView struct {
	Tabs     []string `json:"tabs"`
	Selected string   `json:"selected"`
	Details  []string `json:"details,omitempty"`
	Sizes    []string `json:"sizes,omitempty"`
	Shipping string   `json:"shipping,omitempty"`
}

func (p *DetailsPanel) View(d DetailsData) DetailsView {
	v := DetailsView{Tabs: p.Labels(), Selected: p.Selected()}
	switch p.Selected() {
	case DetailsTab:
		v.Details = d.Details
		v.Sizes = d.Sizes
	case ShippingTab:
		v.Shipping = d.Shipping
	}
	return v
}

// ReviewsPanel switches between the review list and the review form.
type ReviewsPanel struct {
	*Selector
}

func NewReviewsPanel() *ReviewsPanel {
	return &ReviewsPanel{Selector: mustSelector(ReviewsTab, MakeReviewTab)}
}

type ReviewsView struct {
	Tabs     []string        `json:"tabs"`
	Selected string          `json:"selected"`
	Reviews  []review.Review `json:"reviews,omitempty"`
	Empty    bool            `json:"empty"`
	ShowForm bool            `json:"showForm"`
}

func (p *ReviewsPanel) View(reviews []review.Review) ReviewsView {
	v := ReviewsView{Tabs: p.Labels(), Selected: p.Selected()}
	switch p.Selected() {
	case ReviewsTab:
		v.Reviews = reviews
		v.Empty = len(reviews) == 0
	case MakeReviewTab:
		v.ShowForm = true
	}
	return v
}
