package review

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/janwedde/product-widget/internal/events"
)

// Validation messages, appended in this order.
const (
	MsgNameRequired           = "Name required."
	MsgReviewRequired         = "Review required."
	MsgRatingRequired         = "Rating required."
	MsgRecommendationRequired = "Recommendation required."
)

// Fields is the form's transient input. Zero values mean "not entered".
type Fields struct {
	Name           string
	ReviewText     string
	Rating         int
	Recommendation Recommendation
}

type Option func(*Form)

// WithAccumulatedErrors keeps earlier validation messages across submit
// attempts instead of resetting the list each time.
func WithAccumulatedErrors() Option {
	return func(f *Form) { f.accumulate = true }
}

func WithLogger(logger *zap.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Form collects review input, validates it on Submit and publishes accepted
// reviews on the channel under events.ReviewSubmitted.
type Form struct {
	channel    *events.Channel
	logger     *zap.Logger
	accumulate bool

	fields Fields
	errors []string
}

func NewForm(channel *events.Channel, opts ...Option) *Form {
	f := &Form{
		channel: channel,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) SetName(name string) {
	f.fields.Name = name
}

func (f *Form) SetReviewText(text string) {
	f.fields.ReviewText = text
}

// Fill replaces all four fields at once. If the rating or recommendation is
// rejected the form is left untouched.
func (f *Form) Fill(name, text string, rating int, recommendation string) error {
	if rating != 0 && !validRating(rating) {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}
	var rec Recommendation
	if recommendation != "" {
		var err error
		if rec, err = ParseRecommendation(recommendation); err != nil {
			return err
		}
	}
	f.fields = Fields{Name: name, ReviewText: text, Rating: rating, Recommendation: rec}
	return nil
}

// SetRating accepts only the discrete ratings 1..5; 0 clears the field.
func (f *Form) SetRating(rating int) error {
	if rating != 0 && !validRating(rating) {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}
	f.fields.Rating = rating
	return nil
}

// SetRecommendation accepts "Yes" or "No"; the empty string clears the field.
func (f *Form) SetRecommendation(v string) error {
	if v == "" {
		f.fields.Recommendation = ""
		return nil
	}
	rec, err := ParseRecommendation(v)
	if err != nil {
		return err
	}
	f.fields.Recommendation = rec
	return nil
}

func (f *Form) Fields() Fields {
	return f.fields
}

func (f *Form) Errors() []string {
	return append([]string(nil), f.errors...)
}

// Submit validates the current input. On success the review is published, the
// fields and the error list are cleared and ok is true. On failure the fields
// are left as entered, nothing is published and ok is false.
//
// err only reports subscriber failures during publish; the form is reset
// regardless because the review has been handed to the channel.
func (f *Form) Submit(ctx context.Context) (r Review, ok bool, err error) {
	if !f.accumulate {
		f.errors = nil
	}

	missing := f.validate()
	if len(missing) > 0 {
		f.errors = append(f.errors, missing...)
		f.logger.Debug("review rejected", zap.Strings("errors", missing))
		return Review{}, false, nil
	}

	r = Review{
		ReviewerName:   f.fields.Name,
		ReviewText:     f.fields.ReviewText,
		Rating:         f.fields.Rating,
		Recommendation: f.fields.Recommendation,
	}

	if f.channel != nil {
		err = f.channel.Publish(ctx, events.ReviewSubmitted, r)
	}

	f.fields = Fields{}
	f.errors = nil

	f.logger.Info("review submitted",
		zap.String("reviewer", r.ReviewerName),
		zap.Int("rating", r.Rating),
	)
	if err != nil {
		return r, true, fmt.Errorf("publish review: %w", err)
	}
	return r, true, nil
}

func (f *Form) validate() []string {
	var msgs []string
	if strings.TrimSpace(f.fields.Name) == "" {
		msgs = append(msgs, MsgNameRequired)
	}
	if strings.TrimSpace(f.fields.ReviewText) == "" {
		msgs = append(msgs, MsgReviewRequired)
	}
	if !validRating(f.fields.Rating) {
		msgs = append(msgs, MsgRatingRequired)
	}
	if f.fields.Recommendation == "" {
		msgs = append(msgs, MsgRecommendationRequired)
	}
	return msgs
}
