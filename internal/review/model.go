package review

import (
	"errors"
	"fmt"
)

type Recommendation string

const (
	RecommendYes Recommendation = "Yes"
	RecommendNo  Recommendation = "No"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrInvalidRecommendation = errors.New(`recommendation must be "Yes" or "No"`)
)

// Review is the review-submitted payload. It is only built by a successful
// Form.Submit and never mutated afterwards.
type Review struct {
	ReviewerName   string         `json:"reviewerName"`
	ReviewText     string         `json:"reviewText"`
	Rating         int            `json:"rating"`
	Recommendation Recommendation `json:"recommendation"`
}

func ParseRecommendation(v string) (Recommendation, error) {
	switch Recommendation(v) {
	case RecommendYes, RecommendNo:
		return Recommendation(v), nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidRecommendation, v)
	}
}

func validRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
