package events

import (
	"time"

	"github.com/google/uuid"
)

// ReviewSubmitted is published by the review form once a submission passes
// validation. The payload is a review.Review.
const ReviewSubmitted = "review-submitted"

// Envelope wraps every payload delivered through a Channel.
type Envelope struct {
	EventName  string    `json:"eventName"`
	EventID    string    `json:"eventId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// EnvelopeOptions overrides generated envelope fields. Zero values are filled in.
type EnvelopeOptions struct {
	EventID    string
	OccurredAt time.Time
}

func NewEnvelope(eventName string, payload any, opts EnvelopeOptions) Envelope {
	eventID := opts.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	occurredAt := opts.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	return Envelope{
		EventName:  eventName,
		EventID:    eventID,
		OccurredAt: occurredAt,
		Payload:    payload,
	}
}
