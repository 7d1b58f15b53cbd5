package events

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// HandlerFunc receives one delivery. Returning an error aborts only this
// handler's delivery; the remaining subscribers still run.
type HandlerFunc func(ctx context.Context, env Envelope) error

// Channel is a synchronous, in-process publish/subscribe hub.
//
// Handlers run in registration order on the publisher's goroutine. A handler
// that publishes to the event it is handling recurses without a guard.
// Channel is not safe for concurrent use; callers serialise access.
type Channel struct {
	logger      *zap.Logger
	subscribers map[string][]HandlerFunc
}

func NewChannel(logger *zap.Logger) *Channel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Channel{
		logger:      logger,
		subscribers: make(map[string][]HandlerFunc),
	}
}

// Subscribe registers h for eventName. There is no unsubscribe: a handler
// stays active for the lifetime of the channel.
func (c *Channel) Subscribe(eventName string, h HandlerFunc) {
	if h == nil {
		return
	}
	c.subscribers[eventName] = append(c.subscribers[eventName], h)
}

// Publish delivers payload to every handler currently registered for
// eventName. Handlers subscribed while the publish is in flight are not
// invoked by it. The returned error joins every handler failure.
func (c *Channel) Publish(ctx context.Context, eventName string, payload any) error {
	return c.PublishEnvelope(ctx, NewEnvelope(eventName, payload, EnvelopeOptions{}))
}

// PublishEnvelope is Publish with a caller-built envelope.
func (c *Channel) PublishEnvelope(ctx context.Context, env Envelope) error {
	handlers := c.subscribers[env.EventName]
	if len(handlers) == 0 {
		return nil
	}
	handlers = append([]HandlerFunc(nil), handlers...)

	var errs []error
	for i, h := range handlers {
		if err := h(ctx, env); err != nil {
			c.logger.Warn("event handler failed",
				zap.String("event", env.EventName),
				zap.String("event_id", env.EventID),
				zap.Int("subscriber", i),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s subscriber %d: %w", env.EventName, i, err))
		}
	}

	c.logger.Debug("event published",
		zap.String("event", env.EventName),
		zap.String("event_id", env.EventID),
		zap.Int("subscribers", len(handlers)),
	)
	return errors.Join(errs...)
}

// Subscribers reports how many handlers are registered for eventName.
func (c *Channel) Subscribers(eventName string) int {
	return len(c.subscribers[eventName])
}
