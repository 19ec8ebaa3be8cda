package events

import (
	"context"
)

// Routing keys for booking lifecycle events
const (
	BookingCreated   = "booking.created"
	BookingCancelled = "booking.cancelled"
)

// Publisher emits domain lifecycle events. Publishing is best-effort:
// callers log failures but never fail the originating request on them.
type Publisher interface {
	// PublishJSON marshals v and publishes it under the routing key
	PublishJSON(ctx context.Context, key string, v any) error

	// Close releases broker resources
	Close() error
}

// Noop is a Publisher that discards everything. Used when no broker is
// configured and in tests.
type Noop struct{}

func (Noop) PublishJSON(ctx context.Context, key string, v any) error { return nil }

func (Noop) Close() error { return nil }
