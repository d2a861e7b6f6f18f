// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"kynetic_backend/internal/submissions/transport"
	"kynetic_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// =============================================================================
// Submission Domain Events
// =============================================================================

// SubmissionRelayed is published by a relay endpoint once its delivery
// attempt has resolved, whether or not the notification email went out.
// The ledger records every attempted submission, not only successful ones.
type SubmissionRelayed struct {
	BaseEvent
	Kind      transport.Kind                `json:"kind"`
	Data      transport.CanonicalSubmission `json:"data"`
	Delivered bool                          `json:"delivered"`
}

func (e SubmissionRelayed) EventName() string { return "submissions.relayed" }
