package service

import (
	"context"
)

// RegistrationEvent is emitted after an account has been created, for
// downstream consumers (welcome mail, analytics, organizer dashboards).
type RegistrationEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishRegistrationEvent publishes a registration event for async
	// processing. Failures must not fail the registration itself.
	PublishRegistrationEvent(ctx context.Context, event *RegistrationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
