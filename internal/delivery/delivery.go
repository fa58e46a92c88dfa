package delivery

import "context"

// Payload is what gets handed to an external delivery channel after the
// notification row is persisted.
type Payload struct {
	To      string
	Title   string
	Message string
	URL     string
}

// Sender is an external delivery collaborator (email, push). Failures are
// logged by the notification service, never retried and never surfaced to
// the operation that triggered the notification.
type Sender interface {
	Channel() string
	Send(ctx context.Context, p Payload) error
}
