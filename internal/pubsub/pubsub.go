package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "auth.login.succeeded").
	Topic string
	// UserID identifies the user the message is about, when there is one.
	UserID string
	// Payload contains the raw message data, JSON for every topic in this app.
	Payload []byte
	// Metadata carries extra key-value context such as the request ID.
	Metadata map[string]string
}

// Handler processes a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts listening to topic and returns once the subscription is
	// active. Messages are handled on a background goroutine until ctx is
	// canceled or the subscriber is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
