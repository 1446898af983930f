package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bitlance/web/internal/pubsub"
)

// AuditLog writes every audit event to a structured logger.
type AuditLog struct {
	logger *slog.Logger
}

// NewAuditLog creates an AuditLog. A nil logger uses slog.Default().
func NewAuditLog(logger *slog.Logger) *AuditLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLog{logger: logger.With("component", "audit")}
}

// Start subscribes the audit log to every topic in All.
func (a *AuditLog) Start(ctx context.Context, sub pubsub.Subscriber) error {
	for _, topic := range All {
		if err := sub.Subscribe(ctx, topic, a.Handle); err != nil {
			return fmt.Errorf("failed to subscribe audit log to %s: %w", topic, err)
		}
	}
	return nil
}

// Handle logs a single event.
func (a *AuditLog) Handle(ctx context.Context, msg pubsub.Message) error {
	var ev Event
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return fmt.Errorf("failed to decode %s event: %w", msg.Topic, err)
	}

	attrs := []any{"topic", msg.Topic, "at", ev.At}
	if ev.UserID != "" {
		attrs = append(attrs, "user_id", ev.UserID)
	}
	if ev.Email != "" {
		attrs = append(attrs, "email", ev.Email)
	}
	if ev.Role != "" {
		attrs = append(attrs, "role", ev.Role)
	}
	if ev.JobID != "" {
		attrs = append(attrs, "job_id", ev.JobID)
	}
	if ev.Reason != "" {
		attrs = append(attrs, "reason", ev.Reason)
	}
	if id := msg.Metadata["request_id"]; id != "" {
		attrs = append(attrs, "request_id", id)
	}
	for k, v := range ev.Extra {
		attrs = append(attrs, k, v)
	}

	level := slog.LevelInfo
	if msg.Topic == TopicLoginFailed {
		level = slog.LevelWarn
	}
	a.logger.Log(ctx, level, "Audit event", attrs...)
	return nil
}
