// Package events defines the audit events the web front end emits and the
// subscriber that records them.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/bitlance/web/internal/pubsub"
)

// Topics published by the handlers.
const (
	TopicLoginSucceeded  = "auth.login.succeeded"
	TopicLoginFailed     = "auth.login.failed"
	TopicLogout          = "auth.logout"
	TopicJobCreated      = "jobs.created"
	TopicDashboardViewed = "dashboard.viewed"
)

// All lists every topic, in the order the audit log subscribes to them.
var All = []string{
	TopicLoginSucceeded,
	TopicLoginFailed,
	TopicLogout,
	TopicJobCreated,
	TopicDashboardViewed,
}

// Event is the JSON payload of every audit message.
type Event struct {
	UserID    string            `json:"user_id,omitempty"`
	Email     string            `json:"email,omitempty"`
	Role      string            `json:"role,omitempty"`
	JobID     string            `json:"job_id,omitempty"`
	Reason    string            `json:"reason,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	At        time.Time         `json:"at"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// Emitter publishes audit events. A nil Emitter or nil publisher drops them.
type Emitter struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewEmitter creates an Emitter on top of pub.
func NewEmitter(pub pubsub.Publisher) *Emitter {
	return &Emitter{pub: pub, now: time.Now}
}

// Emit publishes ev on topic. Failures are logged and never returned: audit
// events must not fail the request that produced them.
func (e *Emitter) Emit(ctx context.Context, topic string, ev Event) {
	if e == nil || e.pub == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = e.now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Error("Failed to encode event", "topic", topic, "error", err)
		return
	}
	msg := pubsub.Message{
		Topic:   topic,
		UserID:  ev.UserID,
		Payload: payload,
	}
	if ev.RequestID != "" {
		msg.Metadata = map[string]string{"request_id": ev.RequestID}
	}
	if err := e.pub.Publish(ctx, msg); err != nil {
		slog.Warn("Failed to publish event", "topic", topic, "error", err)
	}
}
