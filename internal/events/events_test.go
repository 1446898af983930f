package events

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/bitlance/web/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	msgs []pubsub.Message
	err  error
}

func (p *recordingPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.msgs = append(p.msgs, msg)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestEmitter(t *testing.T) {
	t.Run("publishes json payloads with the request id as metadata", func(t *testing.T) {
		pub := &recordingPublisher{}
		e := NewEmitter(pub)
		e.now = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }

		e.Emit(context.Background(), TopicLoginSucceeded, Event{UserID: "u-1", Email: "ada@example.com", RequestID: "req-7"})

		require.Len(t, pub.msgs, 1)
		msg := pub.msgs[0]
		assert.Equal(t, TopicLoginSucceeded, msg.Topic)
		assert.Equal(t, "u-1", msg.UserID)
		assert.Equal(t, "req-7", msg.Metadata["request_id"])
		assert.JSONEq(t, `{"user_id":"u-1","email":"ada@example.com","request_id":"req-7","at":"2026-05-01T09:00:00Z"}`, string(msg.Payload))
	})

	t.Run("publish failures are swallowed", func(t *testing.T) {
		pub := &recordingPublisher{err: errors.New("bus closed")}
		assert.NotPanics(t, func() {
			NewEmitter(pub).Emit(context.Background(), TopicLogout, Event{UserID: "u-1"})
		})
	})

	t.Run("nil emitter is a no-op", func(t *testing.T) {
		var e *Emitter
		assert.NotPanics(t, func() {
			e.Emit(context.Background(), TopicLogout, Event{})
		})
	})
}

func TestAuditLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	audit := NewAuditLog(logger)

	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	ctx := context.Background()
	require.NoError(t, audit.Start(ctx, bus))

	t.Run("logs failed logins as warnings", func(t *testing.T) {
		err := audit.Handle(ctx, pubsub.Message{
			Topic:    TopicLoginFailed,
			Payload:  []byte(`{"email":"ada@example.com","reason":"Invalid credentials"}`),
			Metadata: map[string]string{"request_id": "req-1"},
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "topic=auth.login.failed")
		assert.Contains(t, out, "reason=\"Invalid credentials\"")
		assert.Contains(t, out, "request_id=req-1")
		assert.Contains(t, out, "component=audit")
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		err := audit.Handle(ctx, pubsub.Message{Topic: TopicLogout, Payload: []byte("{")})
		assert.Error(t, err)
	})
}
