package pubsub

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridge(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 2)
	err := bridge.Subscribe(ctx, "auth.login.succeeded", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = bridge.Publish(ctx, Message{
		Topic:    "auth.login.succeeded",
		UserID:   "u-1",
		Payload:  []byte(`{"email":"ada@example.com"}`),
		Metadata: map[string]string{"request_id": "req-1"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "auth.login.succeeded", msg.Topic)
		assert.Equal(t, "u-1", msg.UserID)
		assert.JSONEq(t, `{"email":"ada@example.com"}`, string(msg.Payload))
		assert.Equal(t, "req-1", msg.Metadata["request_id"])
		assert.NotContains(t, msg.Metadata, "topic")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestWatermillBridge_HandlerErrorDoesNotStopSubscription(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx := context.Background()
	seen := make(chan string, 4)
	require.NoError(t, bridge.Subscribe(ctx, "jobs.created", func(ctx context.Context, msg Message) error {
		seen <- string(msg.Payload)
		if string(msg.Payload) == "first" {
			return errors.New("handler failed")
		}
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, Message{Topic: "jobs.created", Payload: []byte("first")}))
	require.NoError(t, bridge.Publish(ctx, Message{Topic: "jobs.created", Payload: []byte("second")}))

	var got []string
	for len(got) < 2 {
		select {
		case p := <-seen:
			got = append(got, p)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out, received %v", got)
		}
	}
	assert.Equal(t, []string{"first", "second"}, got, "a failed message should be delivered once and not block the next")
}

func TestWatermillBridge_CloseIsIdempotent(t *testing.T) {
	bridge := NewWatermillBridge()
	require.NoError(t, bridge.Close())
	assert.NoError(t, bridge.Close())
}
