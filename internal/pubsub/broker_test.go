package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}

func TestBroker_PublishSubscribe(t *testing.T) {
	t.Parallel()

	b := NewBroker[string](noopLogger{})

	sub, unsub := b.Subscribe(context.Background())
	defer unsub()

	b.Publish(UpdatedEvent, "hello")

	got := <-sub
	assert.Equal(t, Event[string]{Type: UpdatedEvent, Payload: "hello"}, got)
}

func TestBroker_Unsubscribe(t *testing.T) {
	t.Parallel()

	b := NewBroker[int](noopLogger{})

	sub, unsub := b.Subscribe(context.Background())
	unsub()

	// channel is closed once unsubscribed
	_, ok := <-sub
	require.False(t, ok)

	// unsubscribing twice is a no-op
	unsub()

	// publishing after unsubscribe must not panic
	b.Publish(CreatedEvent, 42)
}

func TestBroker_ContextCancel(t *testing.T) {
	t.Parallel()

	b := NewBroker[int](noopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	sub, _ := b.Subscribe(ctx)
	cancel()

	// Draining until close proves the cancellation goroutine unsubscribed us.
	for range sub {
	}
}
