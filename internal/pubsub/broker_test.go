package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBroker_PublishDeliversToSubscriber(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)
	b.Publish("hello")

	select {
	case ev := <-ch:
		require.Equal(t, "hello", ev.Payload)
		require.False(t, ev.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBroker_MultipleSubscribers(t *testing.T) {
	b := NewBroker[int]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch1 := b.Subscribe(ctx)
	ch2 := b.Subscribe(ctx)
	require.Equal(t, 2, b.SubscriberCount())

	b.Publish(7)
	require.Equal(t, 7, (<-ch1).Payload)
	require.Equal(t, 7, (<-ch2).Payload)
}

func TestBroker_SubscribeAfterClose(t *testing.T) {
	b := NewBroker[string]()
	b.Close()

	ch := b.Subscribe(context.Background())
	_, ok := <-ch
	require.False(t, ok, "subscription after close yields a closed channel")
}

func TestBroker_PublishAfterClose_NoPanic(t *testing.T) {
	b := NewBroker[string]()
	b.Close()
	b.Publish("dropped")
	b.Close() // double close is safe
}

func TestBroker_ContextCancelRemovesSubscriber(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool {
		return b.SubscriberCount() == 0
	}, time.Second, 5*time.Millisecond)

	_, ok := <-ch
	require.False(t, ok)
}

func TestBroker_FullSubscriberDropsEvents(t *testing.T) {
	b := NewBroker[int]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)
	for i := 0; i < defaultBufferSize*2; i++ {
		b.Publish(i)
	}

	// The subscriber buffer holds the first defaultBufferSize events;
	// the rest were dropped without blocking the publisher.
	count := 0
	for {
		select {
		case <-ch:
			count++
		default:
			require.Equal(t, defaultBufferSize, count)
			return
		}
	}
}
