package broadcast

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_SubscriberReceivesPublished(t *testing.T) {
	hub := NewHub(4)
	sub := hub.Subscribe(context.Background(), "vitals")
	defer sub.Close()

	hub.Publish("vitals", "msg1")

	select {
	case msg := <-sub.C():
		assert.Equal(t, "msg1", msg)
	case <-time.After(time.Second):
		t.Fatal("expected a message")
	}
}

func TestHub_FIFOOrder(t *testing.T) {
	hub := NewHub(8)
	sub := hub.Subscribe(context.Background(), "vitals")
	defer sub.Close()

	hub.Publish("vitals", 1)
	hub.Publish("vitals", 2)
	hub.Publish("vitals", 3)

	assert.Equal(t, 1, <-sub.C())
	assert.Equal(t, 2, <-sub.C())
	assert.Equal(t, 3, <-sub.C())
}

func TestHub_LateSubscriberMissesEarlierMessages(t *testing.T) {
	hub := NewHub(4)

	hub.Publish("vitals", "before")

	sub := hub.Subscribe(context.Background(), "vitals")
	defer sub.Close()

	select {
	case msg := <-sub.C():
		t.Fatalf("unexpected message: %v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_ChannelsAreIsolated(t *testing.T) {
	hub := NewHub(4)
	sub := hub.Subscribe(context.Background(), "vitals")
	defer sub.Close()

	hub.Publish("other", "msg")

	select {
	case msg := <-sub.C():
		t.Fatalf("unexpected message: %v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_MultipleSubscribersEachReceive(t *testing.T) {
	hub := NewHub(4)
	a := hub.Subscribe(context.Background(), "vitals")
	defer a.Close()
	b := hub.Subscribe(context.Background(), "vitals")
	defer b.Close()

	hub.Publish("vitals", "msg")

	assert.Equal(t, "msg", <-a.C())
	assert.Equal(t, "msg", <-b.C())
}

func TestHub_SlowConsumerDropsWithoutBlocking(t *testing.T) {
	hub := NewHub(2)
	slow := hub.Subscribe(context.Background(), "vitals")
	defer slow.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			hub.Publish("vitals", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow consumer")
	}

	// The queue keeps the first two messages, the rest are dropped.
	assert.Equal(t, 0, <-slow.C())
	assert.Equal(t, 1, <-slow.C())
	assert.Equal(t, uint64(3), hub.Dropped())
}

func TestHub_ContextCancelDeregisters(t *testing.T) {
	hub := NewHub(4)
	ctx, cancel := context.WithCancel(context.Background())

	sub := hub.Subscribe(ctx, "vitals")
	require.Equal(t, 1, hub.SubscriberCount("vitals"))

	cancel()

	// AfterFunc runs asynchronously.
	assert.Eventually(t, func() bool {
		return hub.SubscriberCount("vitals") == 0
	}, time.Second, 10*time.Millisecond)

	// Channel is closed, ranging over it terminates.
	for range sub.C() {
	}
}

func TestHub_CloseIsIdempotent(t *testing.T) {
	hub := NewHub(4)
	sub := hub.Subscribe(context.Background(), "vitals")

	sub.Close()
	sub.Close()

	assert.Equal(t, 0, hub.SubscriberCount("vitals"))
}

func TestHub_PublishAfterCloseDoesNotPanic(t *testing.T) {
	hub := NewHub(4)
	sub := hub.Subscribe(context.Background(), "vitals")
	sub.Close()

	assert.NotPanics(t, func() {
		hub.Publish("vitals", "msg")
	})
}

func TestHub_ConcurrentPublishAndClose(t *testing.T) {
	hub := NewHub(2)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		sub := hub.Subscribe(context.Background(), "vitals")
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range sub.C() {
			}
		}()
		go func() {
			defer wg.Done()
			sub.Close()
		}()
	}

	for i := 0; i < 100; i++ {
		hub.Publish("vitals", i)
	}

	wg.Wait()
	assert.Equal(t, 0, hub.SubscriberCount("vitals"))
}

func TestHub_DefaultQueueSize(t *testing.T) {
	hub := NewHub(0).(*Hub)
	assert.Equal(t, defaultQueueSize, hub.queueSize)
}
