package broadcast

import (
	"context"
	"sync"
	"sync/atomic"
)

const defaultQueueSize = 16

type HubInterface interface {
	Subscribe(ctx context.Context, channel string) *Subscription
	Publish(channel string, message any)
	SubscriberCount(channel string) int
	Dropped() uint64
}

// Hub is an in-process publish/subscribe bus. Each subscriber owns a FIFO
// queue; publish delivers to every queue registered on the channel at the
// moment of the call and never blocks. A full queue means the message is
// dropped for that subscriber only. The hub carries opaque payloads and
// knows nothing about them beyond the channel name.
type Hub struct {
	mu        sync.Mutex
	channels  map[string]map[*Subscription]struct{}
	queueSize int
	dropped   atomic.Uint64
}

func NewHub(queueSize int) HubInterface {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Hub{
		channels:  make(map[string]map[*Subscription]struct{}),
		queueSize: queueSize,
	}
}

// Subscription is a scoped resource: it deregisters itself when ctx is
// cancelled or Close is called, whichever comes first. After deregistration
// completes no further messages are delivered and C is closed.
type Subscription struct {
	hub     *Hub
	channel string
	ch      chan any
	once    sync.Once
}

func (s *Subscription) C() <-chan any {
	return s.ch
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

func (h *Hub) Subscribe(ctx context.Context, channel string) *Subscription {
	sub := &Subscription{
		hub:     h,
		channel: channel,
		ch:      make(chan any, h.queueSize),
	}

	h.mu.Lock()
	subs, ok := h.channels[channel]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.channels[channel] = subs
	}
	subs[sub] = struct{}{}
	h.mu.Unlock()

	context.AfterFunc(ctx, sub.Close)
	return sub
}

func (h *Hub) Publish(channel string, message any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.channels[channel] {
		select {
		case sub.ch <- message:
		default:
			// Slow consumer: drop for this subscriber only.
			h.dropped.Add(1)
		}
	}
}

func (h *Hub) SubscriberCount(channel string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.channels[channel])
}

func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.channels[sub.channel]
	if !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.channels, sub.channel)
	}
}
