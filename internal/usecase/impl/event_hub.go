package impl

import (
	"log/slog"
	"sync"
	"time"

	"harvest/internal/usecase"

	"github.com/google/uuid"
)

const defaultEventBuffer = 32

// eventHub fans manager events out to subscribers without blocking the publisher.
type eventHub struct {
	mu            sync.Mutex
	subs          map[uint64]chan usecase.Event
	next          uint64
	defaultBuffer int
	logger        *slog.Logger
}

func newEventHub(defaultBuffer int, logger *slog.Logger) *eventHub {
	if defaultBuffer <= 0 {
		defaultBuffer = defaultEventBuffer
	}

	return &eventHub{
		subs:          make(map[uint64]chan usecase.Event),
		defaultBuffer: defaultBuffer,
		logger:        logger,
	}
}

func (h *eventHub) subscribe(buffer int) *usecase.Subscription {
	if buffer <= 0 {
		buffer = h.defaultBuffer
	}

	ch := make(chan usecase.Event, buffer)

	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = ch
	h.mu.Unlock()

	return usecase.NewSubscription(ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	})
}

func (h *eventHub) publish(ev usecase.Event) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.logger.Warn("[Chat] Dropping event for slow subscriber",
				slog.Uint64("subscriber", id),
				slog.String("kind", string(ev.Kind)),
			)
		}
	}
}
