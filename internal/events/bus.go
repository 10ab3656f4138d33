package events

import (
	"sync"
	"time"

	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

const defaultMaxEvents = 4096

// Bus stores events and wakes subscribers on every publish.
// Subscribers read incrementally with Since.
//
// Once the history grows past its limit it is compacted: only the latest event of every
// item of the current epoch and the latest reset survive. Events carry full snapshots, so a
// subscriber reading from any sequence still ends up with the latest state of every item.
type Bus struct {
	mu          sync.RWMutex
	nextSeq     int64
	maxEvents   int
	limit       int
	events      []domain.Event
	nextSubID   int
	subscribers map[int]chan struct{}
}

func NewBus(maxEvents int) *Bus {
	if maxEvents <= 0 {
		maxEvents = defaultMaxEvents
	}

	return &Bus{
		maxEvents:   maxEvents,
		limit:       maxEvents,
		events:      make([]domain.Event, 0, min(maxEvents, 64)),
		subscribers: make(map[int]chan struct{}),
	}
}

// Publish assigns the sequence number and timestamp and never blocks on subscribers.
func (b *Bus) Publish(event domain.Event) domain.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSeq++
	event.Seq = b.nextSeq
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	b.events = append(b.events, event)
	if len(b.events) > b.limit {
		b.compact()
	}

	for _, notify := range b.subscribers {
		select {
		case notify <- struct{}{}:
		default:
		}
	}

	return event
}

func (b *Bus) compact() {
	lastReset := -1
	latest := make(map[string]int, len(b.events))

	for i, event := range b.events {
		if event.Type == domain.EventTypeReset {
			lastReset = i
			continue
		}
		latest[eventKey(event)] = i
	}

	var epoch uint64
	if lastReset >= 0 {
		epoch = b.events[lastReset].Epoch
	}

	kept := make([]domain.Event, 0, len(latest)+1)
	for i, event := range b.events {
		switch {
		case event.Type == domain.EventTypeReset:
			if i == lastReset {
				kept = append(kept, event)
			}
		case latest[eventKey(event)] == i && event.Epoch >= epoch:
			kept = append(kept, event)
		}
	}

	b.events = kept
	// many live items keep the history long, compact again only when it doubles
	b.limit = max(b.maxEvents, 2*len(kept))
}

func eventKey(event domain.Event) string {
	return string(event.Type) + "/" + event.Item.ID
}

// Since returns events with sequence strictly greater than seq.
func (b *Bus) Since(seq int64) []domain.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.Event, 0, len(b.events))
	for _, event := range b.events {
		if event.Seq > seq {
			out = append(out, event)
		}
	}
	return out
}

// Subscribe returns a channel that receives a signal after new events are published.
// Signals are coalesced.
func (b *Bus) Subscribe() (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextSubID
	b.nextSubID++

	notify := make(chan struct{}, 1)
	b.subscribers[id] = notify

	var once sync.Once
	return notify, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subscribers, id)
		})
	}
}
