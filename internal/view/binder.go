package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

type EventSource interface {
	Since(seq int64) []domain.Event
	Subscribe() (<-chan struct{}, func())
}

// Binder keeps the aggregate view of all items by applying events in arrival order.
type Binder struct {
	source   EventSource
	onChange func(View)

	mu      sync.Mutex
	lastSeq int64
	epoch   uint64
	order   []string
	views   map[string]View
	names   map[string]int
}

type Option func(*Binder)

// WithOnChange registers a callback invoked for every applied transition.
// It is called with the binder lock held and must not call back into the binder.
func WithOnChange(fn func(View)) Option {
	return func(b *Binder) {
		b.onChange = fn
	}
}

func NewBinder(source EventSource, opts ...Option) *Binder {
	b := &Binder{
		source: source,
		views:  make(map[string]View),
		names:  make(map[string]int),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Run applies events as they are published until ctx is done.
func (b *Binder) Run(ctx context.Context) error {
	notify, cancel := b.source.Subscribe()
	defer cancel()

	b.Sync()

	for {
		select {
		case <-notify:
			b.Sync()

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Sync applies every event published since the last call.
func (b *Binder) Sync() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, event := range b.source.Since(b.lastSeq) {
		b.lastSeq = event.Seq
		b.apply(event)
	}
}

func (b *Binder) apply(event domain.Event) {
	// a newer epoch means a reset, even when the reset event itself was compacted away
	if event.Epoch < b.epoch {
		return
	}
	if event.Epoch > b.epoch {
		b.epoch = event.Epoch
		b.clear()
	}

	switch event.Type {
	case domain.EventTypeReset:
		b.clear()

	case domain.EventTypeTransition:
		snapshot := event.Item

		current, known := b.views[snapshot.ID]
		switch {
		case !known:
			// the bus may hand over an item at any status
			b.order = append(b.order, snapshot.ID)
			current.Label = b.label(snapshot)
		case !current.Snapshot.Status.Precedes(snapshot.Status):
			return
		}

		v := Render(snapshot)
		v.Label = current.Label
		b.views[snapshot.ID] = v

		if b.onChange != nil {
			b.onChange(v)
		}
	}
}

func (b *Binder) clear() {
	b.order = nil
	b.views = make(map[string]View)
	b.names = make(map[string]int)
}

// label disambiguates equal file names within one batch.
func (b *Binder) label(s domain.ItemSnapshot) string {
	key := s.BatchID + "/" + s.Name
	b.names[key]++

	if n := b.names[key]; n > 1 {
		return fmt.Sprintf("%s (%d)", s.Name, n)
	}
	return s.Name
}

// Views returns the current views in insertion order.
func (b *Binder) Views() []View {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]View, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.views[id])
	}
	return out
}

func (b *Binder) View(itemID string) (View, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, ok := b.views[itemID]
	return v, ok
}
