package domain

import "time"

// Batch is the set of items created by one HandleBatch call, in insertion order.
type Batch struct {
	ID        string
	Level     CompressionLevel
	ItemIDs   []string
	CreatedAt time.Time
}

type EventType string

const (
	EventTypeTransition EventType = "transition"
	EventTypeReset      EventType = "reset"
)

// Event is published on every item transition and on every reset. Epoch is bumped by
// each reset: events of an older epoch describe discarded batches.
type Event struct {
	Seq       int64
	Timestamp time.Time
	Type      EventType
	Epoch     uint64
	BatchID   string
	Item      ItemSnapshot
}
