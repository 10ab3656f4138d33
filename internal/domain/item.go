package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid status transition")

type CompressedPayload struct {
	Bytes    []byte
	ByteSize int64
}

func NewCompressedPayload(data []byte) CompressedPayload {
	return CompressedPayload{
		Bytes:    data,
		ByteSize: int64(len(data)),
	}
}

// SubmissionItem tracks one submitted file. It is owned by a single task;
// everybody else works with snapshots.
type SubmissionItem struct {
	ID      string
	BatchID string
	Source  CandidateFile

	status         Status
	result         *CompressedPayload
	failureReason  string
	savingsPercent float64
}

func NewSubmissionItem(id, batchID string, source CandidateFile) *SubmissionItem {
	return &SubmissionItem{
		ID:      id,
		BatchID: batchID,
		Source:  source,
		status:  StatusQueued,
	}
}

func (i *SubmissionItem) Status() Status {
	return i.status
}

// Start moves a queued item to processing.
func (i *SubmissionItem) Start() error {
	return i.transition(StatusQueued, StatusProcessing)
}

// Succeed attaches the payload and computes the savings.
func (i *SubmissionItem) Succeed(payload CompressedPayload) error {
	if err := i.transition(StatusProcessing, StatusSucceeded); err != nil {
		return err
	}

	i.result = &payload
	i.savingsPercent = SavingsPercent(i.Source.Size, payload.ByteSize)

	return nil
}

func (i *SubmissionItem) Fail(reason string) error {
	if err := i.transition(StatusProcessing, StatusFailed); err != nil {
		return err
	}

	i.failureReason = reason

	return nil
}

func (i *SubmissionItem) transition(from, to Status) error {
	if i.status != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, i.status, to)
	}

	i.status = to

	return nil
}

func (i *SubmissionItem) Snapshot() ItemSnapshot {
	snapshot := ItemSnapshot{
		ID:             i.ID,
		BatchID:        i.BatchID,
		Name:           i.Source.Name,
		OriginalSize:   i.Source.Size,
		Status:         i.status,
		FailureReason:  i.failureReason,
		SavingsPercent: i.savingsPercent,
	}

	if i.result != nil {
		result := *i.result
		snapshot.Result = &result
	}

	return snapshot
}

// ItemSnapshot is a read-only copy of a SubmissionItem at one point of its lifecycle.
// Result.Bytes is shared with the item and must not be modified.
type ItemSnapshot struct {
	ID             string
	BatchID        string
	Name           string
	OriginalSize   int64
	Status         Status
	Result         *CompressedPayload
	FailureReason  string
	SavingsPercent float64
}

// SavingsPercent may be negative when the compressed file is larger.
func SavingsPercent(originalSize, compressedSize int64) float64 {
	if originalSize <= 0 {
		return 0
	}

	return float64(originalSize-compressedSize) / float64(originalSize) * 100
}
