package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

// Orchestrator fans a batch of files out to one task per accepted file.
// Tasks are independent: a failing or hanging submission never affects its siblings.
type Orchestrator struct {
	log       *slog.Logger
	submitter Submitter
	publisher Publisher
	timeout   time.Duration

	mu      sync.Mutex
	batches []domain.Batch
	epoch   uint64

	tasks sync.WaitGroup
}

// New creates an orchestrator. A zero timeout lets a submission run until the collaborator answers.
func New(log *slog.Logger, submitter Submitter, publisher Publisher, timeout time.Duration) *Orchestrator {
	return &Orchestrator{
		log:       log,
		submitter: submitter,
		publisher: publisher,
		timeout:   timeout,
	}
}

// HandleBatch creates one item per accepted file, in input order, and launches its task
// without waiting for it. Files of other types are skipped.
func (o *Orchestrator) HandleBatch(ctx context.Context, files []domain.CandidateFile, level domain.CompressionLevel) domain.Batch {
	batch := domain.Batch{
		ID:        uuid.NewString(),
		Level:     level,
		ItemIDs:   make([]string, 0, len(files)),
		CreatedAt: time.Now(),
	}

	log := o.log.With(slog.String("batch_id", batch.ID), slog.String("level", string(level)))

	// started tasks must outlive the caller
	taskCtx := context.WithoutCancel(ctx)

	items := make([]*domain.SubmissionItem, 0, len(files))
	for _, file := range files {
		if !file.IsAccepted() {
			log.DebugContext(ctx, "skipping unsupported file",
				slog.String("filename", file.Name),
				slog.String("mime_type", file.MIMEType),
			)
			continue
		}

		item := domain.NewSubmissionItem(uuid.NewString(), batch.ID, file)
		batch.ItemIDs = append(batch.ItemIDs, item.ID)
		items = append(items, item)
	}

	// queued events must not follow a reset that discards this batch
	o.mu.Lock()
	o.batches = append(o.batches, batch)
	epoch := o.epoch
	for _, item := range items {
		o.publish(epoch, item)
	}
	o.mu.Unlock()

	log.InfoContext(ctx, "batch accepted",
		slog.Int("files", len(files)),
		slog.Int("items", len(items)),
	)

	for _, item := range items {
		if err := item.Start(); err != nil {
			log.ErrorContext(ctx, "failed to start item", slog.String("item_id", item.ID), slog.String("err", err.Error()))
			continue
		}
		o.publish(epoch, item)

		o.tasks.Add(1)
		go o.process(taskCtx, log, epoch, item, level)
	}

	return cloneBatch(batch)
}

func (o *Orchestrator) process(
	ctx context.Context,
	log *slog.Logger,
	epoch uint64,
	item *domain.SubmissionItem,
	level domain.CompressionLevel,
) {
	defer o.tasks.Done()

	log = log.With(slog.String("item_id", item.ID), slog.String("filename", item.Source.Name))

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	started := time.Now()

	payload, err := o.submit(ctx, item.Source, level)
	if err != nil {
		log.ErrorContext(ctx, "submission failed", slog.String("err", err.Error()))

		if err := item.Fail(FailureReason(err)); err != nil {
			log.ErrorContext(ctx, "failed to mark item as failed", slog.String("err", err.Error()))
		}
	} else {
		if err := item.Succeed(*payload); err != nil {
			log.ErrorContext(ctx, "failed to mark item as succeeded", slog.String("err", err.Error()))
		}

		log.InfoContext(ctx, "submission succeeded",
			slog.Int64("original_size", item.Source.Size),
			slog.Int64("compressed_size", payload.ByteSize),
			slog.Duration("took", time.Since(started)),
		)
	}

	o.publish(epoch, item)
}

// submit converts panics of the submitter into errors so they stay inside the task.
func (o *Orchestrator) submit(
	ctx context.Context,
	file domain.CandidateFile,
	level domain.CompressionLevel,
) (payload *domain.CompressedPayload, err error) {
	defer func() {
		if r := recover(); r != nil {
			payload, err = nil, fmt.Errorf("submission panicked: %v", r)
		}
	}()

	payload, err = o.submitter.Submit(ctx, file, level)
	if err != nil {
		if ctx.Err() != nil && !isRejection(err) {
			err = &domain.SubmissionError{
				Kind:    domain.ErrorKindTransportFailure,
				Message: "compression service did not answer in time",
				Err:     err,
			}
		}
		return nil, err
	}

	if payload == nil {
		return nil, errors.New("submitter returned no payload")
	}

	return payload, nil
}

func (o *Orchestrator) publish(epoch uint64, item *domain.SubmissionItem) {
	o.publisher.Publish(domain.Event{
		Type:    domain.EventTypeTransition,
		Epoch:   epoch,
		BatchID: item.BatchID,
		Item:    item.Snapshot(),
	})
}

// Batches returns the display list in creation order.
func (o *Orchestrator) Batches() []domain.Batch {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]domain.Batch, 0, len(o.batches))
	for _, batch := range o.batches {
		out = append(out, cloneBatch(batch))
	}
	return out
}

// Reset discards every batch. Tasks still in flight keep running; observers stop
// reflecting them after the reset event.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.batches) == 0 {
		return
	}

	o.batches = nil
	o.epoch++
	o.publisher.Publish(domain.Event{Type: domain.EventTypeReset, Epoch: o.epoch})
}

// Wait blocks until every launched task has reached a terminal state.
func (o *Orchestrator) Wait() {
	o.tasks.Wait()
}

// FailureReason renders err as a message fit for display.
func FailureReason(err error) string {
	var subErr *domain.SubmissionError
	if errors.As(err, &subErr) && subErr.Message != "" {
		return subErr.Message
	}
	return err.Error()
}

// isRejection reports whether the collaborator answered before the deadline.
func isRejection(err error) bool {
	var subErr *domain.SubmissionError
	return errors.As(err, &subErr) && subErr.Kind == domain.ErrorKindRemoteRejected
}

func cloneBatch(batch domain.Batch) domain.Batch {
	batch.ItemIDs = append([]string(nil), batch.ItemIDs...)
	return batch
}
