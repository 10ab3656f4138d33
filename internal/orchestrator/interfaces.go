package orchestrator

import (
	"context"

	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

type Submitter interface {
	Submit(ctx context.Context, file domain.CandidateFile, level domain.CompressionLevel) (*domain.CompressedPayload, error)
}

type Publisher interface {
	Publish(event domain.Event) domain.Event
}
