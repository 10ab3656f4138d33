package compression

import (
	"context"
	"io"

	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

type Compressor interface {
	Compress(ctx context.Context, inputPath, outputPath string, level domain.CompressionLevel) error
}

type Scanner interface {
	Scan(ctx context.Context, r io.Reader) error
}

type CompressionSaver interface {
	SaveCompression(ctx context.Context, compression *domain.Compression) error
}
