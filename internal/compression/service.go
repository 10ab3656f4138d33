package compression

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

type Result struct {
	Filename       string
	Data           []byte
	OriginalSize   int64
	CompressedSize int64
}

// Service compresses one uploaded document at a time. Every request works in its own
// pair of temporary files which are removed before returning.
type Service struct {
	log        *slog.Logger
	workDir    string
	compressor Compressor
	scanner    Scanner
	saver      CompressionSaver
}

type Option func(*Service)

func WithScanner(scanner Scanner) Option {
	return func(s *Service) {
		s.scanner = scanner
	}
}

func WithCompressionSaver(saver CompressionSaver) Option {
	return func(s *Service) {
		s.saver = saver
	}
}

func NewService(log *slog.Logger, workDir string, compressor Compressor, opts ...Option) *Service {
	s := &Service{
		log:        log,
		workDir:    workDir,
		compressor: compressor,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Compress(ctx context.Context, filename string, src io.Reader, level domain.CompressionLevel) (*Result, error) {
	requestID := uuid.NewString()
	inputPath := filepath.Join(s.workDir, requestID+"_input.pdf")
	outputPath := filepath.Join(s.workDir, requestID+"_compressed.pdf")

	log := s.log.With(
		slog.String("request_id", requestID),
		slog.String("filename", filename),
		slog.String("level", string(level)),
	)

	defer s.cleanup(ctx, log, inputPath, outputPath)

	started := time.Now()

	originalSize, err := writeFile(inputPath, src)
	if err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	if s.scanner != nil {
		if err := s.scan(ctx, inputPath); err != nil {
			return nil, err
		}
	}

	if err := s.compressor.Compress(ctx, inputPath, outputPath, level); err != nil {
		return nil, fmt.Errorf("failed to compress file: %w", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read compressed file: %w", err)
	}

	result := &Result{
		Filename:       domain.CompressedName(filename),
		Data:           data,
		OriginalSize:   originalSize,
		CompressedSize: int64(len(data)),
	}

	took := time.Since(started)

	log.InfoContext(ctx, "file compressed",
		slog.Int64("original_size", result.OriginalSize),
		slog.Int64("compressed_size", result.CompressedSize),
		slog.Duration("took", took),
	)

	s.save(ctx, log, &domain.Compression{
		ID:             requestID,
		Filename:       filename,
		Level:          string(level),
		OriginalSize:   result.OriginalSize,
		CompressedSize: result.CompressedSize,
		DurationMS:     took.Milliseconds(),
		CreatedAt:      time.Now().UTC(),
	})

	return result, nil
}

func (s *Service) scan(ctx context.Context, path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open upload for scanning: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return s.scanner.Scan(ctx, f)
}

// save never fails the request: history is best effort.
func (s *Service) save(ctx context.Context, log *slog.Logger, compression *domain.Compression) {
	if s.saver == nil {
		return
	}

	if err := s.saver.SaveCompression(ctx, compression); err != nil {
		log.ErrorContext(ctx, "failed to save compression", slog.String("err", err.Error()))
	}
}

func (s *Service) cleanup(ctx context.Context, log *slog.Logger, paths ...string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.ErrorContext(ctx, "failed to remove temporary file",
				slog.String("path", path),
				slog.String("err", err.Error()),
			)
		}
	}
}

func writeFile(path string, src io.Reader) (_ int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return io.Copy(f, src)
}
