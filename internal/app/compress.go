package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/kurochkinivan/pdf_compressor/internal/domain"
	"github.com/kurochkinivan/pdf_compressor/internal/events"
	"github.com/kurochkinivan/pdf_compressor/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/pdf_compressor/internal/orchestrator"
	"github.com/kurochkinivan/pdf_compressor/internal/submission"
	"github.com/kurochkinivan/pdf_compressor/internal/view"
	"golang.org/x/sync/errgroup"
)

var ErrItemsFailed = errors.New("some files failed")

// Compress submits every PDF among paths as one batch and saves the results to the output dir.
func (a *App) Compress(ctx context.Context, paths []string) error {
	level, err := domain.ParseCompressionLevel(a.cfg.Client.Level)
	if err != nil {
		return err
	}

	files, err := loadCandidates(paths)
	if err != nil {
		return err
	}

	accepted := 0
	for _, file := range files {
		if !file.IsAccepted() {
			a.log.WarnContext(ctx, "skipping file, only PDF files are accepted",
				slog.String("filename", file.Name),
				slog.String("mime_type", file.MIMEType),
			)
			continue
		}
		accepted++
	}

	if accepted == 0 {
		return errors.New("no PDF files to compress")
	}

	bus := events.NewBus(0)
	client := submission.NewClient(a.log, &http.Client{}, a.cfg.Client.Endpoint)
	orch := orchestrator.New(a.log, client, bus, a.cfg.Client.Timeout)
	defer orch.Reset()

	terminal := view.NewTerminal(a.out, accepted)
	binder := view.NewBinder(bus, view.WithOnChange(terminal.OnChange))

	if err := a.runBatch(ctx, orch, binder, files, level); err != nil {
		return err
	}

	if err := terminal.Finish(); err != nil {
		return fmt.Errorf("failed to finish progress: %w", err)
	}

	rows, err := a.saveResults(ctx, binder.Views())
	if err != nil {
		return err
	}

	if a.cfg.Client.ReportPath != "" {
		if err := report_generator.New().GenerateReport(a.cfg.Client.ReportPath, rows); err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}

		a.log.InfoContext(ctx, "report generated", slog.String("path", a.cfg.Client.ReportPath))
	}

	failed := 0
	for _, row := range rows {
		if row.Status == domain.StatusFailed {
			failed++
		}
	}

	// every accepted file must end up reported, a missing one counts as failed
	failed += accepted - len(rows)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrItemsFailed, failed, accepted)
	}

	return nil
}

// runBatch hands the files to the orchestrator and keeps the binder in sync until
// every task is finished or ctx is done.
func (a *App) runBatch(
	ctx context.Context,
	orch *orchestrator.Orchestrator,
	binder *view.Binder,
	files []domain.CandidateFile,
	level domain.CompressionLevel,
) error {
	bindCtx, stopBinding := context.WithCancel(ctx)
	defer stopBinding()

	erg, bindCtx := errgroup.WithContext(bindCtx)
	erg.Go(func() error {
		if err := binder.Run(bindCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	batch := orch.HandleBatch(ctx, files, level)

	a.log.DebugContext(ctx, "batch started",
		slog.String("batch_id", batch.ID),
		slog.Int("items", len(batch.ItemIDs)),
	)

	done := make(chan struct{})
	go func() {
		orch.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("interrupted with files still in flight: %w", ctx.Err())
	}

	stopBinding()
	if err := erg.Wait(); err != nil {
		return err
	}

	// events published after the last wake-up
	binder.Sync()

	return nil
}

func (a *App) saveResults(ctx context.Context, views []view.View) ([]domain.ReportRow, error) {
	if err := os.MkdirAll(a.cfg.Client.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	names := newOutputNames()
	rows := make([]domain.ReportRow, 0, len(views))

	for _, v := range views {
		s := v.Snapshot

		row := domain.ReportRow{
			Name:           v.Label,
			Status:         s.Status,
			OriginalSize:   s.OriginalSize,
			SavingsPercent: s.SavingsPercent,
			Error:          s.FailureReason,
		}

		if s.Status == domain.StatusSucceeded && s.Result != nil {
			path := filepath.Join(a.cfg.Client.OutputDir, names.next(s.Name))

			if err := os.WriteFile(path, s.Result.Bytes, 0o644); err != nil {
				return nil, fmt.Errorf("failed to save %q: %w", path, err)
			}

			row.CompressedSize = s.Result.ByteSize
			row.OutputPath = path

			a.log.DebugContext(ctx, "compressed file saved", slog.String("path", path))
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// outputNames hands out compressed_<name> and, for repeated names, compressed_<stem>_<n><ext>.
type outputNames struct {
	seen map[string]int
}

func newOutputNames() *outputNames {
	return &outputNames{seen: make(map[string]int)}
}

func (o *outputNames) next(name string) string {
	o.seen[name]++

	n := o.seen[name]
	if n == 1 {
		return domain.CompressedName(name)
	}

	ext := filepath.Ext(name)
	return domain.CompressedName(fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), n, ext))
}

// loadCandidates reads the files at paths and detects their content type.
func loadCandidates(paths []string) ([]domain.CandidateFile, error) {
	files := make([]domain.CandidateFile, 0, len(paths))

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", path, err)
		}

		if info.IsDir() {
			return nil, fmt.Errorf("%q is a directory, not a file", path)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}

		files = append(files, domain.CandidateFile{
			Name:     filepath.Base(path),
			Size:     int64(len(content)),
			MIMEType: mimetype.Detect(content).String(),
			Content:  content,
		})
	}

	return files, nil
}
