package ghostscript

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

var ErrGhostscriptNotFound = errors.New("ghostscript not found")

var presets = map[domain.CompressionLevel]string{
	domain.LevelDefault:  "/default",
	domain.LevelPrepress: "/prepress",
	domain.LevelPrinter:  "/printer",
	domain.LevelEbook:    "/ebook",
	domain.LevelScreen:   "/screen",
}

// Compressor rewrites PDFs through the Ghostscript pdfwrite device.
type Compressor struct {
	log  *slog.Logger
	path string
}

func New(log *slog.Logger, path string) *Compressor {
	return &Compressor{
		log:  log,
		path: path,
	}
}

// LookPath resolves the Ghostscript binary, preferring the configured path.
func LookPath(configured string) (string, error) {
	if configured != "" {
		return exec.LookPath(configured)
	}

	for _, name := range []string{"gs", "gswin64c", "gswin32c"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", ErrGhostscriptNotFound
}

func (c *Compressor) Compress(ctx context.Context, inputPath, outputPath string, level domain.CompressionLevel) error {
	if c.path == "" {
		return ErrGhostscriptNotFound
	}

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("failed to stat input file: %w", err)
	}

	args := Args(inputPath, outputPath, level)

	c.log.DebugContext(ctx, "running ghostscript", slog.String("level", string(level)), slog.String("output", outputPath))

	output, err := exec.CommandContext(ctx, c.path, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("ghostscript failed: %w, output: %s", err, output)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return fmt.Errorf("ghostscript did not create output file: %w", err)
	}

	if info.Size() == 0 {
		return errors.New("ghostscript produced an empty file")
	}

	return nil
}

// Args builds the pdfwrite argument list. Unknown levels fall back to the ebook preset.
func Args(inputPath, outputPath string, level domain.CompressionLevel) []string {
	preset, ok := presets[level]
	if !ok {
		preset = presets[domain.DefaultCompressionLevel]
	}

	return []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=" + preset,
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile=" + outputPath,
		inputPath,
	}
}
