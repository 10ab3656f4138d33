package report_generator

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

var ErrUnsupportedFormat = errors.New("unsupported report format")

// Generator writes batch reports. The format is picked by the output file extension.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateReport(outputPath string, rows []domain.ReportRow) error {
	switch ext := strings.ToLower(filepath.Ext(outputPath)); ext {
	case ".csv":
		return g.generateCSV(outputPath, rows)
	case ".pdf":
		return g.generatePDF(outputPath, rows)
	default:
		return fmt.Errorf("%w %q, use .csv or .pdf", ErrUnsupportedFormat, ext)
	}
}
