package report_generator

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

func (g *Generator) generateCSV(outputPath string, rows []domain.ReportRow) (err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	writer := csv.NewWriter(f)
	enc := csvutil.NewEncoder(writer)

	// the header is written even for an empty batch
	if err := enc.EncodeHeader(domain.ReportRow{}); err != nil {
		return fmt.Errorf("failed to encode report header: %w", err)
	}

	for i := range rows {
		if err := enc.Encode(rows[i]); err != nil {
			return fmt.Errorf("failed to encode report row #%d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
