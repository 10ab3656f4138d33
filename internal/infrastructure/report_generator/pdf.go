package report_generator

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/pdf_compressor/internal/bytesize"
	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

const (
	titleHeight = 12
	rowHeight   = 7
	errorHeight = 6
)

var (
	headerProps = props.Text{Size: 9, Style: fontstyle.Bold, Top: 1}
	cellProps   = props.Text{Size: 8, Top: 1}
	errorProps  = props.Text{Size: 7, Style: fontstyle.Italic, Left: 2}
)

func (g *Generator) generatePDF(outputPath string, rows []domain.ReportRow) error {
	m := maroto.New(config.NewBuilder().Build())

	m.AddRows(
		text.NewRow(titleHeight, "PDF compression report", props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}),
		text.NewRow(rowHeight, summary(rows), props.Text{Size: 9, Align: align.Center}),
	)

	m.AddRow(rowHeight,
		text.NewCol(4, "File", headerProps),
		text.NewCol(2, "Status", headerProps),
		text.NewCol(2, "Original", headerProps),
		text.NewCol(2, "Compressed", headerProps),
		text.NewCol(2, "Savings", headerProps),
	)

	for _, row := range rows {
		m.AddRow(rowHeight, rowCols(row)...)

		if row.Error != "" {
			m.AddRows(text.NewRow(errorHeight, row.Error, errorProps))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

func rowCols(row domain.ReportRow) []core.Col {
	compressed, savings := "-", "-"
	if row.Status == domain.StatusSucceeded {
		compressed = bytesize.Format(row.CompressedSize, bytesize.DefaultDecimals)
		savings = fmt.Sprintf("%.1f%%", row.SavingsPercent)
	}

	return []core.Col{
		text.NewCol(4, row.Name, cellProps),
		text.NewCol(2, string(row.Status), cellProps),
		text.NewCol(2, bytesize.Format(row.OriginalSize, bytesize.DefaultDecimals), cellProps),
		text.NewCol(2, compressed, cellProps),
		text.NewCol(2, savings, cellProps),
	}
}

func summary(rows []domain.ReportRow) string {
	var succeeded int
	var original, compressed int64

	for _, row := range rows {
		if row.Status != domain.StatusSucceeded {
			continue
		}
		succeeded++
		original += row.OriginalSize
		compressed += row.CompressedSize
	}

	return fmt.Sprintf("%s  |  %d of %d files compressed  |  %s saved",
		time.Now().Format(time.DateTime),
		succeeded,
		len(rows),
		bytesize.Format(original-compressed, bytesize.DefaultDecimals),
	)
}
