package domain

import "time"

// Compression is one request served by the compression service.
type Compression struct {
	ID             string    `db:"id"              json:"id"`
	Filename       string    `db:"filename"        json:"filename"`
	Level          string    `db:"level"           json:"level"`
	OriginalSize   int64     `db:"original_size"   json:"original_size"`
	CompressedSize int64     `db:"compressed_size" json:"compressed_size"`
	DurationMS     int64     `db:"duration_ms"     json:"duration_ms"`
	CreatedAt      time.Time `db:"created_at"      json:"created_at"`
}

type CompressionStats struct {
	Files               int     `json:"files"`
	TotalOriginalSize   int64   `json:"total_original_size"`
	TotalCompressedSize int64   `json:"total_compressed_size"`
	BytesSaved          int64   `json:"bytes_saved"`
	SavingsPercent      float64 `json:"savings_percent"`
}

// ReportRow is one line of a batch report.
type ReportRow struct {
	Name           string  `csv:"name"`
	Status         Status  `csv:"status"`
	OriginalSize   int64   `csv:"original_size"`
	CompressedSize int64   `csv:"compressed_size"`
	SavingsPercent float64 `csv:"savings_percent"`
	OutputPath     string  `csv:"output_path"`
	Error          string  `csv:"error"`
}
