package domain

import "strings"

const AcceptedMIMEType = "application/pdf"

// CandidateFile is an input file as produced by the input adapters. It is never mutated.
type CandidateFile struct {
	Name     string
	Size     int64
	MIMEType string
	Content  []byte
}

func (f CandidateFile) IsAccepted() bool {
	mimeType, _, _ := strings.Cut(f.MIMEType, ";")
	return strings.EqualFold(strings.TrimSpace(mimeType), AcceptedMIMEType)
}

// CompressedName is the deterministic download name of a compressed file.
func CompressedName(originalName string) string {
	return "compressed_" + originalName
}
