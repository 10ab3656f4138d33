package v1

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/kurochkinivan/pdf_compressor/internal/compression"
	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

const multipartMemory = 8 << 20

type CompressionService interface {
	Compress(ctx context.Context, filename string, src io.Reader, level domain.CompressionLevel) (*compression.Result, error)
}

type UploadHandler struct {
	log           *slog.Logger
	service       CompressionService
	maxUploadSize int64
}

func NewUploadHandler(log *slog.Logger, service CompressionService, maxUploadSize int64) *UploadHandler {
	return &UploadHandler{
		log:           log,
		service:       service,
		maxUploadSize: maxUploadSize,
	}
}

// Upload compresses the multipart "file" field at the "compression_level" field's level
// and answers with the compressed document.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadSize {
		writeDetail(w, http.StatusRequestEntityTooLarge, "file is too large")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeDetail(w, http.StatusRequestEntityTooLarge, "file is too large")
			return
		}

		writeDetail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	candidate := domain.CandidateFile{
		Name:     header.Filename,
		Size:     header.Size,
		MIMEType: header.Header.Get("Content-Type"),
	}
	if !candidate.IsAccepted() {
		writeDetail(w, http.StatusBadRequest, "file must be a PDF")
		return
	}

	level, err := domain.ParseCompressionLevel(r.FormValue("compression_level"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Compress(r.Context(), candidate.Name, file, level)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to compress upload",
			slog.String("filename", candidate.Name),
			slog.String("err", err.Error()),
		)

		if errors.Is(err, domain.ErrInfected) {
			writeDetail(w, http.StatusBadRequest, "file is infected")
			return
		}

		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", domain.AcceptedMIMEType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": result.Filename,
	}))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.Header().Set("X-Original-Size", strconv.FormatInt(result.OriginalSize, 10))
	w.Header().Set("X-Compressed-Size", strconv.FormatInt(result.CompressedSize, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Data); err != nil {
		h.log.DebugContext(r.Context(), "failed to write compressed file",
			slog.String("filename", result.Filename),
			slog.String("err", err.Error()),
		)
	}
}
