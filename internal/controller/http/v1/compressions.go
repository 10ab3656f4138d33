package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

type CompressionsProvider interface {
	Compressions(ctx context.Context, limit, offset uint64) ([]*domain.Compression, int, error)
	Stats(ctx context.Context) (*domain.CompressionStats, error)
}

type CompressionsHandler struct {
	compressionsProvider CompressionsProvider
}

func NewCompressionsHandler(compressionsProvider CompressionsProvider) *CompressionsHandler {
	return &CompressionsHandler{
		compressionsProvider: compressionsProvider,
	}
}

type GetCompressionsResponse struct {
	Compressions []*domain.Compression `json:"compressions"`
	Pagination   Pagination            `json:"pagination"`
}

func (h *CompressionsHandler) GetCompressions(w http.ResponseWriter, r *http.Request) {
	page, limit, err := h.parsePagination(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	pagination := NewPagination(page, limit, 0)

	compressions, total, err := h.compressionsProvider.Compressions(r.Context(), limit, pagination.Offset())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	if compressions == nil {
		compressions = []*domain.Compression{}
	}

	writeJSON(w, http.StatusOK, GetCompressionsResponse{
		Compressions: compressions,
		Pagination:   NewPagination(page, limit, total),
	})
}

func (h *CompressionsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.compressionsProvider.Stats(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *CompressionsHandler) parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}
