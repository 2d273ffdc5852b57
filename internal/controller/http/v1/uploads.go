package v1

import (
	"net/http"

	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

type UploadsHandler struct {
	files FilesProvider
}

// NewUploadsHandler serves the upload journal. files may be nil when the
// journal is disabled.
func NewUploadsHandler(files FilesProvider) *UploadsHandler {
	return &UploadsHandler{files: files}
}

type GetUploadsResponse struct {
	Files      []*domain.File `json:"files"`
	Pagination Pagination     `json:"pagination"`
}

func (h *UploadsHandler) GetUploads(w http.ResponseWriter, r *http.Request) {
	if h.files == nil {
		http.Error(w, "upload journal is disabled", http.StatusNotFound)
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	files, total, err := h.files.Files(r.Context(), limit, (page-1)*limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, GetUploadsResponse{
		Files:      files,
		Pagination: newPagination(page, limit, total),
	})
}
