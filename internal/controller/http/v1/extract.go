package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

const (
	uploadField     = "pdfFiles"
	multipartMemory = 8 << 20
)

type ExtractHandler struct {
	log           *slog.Logger
	uploadDir     string
	maxUploadSize int64
	extractor     BatchExtractor
}

func NewExtractHandler(log *slog.Logger, uploadDir string, maxUploadSize int64, extractor BatchExtractor) *ExtractHandler {
	return &ExtractHandler{
		log:           log,
		uploadDir:     uploadDir,
		maxUploadSize: maxUploadSize,
		extractor:     extractor,
	}
}

// ExtractText stores every uploaded PDF and extracts a record from each.
// The whole batch fails if any file fails.
func (h *ExtractHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	err := r.ParseMultipartForm(multipartMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "upload is too large", http.StatusRequestEntityTooLarge)
			return
		}

		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		headers = r.MultipartForm.File[uploadField]
	}

	if len(headers) == 0 {
		http.Error(w, "No files uploaded", http.StatusBadRequest)
		return
	}

	files, err := h.saveUploads(headers)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to store uploads", slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Error storing uploads: " + err.Error()})
		return
	}

	// pipelines run to completion even if the client goes away
	records, err := h.extractor.ExtractAll(context.WithoutCancel(r.Context()), files)
	if err != nil {
		h.log.ErrorContext(r.Context(), "exception encountered while extracting text", slog.String("err", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Error extracting text: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *ExtractHandler) saveUploads(headers []*multipart.FileHeader) (_ []domain.UploadedFile, err error) {
	files := make([]domain.UploadedFile, 0, len(headers))

	defer func() {
		if err == nil {
			return
		}

		for _, f := range files {
			err = errors.Join(err, os.Remove(f.Path))
		}
	}()

	for _, header := range headers {
		path, err := h.saveUpload(header)
		if err != nil {
			return nil, fmt.Errorf("failed to store %q: %w", header.Filename, err)
		}

		files = append(files, domain.UploadedFile{Path: path, Name: header.Filename})
	}

	return files, nil
}

func (h *ExtractHandler) saveUpload(header *multipart.FileHeader) (_ string, err error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer func() { err = errors.Join(err, src.Close()) }()

	path := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(header.Filename))

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", err
	}

	_, err = io.Copy(dst, src)
	if err = errors.Join(err, dst.Close()); err != nil {
		return "", errors.Join(err, os.Remove(path))
	}

	return path, nil
}
