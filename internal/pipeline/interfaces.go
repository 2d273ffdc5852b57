package pipeline

import (
	"context"
	"io"

	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

// DocumentService is the remote extraction service.
type DocumentService interface {
	UploadAsset(ctx context.Context, r io.Reader, mimeType string) (domain.AssetRef, error)
	SubmitExtractionJob(ctx context.Context, asset domain.AssetRef, elements []domain.ElementType) (domain.JobHandle, error)
	AwaitJobResult(ctx context.Context, job domain.JobHandle) (domain.ResultRef, error)
	FetchContent(ctx context.Context, result domain.ResultRef) (io.ReadCloser, error)
}

type FileUpdater interface {
	UpdateOrCreateFile(ctx context.Context, file *domain.File) error
}

type RecordAppender interface {
	Append(record *domain.Record)
}

type FileProcessor interface {
	Run(ctx context.Context, file domain.UploadedFile) (*domain.Record, error)
}

type FileReleaser interface {
	Release(file domain.UploadedFile) error
}
