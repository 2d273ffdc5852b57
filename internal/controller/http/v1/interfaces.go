package v1

import (
	"context"

	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

type BatchExtractor interface {
	ExtractAll(ctx context.Context, files []domain.UploadedFile) ([]*domain.Record, error)
}

type ResultsProvider interface {
	All() []*domain.Record
}

type ReportGenerator interface {
	GenerateReport(records []*domain.Record) ([]byte, error)
}

type FilesProvider interface {
	Files(ctx context.Context, limit, offset uint64) ([]*domain.File, int, error)
}
