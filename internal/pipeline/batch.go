package pipeline

import (
	"context"
	"log/slog"

	"github.com/kurochkinivan/transcript_extractor/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Batch runs a processor over every file of a request concurrently and
// appends each produced record as soon as it is ready.
type Batch struct {
	log       *slog.Logger
	processor FileProcessor
	results   RecordAppender
}

func NewBatch(log *slog.Logger, processor FileProcessor, results RecordAppender) *Batch {
	return &Batch{
		log:       log,
		processor: processor,
		results:   results,
	}
}

// ExtractAll waits for every file to finish. A failed file does not stop the
// others; records of successful files stay appended even when ExtractAll
// returns the first observed error.
func (b *Batch) ExtractAll(ctx context.Context, files []domain.UploadedFile) ([]*domain.Record, error) {
	records := make([]*domain.Record, len(files))

	var erg errgroup.Group
	for i, file := range files {
		erg.Go(func() error {
			record, err := b.processor.Run(ctx, file)
			if err != nil {
				return err
			}

			b.results.Append(record)
			records[i] = record

			return nil
		})
	}

	if err := erg.Wait(); err != nil {
		return nil, err
	}

	b.log.InfoContext(ctx, "batch extracted", slog.Int("files", len(files)))

	return records, nil
}
