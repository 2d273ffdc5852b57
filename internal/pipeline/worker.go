package pipeline

import (
	"context"
	"log/slog"

	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

// Worker extracts records from files claimed by the Scanner.
type Worker struct {
	log       *slog.Logger
	files     <-chan domain.UploadedFile
	processor FileProcessor
	results   RecordAppender
	releaser  FileReleaser
}

func NewWorker(
	log *slog.Logger,
	files <-chan domain.UploadedFile,
	processor FileProcessor,
	results RecordAppender,
	releaser FileReleaser,
) *Worker {
	return &Worker{
		log:       log,
		files:     files,
		processor: processor,
		results:   results,
		releaser:  releaser,
	}
}

// Run processes files until the channel is closed or ctx is done. On ctx done
// it hands every pending file back to the releaser and waits for the producer
// to close the channel.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case file, ok := <-w.files:
			if !ok {
				return nil
			}

			if ctx.Err() != nil {
				w.release(ctx, file)
				w.releasePending(ctx)
				return ctx.Err()
			}

			w.process(ctx, file)

		case <-ctx.Done():
			w.releasePending(ctx)
			return ctx.Err()
		}
	}
}

func (w *Worker) process(ctx context.Context, file domain.UploadedFile) {
	log := w.log.With(slog.String("filename", file.Name))

	log.InfoContext(ctx, "received file to extract")

	record, err := w.processor.Run(ctx, file)
	if err != nil {
		log.ErrorContext(ctx, "failed to extract record", slog.String("err", err.Error()))
		return
	}

	w.results.Append(record)

	log.InfoContext(ctx, "record extracted")
}

func (w *Worker) releasePending(ctx context.Context) {
	for file := range w.files {
		w.release(ctx, file)
	}
}

func (w *Worker) release(ctx context.Context, file domain.UploadedFile) {
	log := w.log.With(slog.String("filename", file.Name))

	if err := w.releaser.Release(file); err != nil {
		log.ErrorContext(ctx, "failed to release pending file", slog.String("err", err.Error()))
		return
	}

	log.InfoContext(ctx, "released pending file")
}
