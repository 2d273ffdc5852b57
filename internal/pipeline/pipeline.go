package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

const archiveTimeLayout = "2006-01-02T15-04-05"

// Pipeline turns one uploaded PDF into a record using the remote document service.
type Pipeline struct {
	log         *slog.Logger
	outputDir   string
	service     DocumentService
	fileUpdater FileUpdater
	now         func() time.Time
}

func NewPipeline(
	log *slog.Logger,
	outputDir string,
	service DocumentService,
	fileUpdater FileUpdater,
) *Pipeline {
	if fileUpdater == nil {
		fileUpdater = nopFileUpdater{}
	}

	return &Pipeline{
		log:         log,
		outputDir:   outputDir,
		service:     service,
		fileUpdater: fileUpdater,
		now:         time.Now,
	}
}

// Run extracts a record from file. The uploaded file is removed on every
// return path, the downloaded archive only if it was written.
func (p *Pipeline) Run(ctx context.Context, file domain.UploadedFile) (record *domain.Record, err error) {
	log := p.log.With(
		slog.String("filename", file.Name),
		slog.String("upload", filepath.Base(file.Path)),
	)

	p.updateFile(ctx, log, file, domain.StatusProcessing, nil)

	defer func() {
		if rmErr := remove(file.Path); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to remove uploaded file: %w", rmErr))
		}

		if err != nil {
			log.ErrorContext(ctx, "extraction failed", slog.String("err", err.Error()))
			p.updateFile(ctx, log, file, domain.StatusError, err)

			record, err = nil, &domain.ExtractionError{Filename: file.Name, Err: err}
			return
		}

		p.updateFile(ctx, log, file, domain.StatusDone, nil)
	}()

	archivePath, err := p.download(ctx, log, file)
	if err != nil {
		return nil, err
	}

	defer func() {
		if rmErr := remove(archivePath); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to remove archive: %w", rmErr))
		}
	}()

	content, err := Unpack(archivePath)
	if err != nil {
		return nil, err
	}

	texts, err := ParseManifest(content)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "parsed extraction manifest", slog.Int("fragments", len(texts)))

	return ExtractRecord(texts), nil
}

// download runs the remote job for file and stores its result archive locally.
func (p *Pipeline) download(ctx context.Context, log *slog.Logger, file domain.UploadedFile) (_ string, err error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	asset, err := p.service.UploadAsset(ctx, f, domain.MimeTypePDF)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUpload, err)
	}

	log.DebugContext(ctx, "uploaded asset", slog.String("asset_id", asset.ID))

	job, err := p.service.SubmitExtractionJob(ctx, asset, []domain.ElementType{domain.ElementText})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSubmit, err)
	}

	log.DebugContext(ctx, "submitted extraction job", slog.String("polling_url", job.PollingURL))

	result, err := p.service.AwaitJobResult(ctx, job)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrJob, err)
	}

	content, err := p.service.FetchContent(ctx, result)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}
	defer func() { err = errors.Join(err, content.Close()) }()

	path, err := p.saveArchive(content)
	if err != nil {
		return "", err
	}

	log.DebugContext(ctx, "saved result archive", slog.String("archive", path))

	return path, nil
}

// saveArchive writes r to a new archive file and returns its path once the
// file is closed. A partially written file is removed.
func (p *Pipeline) saveArchive(r io.Reader) (_ string, err error) {
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := p.archivePath()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create archive: %w", err)
	}

	_, err = io.Copy(f, r)
	if err = errors.Join(err, f.Close()); err != nil {
		return "", errors.Join(fmt.Errorf("failed to write archive: %w", err), remove(path))
	}

	return path, nil
}

func (p *Pipeline) archivePath() string {
	name := fmt.Sprintf("extract%s-%s.zip", p.now().Format(archiveTimeLayout), uuid.NewString())
	return filepath.Join(p.outputDir, name)
}

func (p *Pipeline) updateFile(ctx context.Context, log *slog.Logger, file domain.UploadedFile, status domain.Status, cause error) {
	entry := &domain.File{
		Name:         filepath.Base(file.Path),
		OriginalName: file.Name,
		Status:       status,
	}

	if status != domain.StatusProcessing {
		now := p.now()
		entry.ProcessedAt = &now
	}

	if cause != nil {
		entry.ErrorMessage = cause.Error()
	}

	if err := p.fileUpdater.UpdateOrCreateFile(ctx, entry); err != nil {
		log.WarnContext(ctx, "failed to update upload journal",
			slog.String("status", string(status)),
			slog.String("err", err.Error()),
		)
	}
}

func remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

type nopFileUpdater struct{}

func (nopFileUpdater) UpdateOrCreateFile(context.Context, *domain.File) error {
	return nil
}
