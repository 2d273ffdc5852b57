package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

const pdfExt = ".pdf"

// Scanner watches a directory for PDF files and hands them to the pipeline.
// A file is claimed by moving it into the upload directory, so it is sent once.
type Scanner struct {
	log          *slog.Logger
	watchDir     string
	uploadDir    string
	scanInterval time.Duration
	files        chan<- domain.UploadedFile
}

func NewScanner(
	log *slog.Logger,
	watchDir string,
	uploadDir string,
	scanInterval time.Duration,
	files chan<- domain.UploadedFile,
) *Scanner {
	return &Scanner{
		log:          log,
		watchDir:     watchDir,
		uploadDir:    uploadDir,
		scanInterval: scanInterval,
		files:        files,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanFiles(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	entries, err := os.ReadDir(s.watchDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.watchDir, err)
	}

	for _, entry := range entries {
		file, ok, err := s.claimEntry(entry)
		if err != nil {
			s.log.ErrorContext(ctx, "failed to claim entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}

		if !ok {
			continue
		}

		s.log.DebugContext(ctx, "claimed file", slog.String("filename", file.Name), slog.String("upload", file.Path))

		select {
		case s.files <- file:
		case <-ctx.Done():
			s.release(ctx, file)
			return ctx.Err()
		}
	}

	return nil
}

func (s *Scanner) claimEntry(entry os.DirEntry) (domain.UploadedFile, bool, error) {
	if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), pdfExt) {
		return domain.UploadedFile{}, false, nil
	}

	info, err := entry.Info()
	if err != nil {
		return domain.UploadedFile{}, false, fmt.Errorf("failed to stat file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return domain.UploadedFile{}, false, nil
	}

	// the file may still be being copied into the directory
	if time.Since(info.ModTime()) < s.scanInterval {
		return domain.UploadedFile{}, false, nil
	}

	dst := filepath.Join(s.uploadDir, uuid.NewString()+pdfExt)
	if err := os.Rename(filepath.Join(s.watchDir, entry.Name()), dst); err != nil {
		return domain.UploadedFile{}, false, fmt.Errorf("failed to move file to upload directory: %w", err)
	}

	return domain.UploadedFile{Path: dst, Name: entry.Name()}, true, nil
}

// Release moves a claimed file back into the watch directory so that a later
// run picks it up again. A file with the same name in the watch directory is
// kept and the released one gets a unique suffix.
func (s *Scanner) Release(file domain.UploadedFile) error {
	dst := filepath.Join(s.watchDir, filepath.Base(file.Name))

	_, err := os.Lstat(dst)
	switch {
	case err == nil:
		ext := filepath.Ext(dst)
		dst = strings.TrimSuffix(dst, ext) + "-" + uuid.NewString() + ext
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed to stat %q: %w", dst, err)
	}

	if err := os.Rename(file.Path, dst); err != nil {
		return fmt.Errorf("failed to move file back to watch directory: %w", err)
	}

	return nil
}

func (s *Scanner) release(ctx context.Context, file domain.UploadedFile) {
	if err := s.Release(file); err != nil {
		s.log.ErrorContext(ctx, "failed to release claimed file",
			slog.String("filename", file.Name),
			slog.String("upload", file.Path),
			slog.String("err", err.Error()),
		)
	}
}
