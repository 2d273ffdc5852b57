package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/kurochkinivan/transcript_extractor/internal/config"
	v1 "github.com/kurochkinivan/transcript_extractor/internal/controller/http/v1"
	"github.com/kurochkinivan/transcript_extractor/internal/domain"
	"github.com/kurochkinivan/transcript_extractor/internal/infrastructure/pdfservices"
	"github.com/kurochkinivan/transcript_extractor/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/transcript_extractor/internal/pipeline"
	"github.com/kurochkinivan/transcript_extractor/internal/repository/postgresql"
	"github.com/kurochkinivan/transcript_extractor/internal/store"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer     = 16
	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("upload_dir", a.cfg.App.UploadDirectory),
		slog.String("output_dir", a.cfg.App.OutputDirectory),
		slog.String("watch_dir", a.cfg.App.WatchDirectory),
		slog.String("pdf_services_url", a.cfg.PDFServices.BaseURL),
	)

	for _, dir := range []string{a.cfg.App.UploadDirectory, a.cfg.App.OutputDirectory} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	var (
		fileUpdater   pipeline.FileUpdater
		filesProvider v1.FilesProvider
	)

	if a.cfg.PostgreSQL.Enabled() {
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
		)

		pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
		if err != nil {
			return fmt.Errorf("failed to create db connection: %w", err)
		}
		defer pool.Close()

		filesRepository := postgresql.NewFilesRepository(pool)

		interrupted, err := filesRepository.FailProcessingFiles(ctx)
		if err != nil {
			return fmt.Errorf("failed to reset processing files: %w", err)
		}

		if interrupted > 0 {
			a.log.WarnContext(ctx, "marked interrupted uploads as failed", slog.Int64("count", interrupted))
		}

		fileUpdater, filesProvider = filesRepository, filesRepository
	} else {
		a.log.InfoContext(ctx, "postgresql host is not set, upload journal disabled")
	}

	return a.start(ctx, fileUpdater, filesProvider)
}

func (a *App) start(ctx context.Context, fileUpdater pipeline.FileUpdater, filesProvider v1.FilesProvider) error {
	results := store.NewResults()

	service := pdfservices.New(a.log, a.cfg.PDFServices)
	extractor := pipeline.NewPipeline(a.log, a.cfg.App.OutputDirectory, service, fileUpdater)
	batch := pipeline.NewBatch(a.log, extractor, results)

	server := v1.NewServer(
		a.cfg.HTTP,
		v1.NewExtractHandler(a.log, a.cfg.App.UploadDirectory, a.cfg.HTTP.MaxUploadSize, batch),
		v1.NewResultsHandler(a.log, results, report_generator.New()),
		v1.NewUploadsHandler(filesProvider),
	)

	erg, ctx := errgroup.WithContext(ctx)

	if a.cfg.App.WatchDirectory != "" {
		files := make(chan domain.UploadedFile, filesBuffer)

		scanner := pipeline.NewScanner(
			a.log,
			a.cfg.App.WatchDirectory,
			a.cfg.App.UploadDirectory,
			a.cfg.App.ScanInterval,
			files,
		)
		worker := pipeline.NewWorker(a.log, files, extractor, results, scanner)

		erg.Go(func() error {
			a.log.InfoContext(ctx, "scanner started")
			return scanner.Run(ctx)
		})

		erg.Go(func() error {
			a.log.InfoContext(ctx, "worker started")
			return worker.Run(ctx)
		})
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
