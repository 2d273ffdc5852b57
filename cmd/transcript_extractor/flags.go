package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/transcript_extractor/internal/app"
	"github.com/kurochkinivan/transcript_extractor/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "transcript_extractor",
		Usage:   "Extract course records from PDF transcripts",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	src := func(key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(&config)))
	}

	envOrSrc := func(env, key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(cli.EnvVar(env), yaml.YAML(key, altsrc.NewStringPtrSourcer(&config)))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:    "upload-dir",
			Aliases: []string{"u"},
			Usage:   "Set directory for received uploads",
			Value:   "uploads",
			Sources: src("app.upload_dir"),
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "Set directory for downloaded extraction archives",
			Value:   filepath.Join("output", "ExtractTextInfoFromPDF"),
			Sources: src("app.output_dir"),
		},
		&cli.StringFlag{
			Name:      "watch-dir",
			Aliases:   []string{"w"},
			Usage:     "Also extract PDF files dropped into `DIR`",
			Sources:   src("app.watch_dir"),
			Validator: validateDirectory,
		},
		&cli.DurationFlag{
			Name:    "scan-interval",
			Aliases: []string{"s"},
			Value:   3 * time.Second,
			Usage:   "Set watch directory scan interval",
			Sources: src("app.scan_interval"),
		},
		&cli.StringFlag{
			Name:    "pdf-services-url",
			Usage:   "Set Adobe PDF Services base URL",
			Value:   "https://pdf-services.adobe.io",
			Sources: src("pdf_services.url"),
		},
		&cli.StringFlag{
			Name:     "client-id",
			Usage:    "Set Adobe PDF Services client ID",
			Sources:  envOrSrc("CLIENT_ID", "pdf_services.client_id"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "client-secret",
			Usage:    "Set Adobe PDF Services client secret",
			Sources:  envOrSrc("CLIENT_SECRET", "pdf_services.client_secret"),
			Required: true,
		},
		&cli.DurationFlag{
			Name:    "pdf-services-request-timeout",
			Usage:   "Set timeout of a single PDF Services request",
			Value:   1 * time.Minute,
			Sources: src("pdf_services.request_timeout"),
		},
		&cli.DurationFlag{
			Name:    "poll-interval",
			Usage:   "Set extraction job polling interval",
			Value:   2 * time.Second,
			Sources: src("pdf_services.poll_interval"),
		},
		&cli.DurationFlag{
			Name:    "poll-timeout",
			Usage:   "Give up on an extraction job after this long, 0 waits forever",
			Value:   10 * time.Minute,
			Sources: src("pdf_services.poll_timeout"),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host, empty disables the upload journal",
			Sources: src("postgresql.host"),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: src("postgresql.port"),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: src("postgresql.username"),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: envOrSrc("PG_PASSWORD", "postgresql.password"),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "transcript_extractor",
			Sources: src("postgresql.dbname"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: src("http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "3000",
			Sources: src("http.port"),
		},
		&cli.StringFlag{
			Name:    "cors-origin",
			Usage:   "Set browser origin allowed to call the API",
			Value:   "http://127.0.0.1:5500",
			Sources: src("http.cors_origin"),
		},
		&cli.Int64Flag{
			Name:    "max-upload-size",
			Usage:   "Set maximum request body size in bytes for uploads",
			Value:   64 << 20,
			Sources: src("http.max_upload_size"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: src("http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: src("http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout, must cover a whole extraction batch",
			Value:   15 * time.Minute,
			Sources: src("http.write_timeout"),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
