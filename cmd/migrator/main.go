package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/urfave/cli/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd(log).Run(ctx, os.Args); err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", slog.String("err", err.Error()))
		stop()
		os.Exit(1)
	}
}

func cmd(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrator",
		Usage: "Manage the upload journal schema",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Usage: "database username", Sources: cli.EnvVars("PG_USERNAME"), Required: true},
			&cli.StringFlag{Name: "password", Usage: "database password", Sources: cli.EnvVars("PG_PASSWORD"), Required: true},
			&cli.StringFlag{Name: "host", Usage: "database host", Value: "127.0.0.1", Sources: cli.EnvVars("PG_HOST")},
			&cli.StringFlag{Name: "port", Usage: "database port", Value: "5432", Sources: cli.EnvVars("PG_PORT")},
			&cli.StringFlag{Name: "db", Usage: "database name", Value: "transcript_extractor", Sources: cli.EnvVars("PG_DBNAME")},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(ctx, log, cmd, (*migrate.Migrate).Up)
				},
			},
			{
				Name:  "down",
				Usage: "Revert all migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(ctx, log, cmd, (*migrate.Migrate).Down)
				},
			},
		},
	}
}

func run(ctx context.Context, log *slog.Logger, cmd *cli.Command, apply func(*migrate.Migrate) error) (err error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, databaseURL(cmd))
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		err = errors.Join(err, srcErr, dbErr)
	}()

	if err := apply(migrator); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.InfoContext(ctx, "no migrations to apply")
			return nil
		}

		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations applied successfully", slog.String("type", cmd.Name))

	return nil
}

func databaseURL(cmd *cli.Command) string {
	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cmd.String("username"), cmd.String("password")),
		Host:     net.JoinHostPort(cmd.String("host"), cmd.String("port")),
		Path:     cmd.String("db"),
		RawQuery: "sslmode=disable",
	}).String()
}
