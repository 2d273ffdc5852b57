package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PDFServices
	PostgreSQL
	HTTP
}

type App struct {
	UploadDirectory string
	OutputDirectory string
	WatchDirectory  string
	ScanInterval    time.Duration
}

type PDFServices struct {
	BaseURL        string
	ClientID       string
	ClientSecret   string
	RequestTimeout time.Duration
	PollInterval   time.Duration
	PollTimeout    time.Duration
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// Enabled reports whether the upload journal should be kept in PostgreSQL.
func (c PostgreSQL) Enabled() bool {
	return c.Host != ""
}

type HTTP struct {
	Host          string
	Port          string
	CORSOrigin    string
	MaxUploadSize int64
	IdleTimeout   time.Duration
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			UploadDirectory: cmd.String("upload-dir"),
			OutputDirectory: cmd.String("output-dir"),
			WatchDirectory:  cmd.String("watch-dir"),
			ScanInterval:    cmd.Duration("scan-interval"),
		},
		PDFServices: PDFServices{
			BaseURL:        cmd.String("pdf-services-url"),
			ClientID:       cmd.String("client-id"),
			ClientSecret:   cmd.String("client-secret"),
			RequestTimeout: cmd.Duration("pdf-services-request-timeout"),
			PollInterval:   cmd.Duration("poll-interval"),
			PollTimeout:    cmd.Duration("poll-timeout"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:          cmd.String("http-host"),
			Port:          cmd.String("http-port"),
			CORSOrigin:    cmd.String("cors-origin"),
			MaxUploadSize: cmd.Int64("max-upload-size"),
			IdleTimeout:   cmd.Duration("http-idle-timeout"),
			ReadTimeout:   cmd.Duration("http-read-timeout"),
			WriteTimeout:  cmd.Duration("http-write-timeout"),
		},
	}
}
