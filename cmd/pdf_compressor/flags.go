package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/pdf_compressor/internal/app"
	"github.com/kurochkinivan/pdf_compressor/internal/config"
	"github.com/kurochkinivan/pdf_compressor/internal/domain"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

const defaultMaxUploadSize = 100 << 20

func cmd() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "pdf_compressor",
		Usage:   "Compress PDF files with Ghostscript",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Validator:   validateConfig,
				Usage:       "Load configuration from `FILE`",
				Sources:     cli.EnvVars("PDFC_CONFIG"),
				Destination: &configPath,
			},
		},
		Commands: []*cli.Command{
			compressCmd(&configPath),
			serveCmd(&configPath),
		},
	}
}

func loggerFrom(ctx context.Context) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}
	return log, nil
}

// source resolves a flag from the environment first and then from the YAML config.
func source(env, key string, configPath *string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(
		cli.EnvVar(env),
		yaml.YAML(key, altsrc.NewStringPtrSourcer(configPath)),
	)
}

func compressCmd(configPath *string) *cli.Command {
	return &cli.Command{
		Name:      "compress",
		Usage:     "Submit PDF files to the compression service and save the results",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "endpoint",
				Aliases:   []string{"e"},
				Usage:     "Set compression service upload `URL`",
				Value:     "http://localhost:8000/upload",
				Sources:   source("PDFC_ENDPOINT", "client.endpoint", configPath),
				Validator: validateEndpoint,
			},
			&cli.StringFlag{
				Name:      "level",
				Aliases:   []string{"l"},
				Usage:     "Set compression level: default, prepress, printer, ebook, screen or 0-4",
				Value:     string(domain.DefaultCompressionLevel),
				Sources:   source("PDFC_LEVEL", "client.level", configPath),
				Validator: validateLevel,
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "Set directory to save compressed files to",
				Value:   ".",
				Sources: source("PDFC_OUTPUT_DIR", "client.output_dir", configPath),
			},
			&cli.StringFlag{
				Name:      "report",
				Aliases:   []string{"r"},
				Usage:     "Write a batch report to `FILE` (.csv or .pdf)",
				Sources:   source("PDFC_REPORT", "client.report", configPath),
				Validator: validateReport,
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "Fail a file when the service does not answer in time, 0 waits forever",
				Sources: source("PDFC_TIMEOUT", "client.timeout", configPath),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := loggerFrom(ctx)
			if err != nil {
				return err
			}

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return errors.New("no files given")
			}

			return app.New(log, config.LoadClient(cmd)).Compress(ctx, paths)
		},
	}
}

func serveCmd(configPath *string) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the compression service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "work-dir",
				Usage:   "Set directory for temporary files",
				Value:   filepath.Join(os.TempDir(), "pdf_compressor"),
				Sources: source("PDFC_WORK_DIR", "server.work_dir", configPath),
			},
			&cli.Int64Flag{
				Name:      "max-upload-size",
				Usage:     "Set maximum upload size in bytes",
				Value:     defaultMaxUploadSize,
				Sources:   source("PDFC_MAX_UPLOAD_SIZE", "server.max_upload_size", configPath),
				Validator: validatePositive,
			},
			&cli.StringFlag{
				Name:    "gs-path",
				Usage:   "Set Ghostscript binary, looked up in PATH when empty",
				Sources: source("PDFC_GS_PATH", "ghostscript.path", configPath),
			},
			&cli.StringFlag{
				Name:    "clamav-address",
				Usage:   "Scan uploads with clamd at `ADDRESS`, disabled when empty",
				Sources: source("PDFC_CLAMAV_ADDRESS", "clamav.address", configPath),
			},
			&cli.StringFlag{
				Name:    "pg-host",
				Usage:   "Set PostgreSQL host, compression history is disabled when empty",
				Sources: source("PDFC_PG_HOST", "postgresql.host", configPath),
			},
			&cli.StringFlag{
				Name:    "pg-port",
				Usage:   "Set PostgreSQL port",
				Value:   "5432",
				Sources: source("PDFC_PG_PORT", "postgresql.port", configPath),
			},
			&cli.StringFlag{
				Name:    "pg-username",
				Usage:   "Set PostgreSQL username",
				Sources: source("PDFC_PG_USERNAME", "postgresql.username", configPath),
			},
			&cli.StringFlag{
				Name:    "pg-password",
				Usage:   "Set PostgreSQL password",
				Sources: source("PDFC_PG_PASSWORD", "postgresql.password", configPath),
			},
			&cli.StringFlag{
				Name:    "pg-dbname",
				Usage:   "Set PostgreSQL database name",
				Value:   "pdf_compressor",
				Sources: source("PDFC_PG_DBNAME", "postgresql.dbname", configPath),
			},
			&cli.IntFlag{
				Name:    "pg-connect-retries",
				Usage:   "Set how many times to retry connecting to PostgreSQL",
				Value:   5,
				Sources: source("PDFC_PG_CONNECT_RETRIES", "postgresql.connect_retries", configPath),
			},
			&cli.DurationFlag{
				Name:    "pg-retry-delay",
				Usage:   "Set delay between PostgreSQL connection attempts",
				Value:   5 * time.Second,
				Sources: source("PDFC_PG_RETRY_DELAY", "postgresql.retry_delay", configPath),
			},
			&cli.StringFlag{
				Name:    "http-host",
				Usage:   "Set HTTP server host",
				Value:   "localhost",
				Sources: source("PDFC_HTTP_HOST", "http.host", configPath),
			},
			&cli.StringFlag{
				Name:    "http-port",
				Usage:   "Set HTTP server port",
				Value:   "8000",
				Sources: source("PDFC_HTTP_PORT", "http.port", configPath),
			},
			&cli.DurationFlag{
				Name:    "http-idle-timeout",
				Usage:   "Set HTTP server idle timeout",
				Value:   1 * time.Minute,
				Sources: source("PDFC_HTTP_IDLE_TIMEOUT", "http.idle_timeout", configPath),
			},
			&cli.DurationFlag{
				Name:    "http-read-timeout",
				Usage:   "Set HTTP server read timeout",
				Value:   1 * time.Minute,
				Sources: source("PDFC_HTTP_READ_TIMEOUT", "http.read_timeout", configPath),
			},
			&cli.DurationFlag{
				Name:    "http-write-timeout",
				Usage:   "Set HTTP server write timeout",
				Value:   5 * time.Minute,
				Sources: source("PDFC_HTTP_WRITE_TIMEOUT", "http.write_timeout", configPath),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := loggerFrom(ctx)
			if err != nil {
				return err
			}

			cfg := config.LoadServer(cmd)

			if cfg.PostgreSQL.Enabled() && (cfg.PostgreSQL.Username == "" || cfg.PostgreSQL.Password == "") {
				return errors.New("pg-username and pg-password are required when pg-host is set")
			}

			return app.New(log, cfg).Serve(ctx)
		},
	}
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q must be an http or https URL", endpoint)
	}

	if u.Host == "" {
		return fmt.Errorf("endpoint %q has no host", endpoint)
	}

	return nil
}

func validateLevel(level string) error {
	_, err := domain.ParseCompressionLevel(level)
	return err
}

func validateReport(path string) error {
	switch filepath.Ext(path) {
	case ".csv", ".pdf":
		return nil
	default:
		return fmt.Errorf("report %q must be a .csv or .pdf file", path)
	}
}

func validatePositive(v int64) error {
	if v <= 0 {
		return fmt.Errorf("must be positive, got %d", v)
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
