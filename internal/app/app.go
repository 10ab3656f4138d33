package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/kurochkinivan/pdf_compressor/internal/compression"
	"github.com/kurochkinivan/pdf_compressor/internal/config"
	v1 "github.com/kurochkinivan/pdf_compressor/internal/controller/http/v1"
	"github.com/kurochkinivan/pdf_compressor/internal/infrastructure/clamav"
	"github.com/kurochkinivan/pdf_compressor/internal/infrastructure/ghostscript"
	"github.com/kurochkinivan/pdf_compressor/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
	out io.Writer
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
		out: os.Stderr,
	}
}

// Serve runs the compression service until ctx is done.
func (a *App) Serve(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting compression service",
		slog.String("work_dir", a.cfg.Server.WorkDir),
		slog.Int64("max_upload_size", a.cfg.Server.MaxUploadSize),
	)

	gsPath, err := ghostscript.LookPath(a.cfg.Ghostscript.Path)
	if err != nil {
		return fmt.Errorf("failed to find ghostscript: %w", err)
	}

	a.log.InfoContext(ctx, "using ghostscript", slog.String("path", gsPath))

	if err := os.MkdirAll(a.cfg.Server.WorkDir, 0o755); err != nil {
		return fmt.Errorf("failed to create work dir: %w", err)
	}

	var opts []compression.Option

	if a.cfg.ClamAV.Enabled() {
		a.log.InfoContext(ctx, "connecting to clamd", slog.String("address", a.cfg.ClamAV.Address))

		scanner, err := clamav.New(a.cfg.ClamAV.Address)
		if err != nil {
			return fmt.Errorf("failed to create virus scanner: %w", err)
		}

		opts = append(opts, compression.WithScanner(scanner))
	}

	var compressionsHandler *v1.CompressionsHandler

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

		compressionsRepository := postgresql.NewCompressionsRepository(pool, postgresql.NewTxManager(pool))

		opts = append(opts, compression.WithCompressionSaver(compressionsRepository))
		compressionsHandler = v1.NewCompressionsHandler(compressionsRepository)
	}

	service := compression.NewService(a.log, a.cfg.Server.WorkDir, ghostscript.New(a.log, gsPath), opts...)
	uploadHandler := v1.NewUploadHandler(a.log, service, a.cfg.Server.MaxUploadSize)

	return a.startServer(ctx, v1.NewServer(a.cfg.HTTP, uploadHandler, compressionsHandler))
}

func (a *App) startServer(ctx context.Context, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

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

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "compression service stopped with error", slog.String("err", err.Error()))
		return err
	}

	a.log.InfoContext(ctx, "compression service stopped")

	return nil
}
