package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/utilibill/bills-tracker/internal/common"
	"github.com/utilibill/bills-tracker/internal/extract"
	"github.com/utilibill/bills-tracker/internal/ingest"
	"github.com/utilibill/bills-tracker/internal/parse"
	"github.com/utilibill/bills-tracker/internal/pipeline"
	"github.com/utilibill/bills-tracker/internal/repository"
	"github.com/utilibill/bills-tracker/internal/server"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, pool, logger)

	if err := repository.Migrate(ctx, db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	bills := repository.NewBillRepository(db, repository.DialectPostgres)
	accounts := repository.NewAccountRepository(db, repository.DialectPostgres)
	proc := pipeline.NewProcessor(
		logger,
		extract.NewFileExtractor(logger),
		parse.NewAssembler(logger),
		bills,
		accounts,
	)

	if cfg.Ingest.WatchDir != "" {
		startWatcher(ctx, cfg, proc, logger)
	}

	srv := server.New(logger, proc, bills, accounts, func() error {
		return repository.HealthCheck(context.Background(), db, 2*time.Second, logger)
	})
	httpSrv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: srv.Router(),
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}

// startWatcher feeds new files in the watch directory through the pipeline.
func startWatcher(ctx context.Context, cfg *common.Config, proc *pipeline.Processor, logger *slog.Logger) {
	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{cfg.Ingest.WatchDir},
		InitialScan: true,
		Debounce:    cfg.Ingest.Debounce,
	})
	if err != nil {
		logger.Error("failed to start watcher", "dir", cfg.Ingest.WatchDir, "error", err)
		return
	}
	logger.Info("watching for bill documents", "dir", cfg.Ingest.WatchDir)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path, ok := <-evCh:
				if !ok {
					return
				}
				if _, err := proc.ProcessFile(ctx, path); err != nil {
					logger.Error("watch.process.failed", "path", path, "error", err)
				}
			case werr, ok := <-errCh:
				if ok && werr != nil {
					logger.Error("watch.error", "error", werr)
				}
			}
		}
	}()
}
