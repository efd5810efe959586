package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ryhazerus/pagetracker"
	"github.com/ryhazerus/pagetracker/internal/config"
	"github.com/ryhazerus/pagetracker/internal/log"
	"github.com/ryhazerus/pagetracker/internal/telemetry"
	"github.com/ryhazerus/pagetracker/store"
	"github.com/ryhazerus/pagetracker/store/redis"
)

const namespace = "pagetracker"

// Timeouts.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

var (
	myName  = filepath.Base(os.Args[0])
	version string
)

func main() {
	cfg, err := config.Load(myName, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "*** %s: %v\n", myName, err)
		os.Exit(2)
	}

	logger := log.Must(log.NewLogger(
		log.WithLogLevel(cfg.LogLevel),
		log.WithDevelopment(cfg.Debug),
	)).With(zap.String("app", myName))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("abort", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	logger.Info("start",
		zap.String("version", version),
		zap.String("store", cfg.Store),
		zap.String("listen", cfg.ListenAddr),
	)
	defer logger.Info("done")

	metrics := telemetry.New(namespace)

	s, err := openStore(cfg)
	if err != nil {
		return err
	}

	tracker := pagetracker.New(
		pagetracker.WithStore(metrics.InstrumentStore(s, cfg.Store)),
		pagetracker.WithLogger(logger),
	)
	defer func() {
		if err := tracker.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	servers := []*http.Server{{
		Addr:              cfg.ListenAddr,
		Handler:           metrics.InstrumentHandler(tracker.Handler()),
		ReadHeaderTimeout: readHeaderTimeout,
	}}

	if cfg.TelemetryAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		servers = append(servers, &http.Server{
			Addr:              cfg.TelemetryAddr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		})
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		eg.Go(func() error {
			logger.Info("listen", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()

			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(sctx)
		})
	}

	return eg.Wait()
}

// openStore builds the configured backend. Redis is wrapped in store.Lazy so
// the client is built on the first request and shared afterwards.
func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.Store {
	case config.StoreRedis:
		url := cfg.RedisURL
		return store.NewLazy(func() (store.Store, error) {
			return redis.Open(url)
		}), nil
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	case config.StoreSQLite:
		s, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StoreTiered:
		persistent, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store.NewTieredStore(persistent), nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
