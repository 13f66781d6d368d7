package main // Entry point package

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iliyamo/letter-pairs/internal/config"
	"github.com/iliyamo/letter-pairs/internal/database"
	"github.com/iliyamo/letter-pairs/internal/handler"
	"github.com/iliyamo/letter-pairs/internal/logger"
	"github.com/iliyamo/letter-pairs/internal/middleware"
	"github.com/iliyamo/letter-pairs/internal/pairs"
	"github.com/iliyamo/letter-pairs/internal/queue"
	"github.com/iliyamo/letter-pairs/internal/repository"
	"github.com/iliyamo/letter-pairs/internal/router"
	"github.com/iliyamo/letter-pairs/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run wires the server and blocks until a signal arrives or the listener
// fails.  Every return path runs the deferred closes.
func run() error {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()

	zl, err := logger.New(cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	// The table and its partitions are built once, before any request.
	resolver, err := pairs.Load()
	if err != nil {
		return fmt.Errorf("build pair table: %w", err)
	}
	zl.Info("pair table ready", zap.Int(logger.FieldCount, len(resolver.Index().Full())))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.NewRedisClient()
	if rdb == nil {
		zl.Warn("redis unavailable; rate limiting and stats cache disabled")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	var db *sql.DB
	if cfg.DBEnabled() {
		db, err = database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
	}

	var publisher handler.EventPublisher
	if cfg.AMQPURL != "" {
		qp := service.NewQueuePublisher(cfg.AMQPURL, logger.Component(zl, "publisher"))
		defer qp.Close()
		publisher = qp
		if db != nil {
			go func() {
				clog := logger.Component(zl, "consumer")
				if err := queue.StartPairsConsumer(ctx, cfg.AMQPURL, repository.NewPairQueryRepo(db), clog); err != nil && !errors.Is(err, context.Canceled) {
					clog.Error("consumer stopped", zap.Error(err))
				}
			}()
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger.Component(zl, "http")))

	router.RegisterRoutes(e)
	pairsHandler := handler.NewPairsHandler(resolver, resolver.Index(), publisher, zl)
	router.RegisterPairs(e, pairsHandler, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, logger.Component(zl, "ratelimit")))
	if db != nil && cfg.JWTSecret != "" {
		stats := &handler.StatsHandler{Repo: repository.NewPairQueryRepo(db), Log: zl}
		router.RegisterAdmin(e, stats, cfg.JWTSecret, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}

	zl.Info("listening", zap.String(logger.FieldAddress, cfg.Addr()), zap.String("env", cfg.Env))
	if err := serve(ctx, e, cfg.Addr(), shutdownTimeout); err != nil {
		zl.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}

// serve runs e on addr until ctx is done, then shuts it down within
// timeout.  A listener error is returned instead of exiting so the caller
// can release its resources.
func serve(ctx context.Context, e *echo.Echo, addr string, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
