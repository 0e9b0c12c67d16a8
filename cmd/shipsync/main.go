// Command shipsync records shipments locally and syncs them to a remote
// endpoint whenever the network is reachable.
//
// @title                       Shipment Sync API
// @version                     1.0
// @description                 Offline-first shipment recording with opportunistic sync to a remote endpoint.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-sync/internal/api"
	"github.com/99minutos/shipment-sync/internal/api/handler"
	"github.com/99minutos/shipment-sync/internal/core/ports"
	"github.com/99minutos/shipment-sync/internal/core/service"
	"github.com/99minutos/shipment-sync/internal/infrastructure/connectivity"
	"github.com/99minutos/shipment-sync/internal/infrastructure/db/file"
	"github.com/99minutos/shipment-sync/internal/infrastructure/db/memory"
	mongodb "github.com/99minutos/shipment-sync/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/shipment-sync/internal/infrastructure/db/redis"
	"github.com/99minutos/shipment-sync/internal/infrastructure/db/sqlite"
	"github.com/99minutos/shipment-sync/internal/infrastructure/delivery"
	"github.com/99minutos/shipment-sync/internal/infrastructure/queue"
	"github.com/99minutos/shipment-sync/internal/infrastructure/store"
	"github.com/99minutos/shipment-sync/internal/pkg/config"
	"github.com/99minutos/shipment-sync/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// medium is a storage backend that can also report its health.
type medium interface {
	store.KV
	handler.Pinger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(ctx)
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "shipsync",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("shipsync stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Record store ---
	kv, closeStore, err := openMedium(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	readiness := map[string]handler.Pinger{"store": kv}
	recordStore := store.NewRecordStore(kv, cfg.Store.Key)

	// --- Sync engine ---
	sink, err := delivery.NewHTTPSink(delivery.HTTPSinkConfig{
		Endpoint: cfg.Sync.Endpoint,
		UserID:   cfg.Sync.UserID,
		Timeout:  cfg.Sync.DeliveryTimeout,
	})
	if err != nil {
		return err
	}

	syncOpts := []service.SyncOption{service.WithDeliveryTimeout(cfg.Sync.DeliveryTimeout)}
	if cfg.Sync.Ledger {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("delivery ledger: %w", err)
		}
		defer func() { _ = rdb.Close() }()

		syncOpts = append(syncOpts, service.WithLedger(redisdb.NewDeliveryLedger(rdb, cfg.Sync.LedgerTTL)))
		readiness["ledger"] = redisdb.NewKV(rdb)
	}
	engine := service.NewSyncEngine(recordStore, sink, logger.Component(log, "sync"), syncOpts...)

	// --- Connectivity oracle ---
	var (
		oracle ports.ConnectivityOracle
		sw     handler.ConnectivitySwitch
	)
	switch cfg.Connectivity.Mode {
	case config.ConnectivityManual:
		m := connectivity.NewManual(cfg.Connectivity.InitialOnline)
		oracle, sw = m, m
	default:
		p := connectivity.NewProber(connectivity.ProberConfig{
			URL:      cfg.Connectivity.ProbeURL,
			Interval: cfg.Connectivity.Interval,
			Timeout:  cfg.Connectivity.Timeout,
		}, logger.Component(log, "connectivity"))
		oracle = p
		go p.Run(ctx)
	}

	svc := service.NewShipmentService(recordStore, oracle, engine, logger.Component(log, "shipments"))

	// --- Sync triggers ---
	dispatcher := queue.NewDispatcher(svc, logger.Component(log, "dispatcher"))
	dispatcher.Start(ctx)
	unsubscribe := dispatcher.WatchConnectivity(oracle)
	defer unsubscribe()
	go dispatcher.RunInterval(ctx, cfg.Sync.Interval)
	dispatcher.Enqueue(queue.TriggerStartup)

	// --- HTTP API ---
	e := api.NewRouter(api.Dependencies{
		Shipments:    svc,
		Connectivity: oracle,
		Switch:       sw,
		Readiness:    readiness,
		JWTSecret:    cfg.JWTSecret,
		Log:          logger.Component(log, "http"),
	})

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("store", cfg.Store.Backend).
		Str("connectivity", cfg.Connectivity.Mode).
		Msg("shipsync started")

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	select {
	case <-dispatcher.Done():
	case <-shutdownCtx.Done():
		log.Warn().Msg("sync dispatcher did not stop in time")
	}

	log.Info().Msg("shipsync stopped")
	return nil
}

// openMedium connects the configured storage backend. The returned func
// releases it.
func openMedium(ctx context.Context, cfg *config.Config) (medium, func(), error) {
	noop := func() {}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return memory.NewKV(), noop, nil

	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, sqlite.Config{Path: cfg.SQLite.Path})
		if err != nil {
			return nil, noop, err
		}
		kv, err := sqlite.NewKV(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return kv, func() { _ = db.Close() }, nil

	case config.BackendRedis:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, noop, err
		}
		return redisdb.NewKV(rdb), func() { _ = rdb.Close() }, nil

	case config.BackendMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, noop, err
		}
		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return mongodb.NewKV(db), closeFn, nil

	default:
		kv, err := file.Open(cfg.Store.Dir)
		if err != nil {
			return nil, noop, err
		}
		return kv, noop, nil
	}
}
