package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BillboardService/internal/config"
	billboardRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/billboard"
	bookingRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
	sanitizerService "github.com/m04kA/SMC-BillboardService/internal/service/sanitizer"
	repairPricesUC "github.com/m04kA/SMC-BillboardService/internal/usecase/repair_prices"
	"github.com/m04kA/SMC-BillboardService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BillboardService/pkg/logger"
	"github.com/m04kA/SMC-BillboardService/pkg/runlock"
)

// Пакетное исправление завышенных цен бронирований
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.RepairFile, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Repair finished with error: %v", err)
		stop()
		log.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	req := &repairPricesUC.Request{BatchSize: cfg.Pricing.RepairBatchSize}

	// Второй запуск не должен идти параллельно с первым
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		lock, err := runlock.Acquire(ctx, rdb, cfg.Redis.LockKey, time.Duration(cfg.Redis.LockTTL)*time.Second)
		if err != nil {
			if errors.Is(err, runlock.ErrLocked) {
				log.Warn("Repair already running elsewhere (key=%s), exiting", cfg.Redis.LockKey)
				return nil
			}
			return err
		}
		defer func() {
			if err := lock.Release(context.Background()); err != nil {
				log.Error("Failed to release repair lock: %v", err)
			}
		}()
		req.Lease = lock
	} else {
		log.Warn("Redis is not configured, running without repair lock")
	}

	wrappedDB := dbmetrics.Wrap(db, nil, cfg.Database.DBName)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	billboardRepository := billboardRepo.NewRepository(wrappedDB)

	policy := pricing.Policy{
		FallbackSlotPrice:        cfg.Pricing.FallbackSlotPrice,
		SuspiciousPriceThreshold: cfg.Pricing.SuspiciousPriceThreshold,
	}

	sanitizer := sanitizerService.NewService(bookingRepository, billboardRepository, policy, nil, log)
	useCase := repairPricesUC.NewUseCase(bookingRepository, sanitizer, policy, log)

	summary, err := useCase.Execute(ctx, req)
	if summary != nil {
		log.Info("Repair summary: scanned=%d, corrected=%d, saved=%.2f, last_id=%d",
			summary.Scanned, summary.Corrected, summary.Saved, summary.LastID)
	}
	return err
}
