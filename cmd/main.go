package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	cancelBookingHandler "github.com/m04kA/SMC-BillboardService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-BillboardService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-BillboardService/internal/api/handlers/create_booking"
	estimatePriceHandler "github.com/m04kA/SMC-BillboardService/internal/api/handlers/estimate_price"
	getBillboardPricingHandler "github.com/m04kA/SMC-BillboardService/internal/api/handlers/get_billboard_pricing"
	getBookingHandler "github.com/m04kA/SMC-BillboardService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/SMC-BillboardService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/SMC-BillboardService/internal/api/handlers/list_bookings"
	updateBillboardPricingHandler "github.com/m04kA/SMC-BillboardService/internal/api/handlers/update_billboard_pricing"
	updateBookingStatusHandler "github.com/m04kA/SMC-BillboardService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-BillboardService/internal/api/middleware"
	"github.com/m04kA/SMC-BillboardService/internal/config"
	billboardRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/billboard"
	bookingRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
	billboardsService "github.com/m04kA/SMC-BillboardService/internal/service/billboards"
	bookingsService "github.com/m04kA/SMC-BillboardService/internal/service/bookings"
	sanitizerService "github.com/m04kA/SMC-BillboardService/internal/service/sanitizer"
	checkAvailabilityUC "github.com/m04kA/SMC-BillboardService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-BillboardService/internal/usecase/create_booking"
	estimatePriceUC "github.com/m04kA/SMC-BillboardService/internal/usecase/estimate_price"
	"github.com/m04kA/SMC-BillboardService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BillboardService/pkg/logger"
	"github.com/m04kA/SMC-BillboardService/pkg/metrics"
	"github.com/m04kA/SMC-BillboardService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BillboardService...")
	log.Info("Configuration loaded from config.toml (timezone=%s, price_mode=%s, enforce_capacity=%t)",
		cfg.Server.Timezone, cfg.Pricing.ClientPriceMode, cfg.Pricing.EnforceSlotCapacity)

	// Инициализируем метрики (если включены). nil-коллектор везде допустим
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	billboardRepository := billboardRepo.NewRepository(wrappedDB)

	policy := pricing.Policy{
		FallbackSlotPrice:        cfg.Pricing.FallbackSlotPrice,
		SuspiciousPriceThreshold: cfg.Pricing.SuspiciousPriceThreshold,
	}
	location := cfg.Location()

	// Инициализируем сервисы
	sanitizer := sanitizerService.NewService(
		bookingRepository,
		billboardRepository,
		policy,
		metricsCollector,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		billboardRepository,
		sanitizer,
		txMgr,
		&bookingsService.RealTimeProvider{},
		location,
		log,
	)
	billboardSvc := billboardsService.NewService(billboardRepository, policy, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		billboardRepository,
		txMgr,
		createBookingUC.Options{
			PriceMode:           cfg.Pricing.ClientPriceMode,
			EnforceSlotCapacity: cfg.Pricing.EnforceSlotCapacity,
			Policy:              policy,
			Location:            location,
		},
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		billboardRepository,
		location,
		log,
	)
	estimatePriceUseCase := estimatePriceUC.NewUseCase(billboardRepository, policy, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	estimatePrice := estimatePriceHandler.NewHandler(estimatePriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getBillboardPricing := getBillboardPricingHandler.NewHandler(billboardSvc, log)
	updateBillboardPricing := updateBillboardPricingHandler.NewHandler(billboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, 10*time.Minute)
		go limiter.Cleanup(time.Minute, stopCh)
		public.Use(limiter.Limit)
		log.Info("Rate limit enabled for public routes (rps=%.1f, burst=%d)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Занятость слотов щита на дату
	public.HandleFunc("/billboards/{billboardId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Оценка цены размещения
	public.HandleFunc("/billboards/{billboardId}/price-estimate", estimatePrice.Handle).Methods(http.MethodGet)

	// Цены слотов щита
	public.HandleFunc("/billboards/{billboardId}/pricing", getBillboardPricing.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление щитом (для владельца) ---
	protected.HandleFunc("/billboards/{billboardId}/pricing", updateBillboardPricing.Handle).Methods(http.MethodPut)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)
	admin.Use(middleware.AdminOnly)

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderUserID, middleware.HeaderUserRole},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик пула и очистку лимитера
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
