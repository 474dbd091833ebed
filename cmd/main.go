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

	attachIdentityProofHandler "github.com/avlpav/HRS-ReservationService/internal/api/handlers/attach_identity_proof"
	cancelStayBookingHandler "github.com/avlpav/HRS-ReservationService/internal/api/handlers/cancel_stay_booking"
	createServiceBookingHandler "github.com/avlpav/HRS-ReservationService/internal/api/handlers/create_service_booking"
	createStayBookingHandler "github.com/avlpav/HRS-ReservationService/internal/api/handlers/create_stay_booking"
	getGuestStaysHandler "github.com/avlpav/HRS-ReservationService/internal/api/handlers/get_guest_stays"
	getStayBookingHandler "github.com/avlpav/HRS-ReservationService/internal/api/handlers/get_stay_booking"
	updateIdentityVerificationHandler "github.com/avlpav/HRS-ReservationService/internal/api/handlers/update_identity_verification"
	updatePaymentStatusHandler "github.com/avlpav/HRS-ReservationService/internal/api/handlers/update_payment_status"
	updateServiceStatusHandler "github.com/avlpav/HRS-ReservationService/internal/api/handlers/update_service_status"
	updateStayStatusHandler "github.com/avlpav/HRS-ReservationService/internal/api/handlers/update_stay_status"
	"github.com/avlpav/HRS-ReservationService/internal/api/middleware"
	"github.com/avlpav/HRS-ReservationService/internal/config"
	hotelServiceRepo "github.com/avlpav/HRS-ReservationService/internal/infra/storage/hotelservice"
	serviceBookingRepo "github.com/avlpav/HRS-ReservationService/internal/infra/storage/servicebooking"
	stayBookingRepo "github.com/avlpav/HRS-ReservationService/internal/infra/storage/staybooking"
	paymentGatewayClient "github.com/avlpav/HRS-ReservationService/internal/integrations/paymentgateway"
	serviceBookingsService "github.com/avlpav/HRS-ReservationService/internal/service/servicebookings"
	stayBookingsService "github.com/avlpav/HRS-ReservationService/internal/service/staybookings"
	createServiceBookingUC "github.com/avlpav/HRS-ReservationService/internal/usecase/create_service_booking"
	createStayBookingUC "github.com/avlpav/HRS-ReservationService/internal/usecase/create_stay_booking"
	"github.com/avlpav/HRS-ReservationService/pkg/dbmetrics"
	"github.com/avlpav/HRS-ReservationService/pkg/logger"
	"github.com/avlpav/HRS-ReservationService/pkg/metrics"
	"github.com/avlpav/HRS-ReservationService/pkg/migrator"
	"github.com/avlpav/HRS-ReservationService/pkg/simpletxmanager"
	"github.com/avlpav/HRS-ReservationService/pkg/txmanager"
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

	log.Info("Starting HRS-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

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

	// Применяем миграции (если включены)
	if cfg.Migrations.Auto {
		m, err := migrator.New(db, cfg.Migrations.Path)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := m.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := m.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to get migration version: %v", err)
		}
		log.Info("Migrations applied, schema version: %d", version)
	}

	// Инициализируем клиента платёжного шлюза
	paymentClient := paymentGatewayClient.NewClient(
		cfg.PaymentGateway.URL,
		cfg.PaymentGateway.APIKey,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		log,
	)
	log.Info("Payment gateway client initialized (url=%s, timeout=%ds)",
		cfg.PaymentGateway.URL, cfg.PaymentGateway.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		stayRepository    *stayBookingRepo.Repository
		serviceRepository *serviceBookingRepo.Repository
		catalogRepository *hotelServiceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		stayRepository = stayBookingRepo.NewRepository(wrappedDB)
		serviceRepository = serviceBookingRepo.NewRepository(wrappedDB)
		catalogRepository = hotelServiceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		stayRepository = stayBookingRepo.NewRepository(db)
		serviceRepository = serviceBookingRepo.NewRepository(db)
		catalogRepository = hotelServiceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	staySvc := stayBookingsService.NewService(stayRepository, txMgr, log)
	serviceSvc := serviceBookingsService.NewService(serviceRepository, txMgr, log)

	// Инициализируем use cases
	createStayBookingUseCase := createStayBookingUC.NewUseCase(
		stayRepository,
		paymentClient,
		txMgr,
		log,
	)

	createServiceBookingUseCase := createServiceBookingUC.NewUseCase(
		serviceRepository,
		catalogRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createStayBooking := createStayBookingHandler.NewHandler(createStayBookingUseCase, log)
	getStayBooking := getStayBookingHandler.NewHandler(staySvc, log)
	getGuestStays := getGuestStaysHandler.NewHandler(staySvc, log)
	updateStayStatus := updateStayStatusHandler.NewHandler(staySvc, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(staySvc, log)
	updateIdentityVerification := updateIdentityVerificationHandler.NewHandler(staySvc, log)
	attachIdentityProof := attachIdentityProofHandler.NewHandler(staySvc, log)
	cancelStayBooking := cancelStayBookingHandler.NewHandler(staySvc, log)
	createServiceBooking := createServiceBookingHandler.NewHandler(createServiceBookingUseCase, log)
	updateServiceStatus := updateServiceStatusHandler.NewHandler(serviceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют X-User-ID header (аутентификация на gateway)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования проживания ---
	protected.HandleFunc("/stays", createStayBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/stays", getGuestStays.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stays/{bookingId}", getStayBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stays/{bookingId}/status", updateStayStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/stays/{bookingId}/payment", updatePaymentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/stays/{bookingId}/verification", updateIdentityVerification.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/stays/{bookingId}/identity-proof", attachIdentityProof.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/stays/{bookingId}/cancel", cancelStayBooking.Handle).Methods(http.MethodPatch)

	// --- Бронирования услуг отеля ---
	protected.HandleFunc("/service-bookings", createServiceBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/service-bookings/{bookingId}/status", updateServiceStatus.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
