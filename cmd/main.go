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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/velitt/Studio-BookingService/internal/api/handlers/create_booking"
	getMonthAvailabilityHandler "github.com/velitt/Studio-BookingService/internal/api/handlers/get_month_availability"
	getProfileHandler "github.com/velitt/Studio-BookingService/internal/api/handlers/get_profile"
	getScheduleHandler "github.com/velitt/Studio-BookingService/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/velitt/Studio-BookingService/internal/api/handlers/get_user_bookings"
	updateScheduleHandler "github.com/velitt/Studio-BookingService/internal/api/handlers/update_schedule"
	"github.com/velitt/Studio-BookingService/internal/api/middleware"
	"github.com/velitt/Studio-BookingService/internal/config"
	"github.com/velitt/Studio-BookingService/internal/identity"
	bookingRepo "github.com/velitt/Studio-BookingService/internal/infra/storage/booking"
	customerRepo "github.com/velitt/Studio-BookingService/internal/infra/storage/customer"
	scheduleRepo "github.com/velitt/Studio-BookingService/internal/infra/storage/schedule"
	lineAuthClient "github.com/velitt/Studio-BookingService/internal/integrations/lineauth"
	notifierClient "github.com/velitt/Studio-BookingService/internal/integrations/notifier"
	bookingsService "github.com/velitt/Studio-BookingService/internal/service/bookings"
	customersService "github.com/velitt/Studio-BookingService/internal/service/customers"
	scheduleService "github.com/velitt/Studio-BookingService/internal/service/schedule"
	createBookingUC "github.com/velitt/Studio-BookingService/internal/usecase/create_booking"
	getMonthAvailabilityUC "github.com/velitt/Studio-BookingService/internal/usecase/get_month_availability"
	"github.com/velitt/Studio-BookingService/pkg/dbmetrics"
	"github.com/velitt/Studio-BookingService/pkg/logger"
	"github.com/velitt/Studio-BookingService/pkg/metrics"
	"github.com/velitt/Studio-BookingService/pkg/simpletxmanager"
	"github.com/velitt/Studio-BookingService/pkg/txmanager"
)

func main() {
	// Подгружаем .env (если есть) до чтения конфига: пароль БД приходит из окружения
	_ = godotenv.Load()

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

	log.Info("Starting Studio-BookingService...")
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

	// Инициализируем интеграционных клиентов
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Notifier client initialized (url=%s timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)

	var tokenVerifier identity.TokenVerifier
	if cfg.LineAuth.Enabled {
		tokenVerifier = lineAuthClient.NewClient(
			cfg.LineAuth.URL,
			time.Duration(cfg.LineAuth.Timeout)*time.Second,
			log,
		)
		log.Info("LINE auth client initialized (url=%s timeout=%ds)", cfg.LineAuth.URL, cfg.LineAuth.Timeout)
	} else {
		log.Warn("LINE auth disabled: bearer tokens will not be verified")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		customerRepository *customerRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	customersSvc := customersService.NewService(customerRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, log)

	// Инициализируем use cases
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		cfg.Booking.LeadHours,
		cfg.Booking.NextMonthVisibleFromDay,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		customerRepository,
		bookingRepository,
		scheduleRepository,
		notifier,
		txMgr,
		cfg.Booking.LeadHours,
		cfg.Booking.NextMonthVisibleFromDay,
		log,
	)

	// Инициализируем handlers
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getProfile := getProfileHandler.NewHandler(customersSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Цепочка установления личности: LINE token > header > query > guest
	resolver := identity.NewDefaultResolver(tokenVerifier, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (личность опциональна)
	// ============================================================

	// Сетка доступности на месяц
	api.HandleFunc("/availability", getMonthAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (личность устанавливается цепочкой провайдеров)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Identity(resolver))

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Профиль клиента для формы бронирования
	protected.HandleFunc("/me", getProfile.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для владельца студии) ---
	// Сконфигурированные слоты месяца
	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Замена слотов даты
	protected.HandleFunc("/schedule/{date}", updateSchedule.Handle).Methods(http.MethodPut)

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
