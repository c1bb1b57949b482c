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

	cancelBookingHandler "github.com/roltrader/autoperks/internal/api/handlers/cancel_booking"
	createBlockedTimeHandler "github.com/roltrader/autoperks/internal/api/handlers/create_blocked_time"
	createBookingHandler "github.com/roltrader/autoperks/internal/api/handlers/create_booking"
	createTechnicianHandler "github.com/roltrader/autoperks/internal/api/handlers/create_technician"
	deleteBlockedTimeHandler "github.com/roltrader/autoperks/internal/api/handlers/delete_blocked_time"
	deleteDateExceptionHandler "github.com/roltrader/autoperks/internal/api/handlers/delete_date_exception"
	deleteTechnicianHandler "github.com/roltrader/autoperks/internal/api/handlers/delete_technician"
	getAvailableSlotsHandler "github.com/roltrader/autoperks/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/roltrader/autoperks/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/roltrader/autoperks/internal/api/handlers/get_bookings"
	getServicesHandler "github.com/roltrader/autoperks/internal/api/handlers/get_services"
	listBlockedTimesHandler "github.com/roltrader/autoperks/internal/api/handlers/list_blocked_times"
	listDateExceptionsHandler "github.com/roltrader/autoperks/internal/api/handlers/list_date_exceptions"
	listTechniciansHandler "github.com/roltrader/autoperks/internal/api/handlers/list_technicians"
	loginHandler "github.com/roltrader/autoperks/internal/api/handlers/login"
	logoutHandler "github.com/roltrader/autoperks/internal/api/handlers/logout"
	setDateExceptionHandler "github.com/roltrader/autoperks/internal/api/handlers/set_date_exception"
	suggestSlotsHandler "github.com/roltrader/autoperks/internal/api/handlers/suggest_slots"
	updateBookingHandler "github.com/roltrader/autoperks/internal/api/handlers/update_booking"
	updateTechnicianHandler "github.com/roltrader/autoperks/internal/api/handlers/update_technician"
	"github.com/roltrader/autoperks/internal/api/middleware"
	"github.com/roltrader/autoperks/internal/config"
	blockedTimeRepo "github.com/roltrader/autoperks/internal/infra/storage/blockedtime"
	bookingRepo "github.com/roltrader/autoperks/internal/infra/storage/booking"
	serviceRepo "github.com/roltrader/autoperks/internal/infra/storage/service"
	technicianRepo "github.com/roltrader/autoperks/internal/infra/storage/technician"
	userRepo "github.com/roltrader/autoperks/internal/infra/storage/user"
	authService "github.com/roltrader/autoperks/internal/service/auth"
	"github.com/roltrader/autoperks/internal/service/availability"
	blockedTimesService "github.com/roltrader/autoperks/internal/service/blockedtimes"
	bookingsService "github.com/roltrader/autoperks/internal/service/bookings"
	catalogService "github.com/roltrader/autoperks/internal/service/catalog"
	techniciansService "github.com/roltrader/autoperks/internal/service/technicians"
	createBookingUC "github.com/roltrader/autoperks/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/roltrader/autoperks/internal/usecase/get_available_slots"
	suggestSlotsUC "github.com/roltrader/autoperks/internal/usecase/suggest_slots"
	"github.com/roltrader/autoperks/pkg/dbmetrics"
	"github.com/roltrader/autoperks/pkg/logger"
	"github.com/roltrader/autoperks/pkg/metrics"
	"github.com/roltrader/autoperks/pkg/simpletxmanager"
	"github.com/roltrader/autoperks/pkg/txmanager"
)

const sessionCleanupInterval = time.Hour

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

	log.Info("Starting AutoPerks booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		technicianRepository  *technicianRepo.Repository
		blockedTimeRepository *blockedTimeRepo.Repository
		serviceRepository     *serviceRepo.Repository
		userRepository        *userRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		technicianRepository = technicianRepo.NewRepository(wrappedDB)
		blockedTimeRepository = blockedTimeRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		technicianRepository = technicianRepo.NewRepository(db)
		blockedTimeRepository = blockedTimeRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &createBookingUC.RealTimeProvider{}

	// Единая точка истины для проверок доступности слотов
	checker := availability.NewChecker(technicianRepository, blockedTimeRepository, bookingRepository, log)

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		timeProvider,
		time.Duration(cfg.Auth.SessionTTLHours)*time.Hour,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	technicianSvc := techniciansService.NewService(technicianRepository, blockedTimeRepository, log)
	blockedTimeSvc := blockedTimesService.NewService(blockedTimeRepository, technicianRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		technicianRepository,
		serviceRepository,
		checker,
		txMgr,
		timeProvider,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		technicianRepository,
		serviceRepository,
		checker,
		log,
	)

	suggestSlotsUseCase := suggestSlotsUC.NewUseCase(
		technicianRepository,
		serviceRepository,
		checker,
		&suggestSlotsUC.RealTimeProvider{},
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	suggestSlots := suggestSlotsHandler.NewHandler(suggestSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listTechnicians := listTechniciansHandler.NewHandler(technicianSvc, log)
	createTechnician := createTechnicianHandler.NewHandler(technicianSvc, log)
	updateTechnician := updateTechnicianHandler.NewHandler(technicianSvc, log)
	deleteTechnician := deleteTechnicianHandler.NewHandler(technicianSvc, log)
	setDateException := setDateExceptionHandler.NewHandler(technicianSvc, log)
	listDateExceptions := listDateExceptionsHandler.NewHandler(technicianSvc, log)
	deleteDateException := deleteDateExceptionHandler.NewHandler(technicianSvc, log)
	createBlockedTime := createBlockedTimeHandler.NewHandler(blockedTimeSvc, log)
	listBlockedTimes := listBlockedTimesHandler.NewHandler(blockedTimeSvc, log)
	deleteBlockedTime := deleteBlockedTimeHandler.NewHandler(blockedTimeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Healthcheck
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/suggestions", suggestSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют роль admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin(log))

	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// --- Управление составом мастеров ---
	admin.HandleFunc("/technicians", listTechnicians.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/technicians", createTechnician.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/technicians/{technicianId}", updateTechnician.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/technicians/{technicianId}", deleteTechnician.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/technicians/{technicianId}/date-exceptions", setDateException.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/technicians/{technicianId}/date-exceptions", listDateExceptions.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/technicians/{technicianId}/date-exceptions/{date}", deleteDateException.Handle).Methods(http.MethodDelete)

	// --- Блокировки времени ---
	admin.HandleFunc("/blocked-times", createBlockedTime.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-times", listBlockedTimes.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-times/{blockedTimeId}", deleteBlockedTime.Handle).Methods(http.MethodDelete)

	// Фоновая чистка истёкших сессий
	stopCleanupCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := authSvc.CleanupExpiredSessions(context.Background()); err != nil {
					log.Error("Session cleanup failed: %v", err)
				}
			case <-stopCleanupCh:
				return
			}
		}
	}()

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

	close(stopCleanupCh)

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
