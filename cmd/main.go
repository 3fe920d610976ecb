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

	cancelBookingHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/create_booking"
	createExpenseHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/create_expense"
	deleteBookingHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/delete_booking"
	deleteExpenseHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/delete_expense"
	exportDataHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/export_data"
	getAvailabilityHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/get_bookings"
	getCalendarHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/get_calendar"
	getExpensesHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/get_expenses"
	getStatsHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/get_stats"
	updateBookingHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/update_booking"
	updateExpenseHandler "github.com/halqallaf/villa-booking-service/internal/api/handlers/update_expense"
	"github.com/halqallaf/villa-booking-service/internal/api/middleware"
	"github.com/halqallaf/villa-booking-service/internal/config"
	bookingRepo "github.com/halqallaf/villa-booking-service/internal/infra/storage/booking"
	expenseRepo "github.com/halqallaf/villa-booking-service/internal/infra/storage/expense"
	bookingsService "github.com/halqallaf/villa-booking-service/internal/service/bookings"
	expensesService "github.com/halqallaf/villa-booking-service/internal/service/expenses"
	checkAvailabilityUC "github.com/halqallaf/villa-booking-service/internal/usecase/check_availability"
	createBookingUC "github.com/halqallaf/villa-booking-service/internal/usecase/create_booking"
	exportDataUC "github.com/halqallaf/villa-booking-service/internal/usecase/export_data"
	getCalendarUC "github.com/halqallaf/villa-booking-service/internal/usecase/get_calendar"
	getStatsUC "github.com/halqallaf/villa-booking-service/internal/usecase/get_stats"
	"github.com/halqallaf/villa-booking-service/pkg/logger"
	"github.com/halqallaf/villa-booking-service/pkg/metrics"
	"github.com/halqallaf/villa-booking-service/pkg/txmanager"
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

	log.Info("Starting villa-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории и менеджер транзакций
	bookingRepository := bookingRepo.NewRepository(db)
	expenseRepository := expenseRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	expenseSvc := expensesService.NewService(expenseRepository, log)

	// Инициализируем use cases.
	// createBookingUC принимает nil метрики, если сбор выключен.
	var creationMetrics createBookingUC.Metrics
	if metricsCollector != nil {
		creationMetrics = metricsCollector
	}

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		creationMetrics,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(bookingRepository, log)
	getStatsUseCase := getStatsUC.NewUseCase(bookingRepository, expenseRepository, log)
	exportDataUseCase := exportDataUC.NewUseCase(bookingRepository, expenseRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getStats := getStatsHandler.NewHandler(getStatsUseCase, log)
	createExpense := createExpenseHandler.NewHandler(expenseSvc, log)
	getExpenses := getExpensesHandler.NewHandler(expenseSvc, log)
	updateExpense := updateExpenseHandler.NewHandler(expenseSvc, log)
	deleteExpense := deleteExpenseHandler.NewHandler(expenseSvc, log)
	exportData := exportDataHandler.NewHandler(exportDataUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Проверка доступности слота
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Календарная сетка месяца
	api.HandleFunc("/calendar/{month}", getCalendar.Handle).Methods(http.MethodGet)

	// Статистика и экспорт
	api.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/export", exportData.Handle).Methods(http.MethodGet)

	// --- Расходы ---
	api.HandleFunc("/expenses", createExpense.Handle).Methods(http.MethodPost)
	api.HandleFunc("/expenses", getExpenses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/expenses/{expenseId}", updateExpense.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/expenses/{expenseId}", deleteExpense.Handle).Methods(http.MethodDelete)

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
