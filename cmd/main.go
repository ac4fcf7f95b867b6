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

	cancelAppointmentHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/create_appointment"
	createServiceTypeHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/create_service_type"
	deleteServiceTypeHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/delete_service_type"
	exportAppointmentHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/export_appointment"
	getAppointmentHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/get_available_slots"
	getScheduleHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/get_schedule"
	listAppointmentsHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/list_appointments"
	listServiceTypesHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/list_service_types"
	replaceServiceTypesHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/replace_service_types"
	updateScheduleHandler "github.com/m04kA/HF-AvailabilityService/internal/api/handlers/update_schedule"
	"github.com/m04kA/HF-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/HF-AvailabilityService/internal/config"
	appointmentRepo "github.com/m04kA/HF-AvailabilityService/internal/infra/storage/appointment"
	configRepo "github.com/m04kA/HF-AvailabilityService/internal/infra/storage/config"
	appointmentsService "github.com/m04kA/HF-AvailabilityService/internal/service/appointments"
	configService "github.com/m04kA/HF-AvailabilityService/internal/service/config"
	createAppointmentUC "github.com/m04kA/HF-AvailabilityService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/HF-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/HF-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/HF-AvailabilityService/pkg/logger"
	"github.com/m04kA/HF-AvailabilityService/pkg/metrics"
	"github.com/m04kA/HF-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/HF-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting HF-AvailabilityService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		configRepository      *configRepo.Repository
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
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		log,
	)
	configSvc := configService.NewService(
		configRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		configRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		configRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	exportAppointment := exportAppointmentHandler.NewHandler(appointmentsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(configSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(configSvc, log)
	listServiceTypes := listServiceTypesHandler.NewHandler(configSvc, log)
	createServiceType := createServiceTypeHandler.NewHandler(configSvc, log)
	replaceServiceTypes := replaceServiceTypesHandler.NewHandler(configSvc, log)
	deleteServiceType := deleteServiceTypeHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	// Перечисление свободных слотов на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей (опционально за дату)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи (идемпотентная)
	api.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// Экспорт записи в iCalendar
	api.HandleFunc("/appointments/{appointmentId}/calendar", exportAppointment.Handle).Methods(http.MethodGet)

	// --- Конфигурация ---
	// Расписание работы
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// Каталог услуг
	api.HandleFunc("/service-types", listServiceTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/service-types", createServiceType.Handle).Methods(http.MethodPost)
	api.HandleFunc("/service-types", replaceServiceTypes.Handle).Methods(http.MethodPut)
	api.HandleFunc("/service-types/{serviceTypeId}", deleteServiceType.Handle).Methods(http.MethodDelete)

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
