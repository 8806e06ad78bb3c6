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
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/create_booking"
	declareRecurringSlotsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/declare_recurring_slots"
	declareSlotHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/declare_slot"
	deleteBookingHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/delete_booking"
	getCalendarHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_calendar"
	getFacilitiesHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_facilities"
	getFreeWindowsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_free_windows"
	listBookingsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/list_bookings"
	listSlotsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/list_slots"
	revokeSlotHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/revoke_slot"
	updateBookingStatusHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/config"
	facilityCache "github.com/m04kA/SMC-FacilityBooking/internal/infra/cache/facility"
	bookingRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/slot"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/events"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-FacilityBooking/internal/jobs/slotjanitor"
	bookingsService "github.com/m04kA/SMC-FacilityBooking/internal/service/bookings"
	slotsService "github.com/m04kA/SMC-FacilityBooking/internal/service/slots"
	createBookingUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_booking"
	getCalendarUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_calendar"
	getFreeWindowsUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_free_windows"
	"github.com/m04kA/SMC-FacilityBooking/pkg/clock"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/metrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/txmanager"
)

// eventPublisher публикатор событий жизненного цикла (Kafka или no-op)
type eventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
	Close() error
}

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

	log.Info("Starting SMC-FacilityBooking...")

	// Часы сервиса: "сегодня" считается в часовом поясе объектов
	serviceClock, err := clock.New(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Метрики (nil, если выключены; все потребители это допускают)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.Wrap(db, metricsCollector)
	wrappedDB.StartPoolCollector(cfg.Database.DBName, time.Duration(cfg.Metrics.PoolInterval)*time.Second, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	slotRepository := slotRepo.NewRepository(wrappedDB)

	// Справочник объектов, опционально с кэшем в Redis
	var facilities facilityservice.Directory = facilityservice.NewClient(
		cfg.FacilityService.URL,
		time.Duration(cfg.FacilityService.Timeout)*time.Second,
		log,
	)
	log.Info("Facility directory client initialized (url=%s timeout=%ds)", cfg.FacilityService.URL, cfg.FacilityService.Timeout)

	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			// Без кэша сервис работает, просто каждый запрос идет в справочник
			log.Warn("Redis is unavailable at %s: %v", cfg.Cache.Addr, err)
		}
		cache := facilityCache.New(redisClient, time.Duration(cfg.Cache.TTL)*time.Second)
		facilities = facilityservice.NewCachedDirectory(facilities, cache, log)
		log.Info("Facility cache enabled (addr=%s ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// События жизненного цикла
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		publisher = events.NewKafkaPublisher(
			cfg.Events.Brokers,
			cfg.Events.Topic,
			time.Duration(cfg.Events.WriteTimeout)*time.Second,
		)
		log.Info("Kafka publisher enabled (brokers=%v topic=%s)", cfg.Events.Brokers, cfg.Events.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, publisher, metricsCollector, log)
	slotSvc := slotsService.NewService(slotRepository, facilities, serviceClock, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		facilities,
		txMgr,
		publisher,
		metricsCollector,
		serviceClock,
		log,
	)
	getFreeWindowsUseCase := getFreeWindowsUC.NewUseCase(bookingRepository, slotRepository, txMgr, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(bookingRepository, slotRepository, txMgr, serviceClock, log)

	// Фоновая очистка устаревших окон
	var janitor *slotjanitor.Janitor
	if cfg.Janitor.Enabled {
		janitor = slotjanitor.New(
			slotRepository,
			serviceClock,
			cfg.Janitor.RetentionDays,
			time.Duration(cfg.Janitor.Timeout)*time.Second,
			log,
		)
		if err := janitor.Start(cfg.Janitor.Schedule); err != nil {
			log.Fatal("Failed to start slot janitor: %v", err)
		}
	}

	// Handlers
	getFacilities := getFacilitiesHandler.NewHandler(facilities, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotSvc, log)
	declareSlot := declareSlotHandler.NewHandler(slotSvc, log)
	declareRecurringSlots := declareRecurringSlotsHandler.NewHandler(slotSvc, log)
	revokeSlot := revokeSlotHandler.NewHandler(slotSvc, log)
	getFreeWindows := getFreeWindowsHandler.NewHandler(getFreeWindowsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// ============================================================
	// PUBLIC ROUTES (чтение)
	// ============================================================

	r.HandleFunc("/facilities/", getFacilities.Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/", listBookings.Handle).Methods(http.MethodGet)
	r.HandleFunc("/available-slots/", listSlots.Handle).Methods(http.MethodGet)
	r.HandleFunc("/free-windows/", getFreeWindows.Handle).Methods(http.MethodGet)
	r.HandleFunc("/calendar/", getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/check/", createBooking.HandleCheck).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id:[0-9]+}/", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{id:[0-9]+}/", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Окна доступности (администратор) ---
	protected.HandleFunc("/available-slots/", declareSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/available-slots/recurring/", declareRecurringSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/available-slots/{id:[0-9]+}/", revokeSlot.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if janitor != nil {
		janitor.Stop()
	}

	close(stopMetricsCh)

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
