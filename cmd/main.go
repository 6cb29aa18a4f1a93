package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createPickerHandler "github.com/kittyofheaven/kaizen-booking/internal/api/handlers/create_picker"
	getAvailableSlotsHandler "github.com/kittyofheaven/kaizen-booking/internal/api/handlers/get_available_slots"
	getDayOverviewHandler "github.com/kittyofheaven/kaizen-booking/internal/api/handlers/get_day_overview"
	getOccupancyBoardHandler "github.com/kittyofheaven/kaizen-booking/internal/api/handlers/get_occupancy_board"
	getPickerHandler "github.com/kittyofheaven/kaizen-booking/internal/api/handlers/get_picker"
	getWeekOverviewHandler "github.com/kittyofheaven/kaizen-booking/internal/api/handlers/get_week_overview"
	listResourcesHandler "github.com/kittyofheaven/kaizen-booking/internal/api/handlers/list_resources"
	selectSlotHandler "github.com/kittyofheaven/kaizen-booking/internal/api/handlers/select_slot"
	setPickerContextHandler "github.com/kittyofheaven/kaizen-booking/internal/api/handlers/set_picker_context"
	submitBookingHandler "github.com/kittyofheaven/kaizen-booking/internal/api/handlers/submit_booking"
	"github.com/kittyofheaven/kaizen-booking/internal/api/middleware"
	"github.com/kittyofheaven/kaizen-booking/internal/config"
	bookingServiceClient "github.com/kittyofheaven/kaizen-booking/internal/integrations/bookingservice"
	"github.com/kittyofheaven/kaizen-booking/internal/picker"
	"github.com/kittyofheaven/kaizen-booking/internal/session"
	catalogService "github.com/kittyofheaven/kaizen-booking/internal/service/catalog"
	overviewService "github.com/kittyofheaven/kaizen-booking/internal/service/overview"
	getAvailableSlotsUC "github.com/kittyofheaven/kaizen-booking/internal/usecase/get_available_slots"
	submitBookingUC "github.com/kittyofheaven/kaizen-booking/internal/usecase/submit_booking"
	"github.com/kittyofheaven/kaizen-booking/pkg/logger"
	"github.com/kittyofheaven/kaizen-booking/pkg/metrics"
	"github.com/kittyofheaven/kaizen-booking/pkg/upstreammetrics"
)

// noopFailOpen заглушка счётчика fail-open при выключенных метриках
type noopFailOpen struct{}

func (noopFailOpen) IncFailOpen(string) {}

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

	log.Info("Starting kaizen-booking gateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Источник bearer-токена жильца
	sessionProvider := session.New(cfg.Session, log)

	// HTTP клиент внешнего сервиса бронирований, при включённых метриках
	// обёрнутый сборщиком таймингов запросов
	var httpDoer bookingServiceClient.Doer = bookingServiceClient.NewDefaultHTTPClient(
		time.Duration(cfg.BookingService.Timeout) * time.Second,
	)
	if cfg.Metrics.Enabled {
		httpDoer = upstreammetrics.Wrap(httpDoer, metricsCollector)
	}

	bsClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		httpDoer,
		cfg.BookingService.RateLimitRPS,
		cfg.BookingService.RateLimitBurst,
		log,
	)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(bsClient, sessionProvider, log)
	overviewSvc := overviewService.NewService(bsClient, catalogSvc, sessionProvider, log)

	// Инициализируем use cases
	var failOpenMetrics getAvailableSlotsUC.Metrics = noopFailOpen{}
	if cfg.Metrics.Enabled {
		failOpenMetrics = metricsCollector
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bsClient,
		sessionProvider,
		failOpenMetrics,
		log,
	)

	submitBookingUseCase := submitBookingUC.NewUseCase(
		bsClient,
		sessionProvider,
		log,
	)

	// Реестр picker-сессий с janitor-ом простаивающих сессий
	var pickerMetrics picker.Metrics
	if cfg.Metrics.Enabled {
		pickerMetrics = metricsCollector
	}

	registry := picker.NewRegistry(
		getAvailableSlotsUseCase,
		submitBookingUseCase,
		time.Duration(cfg.Pickers.IdleTTLMinutes)*time.Minute,
		pickerMetrics,
		log,
	)

	stopJanitorCh := make(chan struct{})
	go registry.RunJanitor(time.Duration(cfg.Pickers.JanitorIntervalSeconds)*time.Second, stopJanitorCh)

	// Инициализируем handlers
	listResources := listResourcesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDayOverview := getDayOverviewHandler.NewHandler(overviewSvc, log)
	getWeekOverview := getWeekOverviewHandler.NewHandler(overviewSvc, log)
	getOccupancyBoard := getOccupancyBoardHandler.NewHandler(overviewSvc, log)
	createPicker := createPickerHandler.NewHandler(registry, log)
	getPicker := getPickerHandler.NewHandler(registry, log)
	setPickerContext := setPickerContextHandler.NewHandler(registry, log)
	selectSlot := selectSlotHandler.NewHandler(registry, log)
	submitBooking := submitBookingHandler.NewHandler(registry, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог и расписания ---
	// Доска текущей занятости машин (до {kind}-маршрутов, путь литеральный)
	api.HandleFunc("/resources/washing_machine/occupancy",
		getOccupancyBoard.Handle).Methods(http.MethodGet)

	// Список ресурсов типа объекта
	api.HandleFunc("/resources/{kind}", listResources.Handle).Methods(http.MethodGet)

	// Слитый список слотов ресурса на дату
	api.HandleFunc("/resources/{kind}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Дневной и недельный обзоры
	api.HandleFunc("/resources/{kind}/overview", getDayOverview.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{kind}/overview/week", getWeekOverview.Handle).Methods(http.MethodGet)

	// --- Picker-сессии ---
	// Создание сессии формы бронирования
	api.HandleFunc("/pickers", createPicker.Handle).Methods(http.MethodPost)

	// Текущее состояние сессии (форма опрашивает во время загрузки)
	api.HandleFunc("/pickers/{pickerId}", getPicker.Handle).Methods(http.MethodGet)

	// Закрытие формы
	api.HandleFunc("/pickers/{pickerId}", getPicker.HandleDelete).Methods(http.MethodDelete)

	// Смена даты и/или ресурса
	api.HandleFunc("/pickers/{pickerId}/context", setPickerContext.Handle).Methods(http.MethodPatch)

	// Выбор слота (повторный выбор снимает)
	api.HandleFunc("/pickers/{pickerId}/slot", selectSlot.Handle).Methods(http.MethodPost)

	// Отправка бронирования с полями формы
	api.HandleFunc("/pickers/{pickerId}/submit", submitBooking.Handle).Methods(http.MethodPost)

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

	// Останавливаем janitor picker-сессий
	close(stopJanitorCh)

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
