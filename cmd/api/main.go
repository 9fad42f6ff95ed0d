package main

// @title Winery Map API
// @version 1.0.0
// @description Карта виноделен региона. Загружает записи из внешнего хранилища один раз за сессию,
// @description нормализует их в GeoJSON и выбирает поверхность для выбранной винодельни по ширине окна.
// @description
// @description Основные возможности:
// @description - Страница карты с серверным рендерингом
// @description - Коллекция виноделен в формате GeoJSON
// @description - Выбор винодельни через адресную строку (?winery=<id>)

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	_ "github.com/winery-map/docs"
	"github.com/winery-map/internal/config"
	httpDelivery "github.com/winery-map/internal/delivery/http"
	"github.com/winery-map/internal/delivery/http/handler"
	"github.com/winery-map/internal/domain"
	"github.com/winery-map/internal/infrastructure/payload"
	"github.com/winery-map/internal/metrics"
	"github.com/winery-map/internal/pkg/logger"
	"github.com/winery-map/internal/usecase"
	"github.com/winery-map/internal/worker"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Winery Map")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("records_url", cfg.GetRecordsURL()),
		zap.String("wide_surface", cfg.Presentation.WideMode),
	)
	if cfg.Mapbox.AccessToken == "" {
		log.Warn("MAPBOX_ACCESS_TOKEN is empty, the map will not render tiles")
	}

	// 3. Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(reg)

	// 4. Record store client
	recordRepo := payload.NewClient(cfg, log)

	// 5. Data session: одна загрузка на процесс, в фоновом воркере
	directoryUC := usecase.NewDirectoryUseCase(
		recordRepo,
		usecase.NewNormalizer(),
		m,
		log,
		cfg.RecordStore.Limit,
	)

	workers := worker.NewManager(log, 5*time.Second)
	workers.Register(worker.NewLoaderWorker("directory-loader", directoryUC, log))
	if err := workers.Start(context.Background()); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	selectionUC := usecase.NewSelectionUseCase(
		directoryUC,
		m,
		log,
		cfg.Presentation.Breakpoint,
		domain.WideMode(cfg.Presentation.WideMode),
	)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	marker := domain.DefaultMarkerStyle()

	mapPageHandler, err := handler.NewMapPageHandler(cfg, directoryUC, selectionUC, marker, log)
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}
	wineryHandler := handler.NewWineryHandler(directoryUC, marker, log)
	selectionHandler := handler.NewSelectionHandler(selectionUC, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		reg,
		mapPageHandler,
		wineryHandler,
		selectionHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	if err := workers.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
