package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchen/cmd"
	httpin "kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/kafkapub"
	"kitchen/internal/adapters/out/notify"
	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/productrepo"
	"kitchen/internal/adapters/out/rediscache"
	"kitchen/internal/adapters/out/wshub"
	"kitchen/internal/core/ports"
	"kitchen/internal/generated/servers"
	"kitchen/internal/jobs"
	"kitchen/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(configs)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	var catalog ports.ProductCatalog = productrepo.NewGormProductCatalog(gormDB)
	var jobManager *jobs.JobManager
	if configs.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     configs.RedisAddr,
			Password: configs.RedisPassword,
		})
		defer redisClient.Close()

		cached := rediscache.NewCachedProductCatalog(catalog, redisClient, configs.CatalogCacheTTL, logger)
		catalog = cached
		jobManager = jobs.NewJobManager(cached, configs.CatalogWarmupSchedule, logger)
	}

	hub := wshub.NewHub(logger)
	go hub.Run(ctx)

	sinks := []notify.Sink{{Name: "screens", Notifier: hub}}
	if brokers := kafkapub.ParseBrokers(configs.KafkaHost); len(brokers) > 0 {
		publisher := kafkapub.NewNotificationPublisher(brokers, configs.KafkaNotificationsTopic, logger)
		defer func() {
			if closeErr := publisher.Close(); closeErr != nil {
				logger.Error("failed to close kafka publisher", "error", closeErr)
			}
		}()
		sinks = append(sinks, notify.Sink{Name: "kafka", Notifier: publisher})
	}
	fanout := notify.NewFanout(appMetrics, sinks...)
	logger.Info("notification sinks configured", "sinks", fanout.Sinks())

	app := cmd.NewCompositionRoot(configs, gormDB, catalog, fanout, logger)

	if jobManager != nil {
		if err = jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(ctx, &app, configs.HTTPPort, hub, appMetrics, registry, logger)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(&productrepo.ProductDTO{}, &orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func startWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	port string,
	hub *wshub.Hub,
	appMetrics *metrics.Metrics,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) {
	if err := httpin.RegisterSwaggerDoc(); err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}

	createOrder := app.CreateCreateOrderCommandHandler()
	updateOrder := app.CreateUpdateOrderCommandHandler()
	advanceOrder := app.CreateAdvanceOrderStepCommandHandler()
	deleteOrder := app.CreateDeleteOrderCommandHandler()
	server := httpin.NewServer(
		&createOrder,
		&updateOrder,
		&advanceOrder,
		&deleteOrder,
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateOrderFormQueryHandler(),
		app.CreateListProductsQueryHandler(),
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(appMetrics.Middleware())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.Any("error", v.Error),
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(gatherer)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/ws/notifications", echo.WrapHandler(http.HandlerFunc(hub.ServeWS)))
	servers.RegisterHandlers(e, server)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down http server", "error", err)
	}
}
