package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/supplier_orders/config"
	"github.com/Gunvolt24/supplier_orders/internal/apiclient"
	cachemem "github.com/Gunvolt24/supplier_orders/internal/cache/memory"
	"github.com/Gunvolt24/supplier_orders/internal/ports"
	"github.com/Gunvolt24/supplier_orders/internal/session"
	rest "github.com/Gunvolt24/supplier_orders/internal/transport/http"
	"github.com/Gunvolt24/supplier_orders/internal/usecase"
	"github.com/Gunvolt24/supplier_orders/pkg/logger"
	"github.com/Gunvolt24/supplier_orders/pkg/metrics"
	"github.com/Gunvolt24/supplier_orders/pkg/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// cacheName - метка кэша ответов в метриках.
const cacheName = "supplier_orders"

// Services - доменный слой без HTTP-обвязки; его же использует CLI.
type Services struct {
	Logger   ports.Logger
	Sessions *session.Store
	Orders   *usecase.SupplierOrderService
}

// App - собранная панель и её внешние интерфейсы.
type App struct {
	Logger          ports.Logger  // логгер
	HTTPServer      *http.Server  // HTTP-сервер панели
	MetricsServer   *http.Server  // отдельный /metrics; nil, если не настроен
	gracefulTimeout time.Duration // время ожидания завершения серверов
}

// Cleanup - функция освобождения ресурсов.
type Cleanup func()

// applyGinMode - устанавливает режим Gin по строке;
// неизвестное значение - debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// BuildServices - логгер, метрики, трейсинг, сессия, клиент API, кэш и сервис.
func BuildServices(ctx context.Context, cfg *config.Config) (*Services, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию - no-op.
	shutdownTrace, err := telemetry.SetupTracing(ctx, telemetry.Options{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	tracing := cfg.Tracing.Enabled
	if err != nil {
		logg.Warnf(ctx, "failed to setup tracing: %v", err)
		shutdownTrace = func(context.Context) error { return nil }
		tracing = false
	} else if tracing {
		logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
			cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
	}

	client := apiclient.New(cfg.API.BaseURL,
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithTracing(tracing),
	)
	sessions := session.NewStore(cfg.Session.Token)
	cache := cachemem.NewTTLCache(cacheName, cfg.Cache.TTL)
	orders := usecase.NewSupplierOrderService(client, cache, sessions, logg)

	logg.Infof(ctx, "backend=%s cache_ttl=%s", cfg.API.BaseURL, cfg.Cache.TTL)

	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		_ = cleanupLogger() // Sync на stderr/stdout часто возвращает EINVAL
	}

	return &Services{Logger: logg, Sessions: sessions, Orders: orders}, cleanup, nil
}

// Bootstrap - собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	svc, cleanup, err := BuildServices(ctx, cfg)
	if err != nil {
		return nil, cleanup, err
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, svc.Logger)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	handler := rest.NewHandler(svc.Orders, svc.Sessions, svc.Logger, rest.Options{
		Timeout:     cfg.HTTP.HandlerTimeout,
		PageSize:    cfg.Dashboard.PageSize,
		MaxPageSize: cfg.Dashboard.MaxPageSize,
	})
	router := rest.NewRouter(handler, otelServiceName)

	app := &App{
		Logger: svc.Logger,
		HTTPServer: &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           router,
			ReadTimeout:       cfg.HTTP.ReadTimeout,
			WriteTimeout:      cfg.HTTP.WriteTimeout,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
			IdleTimeout:       cfg.HTTP.IdleTimeout,
		},
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		app.MetricsServer = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		}
	}

	return app, cleanup, nil
}

// Run - запускает серверы; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	servers := []*http.Server{a.HTTPServer}
	if a.MetricsServer != nil {
		servers = append(servers, a.MetricsServer)
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		srv := srv
		go func() {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case runErr = <-errCh:
		a.Logger.Errorf(ctx, "server failed: %v", runErr)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed addr=%s: %v", srv.Addr, err)
		} else {
			a.Logger.Infof(ctx, "http server stopped gracefully addr=%s", srv.Addr)
		}
	}

	a.Logger.Infof(ctx, "dashboard stopped")
	return runErr
}
