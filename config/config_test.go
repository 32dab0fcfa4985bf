package config_test

import (
	"testing"
	"time"

	cfg "github.com/Gunvolt24/supplier_orders/config"
)

// TestLoadWithPrefix_Defaults - проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("STOREFRONT_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// API
	if c.API.BaseURL != "http://localhost:8000" {
		t.Fatalf("API.BaseURL: want http://localhost:8000, got %q", c.API.BaseURL)
	}
	if c.API.Timeout != 0 {
		t.Fatalf("API.Timeout: want 0 (no timeout), got %v", c.API.Timeout)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 30*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 0 || c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP handler/graceful timeouts wrong: %+v", c.HTTP)
	}

	// Metrics
	if c.Metrics.Addr != "" {
		t.Fatalf("Metrics.Addr: want empty, got %q", c.Metrics.Addr)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "supplier-dashboard" || c.Tracing.Endpoint != "localhost:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Cache
	if c.Cache.TTL != 2*time.Minute {
		t.Fatalf("Cache.TTL: want 2m, got %v", c.Cache.TTL)
	}

	// Session
	if c.Session.Token != "" {
		t.Fatalf("Session.Token: want empty, got %q", c.Session.Token)
	}

	// Dashboard
	if c.Dashboard.PageSize != 20 || c.Dashboard.MaxPageSize != 100 {
		t.Fatalf("Dashboard defaults wrong: %+v", c.Dashboard)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "STOREFRONT_TEST_OVR"

	t.Setenv(p+"_API_BASE_URL", "https://shop.example.com/api")
	t.Setenv(p+"_API_TIMEOUT", "15s")

	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")

	t.Setenv(p+"_METRICS_ADDR", ":9998")

	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	t.Setenv(p+"_CACHE_TTL", "30s")
	t.Setenv(p+"_SESSION_TOKEN", "tok")
	t.Setenv(p+"_DASHBOARD_PAGE_SIZE", "50")
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.API.BaseURL != "https://shop.example.com/api" || c.API.Timeout != 15*time.Second {
		t.Fatalf("API overrides wrong: %+v", c.API)
	}
	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" || c.HTTP.HandlerTimeout != 4500*time.Millisecond {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.Metrics.Addr != ":9998" {
		t.Fatalf("Metrics.Addr override wrong: %q", c.Metrics.Addr)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Cache.TTL != 30*time.Second || c.Session.Token != "tok" || c.Dashboard.PageSize != 50 {
		t.Fatalf("Cache/Session/Dashboard overrides wrong: %+v %+v %+v", c.Cache, c.Session, c.Dashboard)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение - но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "STOREFRONT_TEST_BAD"
	t.Setenv(p+"_CACHE_TTL", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
