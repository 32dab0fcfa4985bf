package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultPrefix - префикс переменных окружения (STOREFRONT_API_BASE_URL и т.д.).
const DefaultPrefix = "STOREFRONT"

// API - бэкенд витрины.
type API struct {
	BaseURL string `default:"http://localhost:8000" envconfig:"BASE_URL"`
	// Timeout на запрос к бэкенду; 0 - без таймаута.
	Timeout time.Duration `default:"0s" envconfig:"TIMEOUT"`
}

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"30s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"0s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

// Metrics - отдельный listener для /metrics; пусто - только на основном роутере.
type Metrics struct {
	Addr string `default:"" envconfig:"ADDR"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"supplier-dashboard" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"localhost:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Cache struct {
	TTL time.Duration `default:"2m" envconfig:"TTL"`
}

// Session - токен, с которым процесс стартует (например, для CLI).
type Session struct {
	Token string `envconfig:"TOKEN"`
}

type Dashboard struct {
	PageSize    int `default:"20" envconfig:"PAGE_SIZE"`
	MaxPageSize int `default:"100" envconfig:"MAX_PAGE_SIZE"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	API       API
	HTTP      HTTP
	Metrics   Metrics
	Tracing   Tracing
	Cache     Cache
	Session   Session
	Dashboard Dashboard
	Logger    Logger
}

// Load читает конфигурацию с префиксом STOREFRONT.
func Load() (Config, error) {
	return LoadWithPrefix(DefaultPrefix)
}

// LoadWithPrefix читает конфигурацию с произвольным префиксом (нужно тестам).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
