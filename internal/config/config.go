// Package config loads the curvelab configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Log configures the optional rotated log file.
	Log struct {
		// File is the log file path. Empty logs to stderr only.
		File       string `env:"LOG_FILE"         env-default:""    yaml:"file"`
		MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB"  env-default:"100" yaml:"maxSizeMB"`
		MaxBackups int    `env:"LOG_MAX_BACKUPS"  env-default:"5"   yaml:"maxBackups"`
		MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" env-default:"28"  yaml:"maxAgeDays"`
	} `yaml:"log"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigin is returned in Access-Control-Allow-Origin.
		AllowedOrigin string `env:"HTTP_ALLOWED_ORIGIN" env-default:"*" yaml:"allowedOrigin"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username string `env:"DATABASE_USERNAME" env-default:"curvelab" yaml:"username"`
		Password string `env:"DATABASE_PASSWORD" env-default:"curvelab" yaml:"password"`
		Host     string `env:"DATABASE_HOST"     env-default:"localhost" yaml:"host"`
		Port     int    `env:"DATABASE_PORT"     env-default:"5432"     yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode      string `env:"DATABASE_SSL_MODE" env-default:"disable"  yaml:"sslMode"`
		DatabaseName string `env:"DATABASE_NAME"     env-default:"curvelab" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used to issue and verify bearer tokens.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY"  yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Engine holds the numerical defaults of curve rendering.
	Engine struct {
		// SamplePoints is the frontier sample count used when a request omits it.
		SamplePoints int `env:"ENGINE_SAMPLE_POINTS" env-default:"50" yaml:"samplePoints"`
		// MaxSamplePoints caps any caller-provided sample count.
		MaxSamplePoints int `env:"ENGINE_MAX_SAMPLE_POINTS" env-default:"2000" yaml:"maxSamplePoints"`
		// Tolerance is the on-boundary classification distance.
		Tolerance float64 `env:"ENGINE_TOLERANCE" env-default:"2" yaml:"tolerance"`
		// TangentPoints is the number of points of a rendered tangent segment.
		TangentPoints int `env:"ENGINE_TANGENT_POINTS" env-default:"200" yaml:"tangentPoints"`
		// TangentSpanRatio is the tangent half-span as a fraction of the global x range.
		TangentSpanRatio float64 `env:"ENGINE_TANGENT_SPAN_RATIO" env-default:"0.2" yaml:"tangentSpanRatio"`
		// CacheTTL is how long sampled frontiers are memoized. Zero keeps them forever.
		CacheTTL time.Duration `env:"ENGINE_CACHE_TTL" env-default:"10m" yaml:"cacheTTL"`
		// Precision is the number of decimals used when printing values.
		Precision int32 `env:"ENGINE_PRECISION" env-default:"2" yaml:"precision"`
		// ScatterSeed and ScatterPoints drive the reproducible sample scatter.
		ScatterSeed   int64 `env:"ENGINE_SCATTER_SEED"   env-default:"42" yaml:"scatterSeed"`
		ScatterPoints int   `env:"ENGINE_SCATTER_POINTS" env-default:"30" yaml:"scatterPoints"`
	} `yaml:"engine"`

	// Bounds are the slider maxima; they also define the global axis box.
	Bounds struct {
		MaxResource    float64 `env:"BOUNDS_MAX_RESOURCE"     env-default:"40" yaml:"maxResource"`
		MaxEfficiencyX float64 `env:"BOUNDS_MAX_EFFICIENCY_X" env-default:"20" yaml:"maxEfficiencyX"`
		MaxEfficiencyY float64 `env:"BOUNDS_MAX_EFFICIENCY_Y" env-default:"20" yaml:"maxEfficiencyY"`
	} `yaml:"bounds"`

	// Market holds the supply/demand rendering defaults.
	Market struct {
		QuantityMax  float64 `env:"MARKET_QUANTITY_MAX"   env-default:"10"  yaml:"quantityMax"`
		SamplePoints int     `env:"MARKET_SAMPLE_POINTS" env-default:"100" yaml:"samplePoints"`
		// AllowNegativeEquilibrium accepts markets whose demand intercept is below
		// the supply intercept. Such markets clear at a negative quantity and are
		// rejected by default.
		AllowNegativeEquilibrium bool `env:"MARKET_ALLOW_NEGATIVE_EQUILIBRIUM" yaml:"allowNegativeEquilibrium"`
	} `yaml:"market"`

	// Worker configures the background render workers.
	Worker struct {
		MaxWorkers  int `env:"WORKER_MAX_WORKERS"  env-default:"20" yaml:"maxWorkers"`
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"3"  yaml:"maxAttempts"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
