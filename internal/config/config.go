package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full application configuration: environment, HTTP server,
// database, authentication, tracker behavior, summaries, snapshots and
// shutdown.
type Config struct {
	// Environment selects the logger configuration (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP configures the API server
	HTTP struct {
		// Addr is the listen address
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout bounds reading an entire request including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout bounds reading the request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout bounds writing the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout bounds waiting for the next keep-alive request
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds handling a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes caps the parsed request header size
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath is where Prometheus metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database configures the PostgreSQL connection
	Database struct {
		// Username is the database user
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password authenticates Username
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the server port
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode is the connection SSL mode
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"tracker" yaml:"name"`
		// MaxOpenConnections caps the connection pool size
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections sets the idle pool size
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime bounds how long a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime bounds how long a connection may sit idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT contains the RS256 key material for API authentication
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used by the jwt subcommand to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used by the API to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
	} `yaml:"jwt"`

	// Tracker contains gateway tracking behavior settings
	Tracker struct {
		// RiskWindowDays is the number of days of slip tolerated before a gateway turns red
		RiskWindowDays int `env:"TRACKER_RISK_WINDOW_DAYS" env-default:"30" yaml:"riskWindowDays"`
		// ChecklistPath points at the master deliverables checklist CSV used to seed new projects
		ChecklistPath string `env:"TRACKER_CHECKLIST_PATH" env-default:"checklist.csv" yaml:"checklistPath"`
	} `yaml:"tracker"`

	// Summarizer contains settings for the optional language-model summary
	// provider; an empty APIKey keeps the locally composed summaries
	Summarizer struct {
		// Endpoint is the chat completions URL; empty selects the provider default
		Endpoint string `env:"SUMMARIZER_ENDPOINT" env-default:"" yaml:"endpoint"`
		// APIKey is the provider API key; empty disables the provider
		APIKey string `env:"SUMMARIZER_API_KEY" env-default:"" yaml:"apiKey"`
		// Model is the model identifier sent with every request
		Model string `env:"SUMMARIZER_MODEL" env-default:"gpt-4o-mini" yaml:"model"`
		// Timeout bounds each provider call
		Timeout time.Duration `env:"SUMMARIZER_TIMEOUT" env-default:"15s" yaml:"timeout"`
	} `yaml:"summarizer"`

	// Snapshot contains periodic state snapshot settings
	Snapshot struct {
		// Dir is the directory snapshot files are written to
		Dir string `env:"SNAPSHOT_DIR" env-default:"snapshots" yaml:"dir"`
		// Keep is the number of snapshot files retained before the oldest are pruned
		Keep int `env:"SNAPSHOT_KEEP" env-default:"30" yaml:"keep"`
		// Interval is the period between automatic snapshots
		Interval time.Duration `env:"SNAPSHOT_INTERVAL" env-default:"24h" yaml:"interval"`
	} `yaml:"snapshot"`

	// GracefulShutdownTimeout bounds waiting for in-flight requests during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml config file at configPath, applies env overrides and
// returns the result.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
