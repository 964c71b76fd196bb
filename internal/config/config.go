package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// outbound fetching, documentation search and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

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
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"toolserver" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT contains the RS256 key pair used to sign and verify API tokens
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used by the API to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// Fetcher contains settings for outbound page fetching done by tools
	Fetcher struct {
		// AllowedHosts lists hostnames exempt from outbound URL safety checks
		AllowedHosts []string `env:"FETCHER_ALLOWED_HOSTS" yaml:"allowedHosts"`
		// Timeout is the default per-request timeout for fetching a page
		Timeout time.Duration `env:"FETCHER_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// MaxContentSize caps the number of response bytes read from a fetched page
		MaxContentSize int64 `env:"FETCHER_MAX_CONTENT_SIZE" env-default:"10485760" yaml:"maxContentSize"`
		// MaxRedirects caps the number of redirects followed per request
		MaxRedirects int `env:"FETCHER_MAX_REDIRECTS" env-default:"5" yaml:"maxRedirects"`
		// UserAgent is sent with every outbound request
		UserAgent string `env:"FETCHER_USER_AGENT" env-default:"toolserver/1.0" yaml:"userAgent"`
	} `yaml:"fetcher"`

	// Docs contains settings for the documentation search index
	Docs struct {
		// ArchiveURL points to a zip archive of markdown documentation to index
		ArchiveURL string `env:"DOCS_ARCHIVE_URL" yaml:"archiveURL"`
		// DownloadTimeout bounds the archive download
		DownloadTimeout time.Duration `env:"DOCS_DOWNLOAD_TIMEOUT" env-default:"2m" yaml:"downloadTimeout"`
		// TopK is the number of results returned per search
		TopK int `env:"DOCS_TOP_K" env-default:"5" yaml:"topK"`
		// SnippetLength is the maximum number of characters included per result snippet
		SnippetLength int `env:"DOCS_SNIPPET_LENGTH" env-default:"1500" yaml:"snippetLength"`
	} `yaml:"docs"`

	// Todo contains settings for the to-do service
	Todo struct {
		// ReminderMaxAttempts is the maximum number of attempts for a due-date reminder job
		ReminderMaxAttempts int `env:"TODO_REMINDER_MAX_ATTEMPTS" env-default:"5" yaml:"reminderMaxAttempts"`
	} `yaml:"todo"`

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
