package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and cannot be guessed
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	DB         DBConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	Simulation SimulationConfig
	Notify     NotifyConfig
	SMTP       SMTPConfig
	Dashboard  DashboardConfig
	Seed       SeedConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
}

// Driver values: memory, sqlite, postgres, redis
type StoreConfig struct {
	Driver     string `envconfig:"STORE_DRIVER" default:"memory"`
	SQLitePath string `envconfig:"STORE_SQLITE_PATH" default:"careerlaunch.db"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"careerlaunch"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"careerlaunch"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	Addr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string `envconfig:"REDIS_PASSWORD"`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"careerlaunch:"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Artificial service latency. Off by default; the waits honour context cancellation.
type SimulationConfig struct {
	Enabled      bool          `envconfig:"SIM_LATENCY_ENABLED" default:"false"`
	ReadLatency  time.Duration `envconfig:"SIM_LATENCY_READ" default:"300ms"`
	WriteLatency time.Duration `envconfig:"SIM_LATENCY_WRITE" default:"600ms"`
}

type NotifyConfig struct {
	EmailTo              string        `envconfig:"NOTIFY_EMAIL_TO" default:"user@example.com"`
	SMSTo                string        `envconfig:"NOTIFY_SMS_TO" default:"+1234567890"`
	DeliveryTimeout      time.Duration `envconfig:"NOTIFY_DELIVERY_TIMEOUT" default:"10s"`
	DigestDailyInterval  time.Duration `envconfig:"NOTIFY_DIGEST_DAILY_INTERVAL" default:"24h"`
	DigestWeeklyInterval time.Duration `envconfig:"NOTIFY_DIGEST_WEEKLY_INTERVAL" default:"168h"`
	StatusNotifications  bool          `envconfig:"NOTIFY_ON_APPLICANT_STATUS" default:"true"`
}

// Email is delivered in dry-run mode (logged only) while Host is empty.
type SMTPConfig struct {
	Host          string `envconfig:"SMTP_HOST"`
	Port          int    `envconfig:"SMTP_PORT" default:"587"`
	User          string `envconfig:"SMTP_USER"`
	Password      string `envconfig:"SMTP_PASS"`
	From          string `envconfig:"SMTP_FROM" default:"CareerLaunch <no-reply@careerlaunch.local>"`
	SkipTLSVerify bool   `envconfig:"SMTP_SKIP_TLS_VERIFY" default:"false"`
}

type DashboardConfig struct {
	MetricsPollInterval time.Duration `envconfig:"DASHBOARD_METRICS_POLL_INTERVAL" default:"30s"`
}

type SeedConfig struct {
	SampleData bool `envconfig:"SEED_SAMPLE_DATA" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8889", // Test port
			RequestTimeout: 5 * time.Second,
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Notify: NotifyConfig{
			EmailTo:              "user@example.com",
			SMSTo:                "+1234567890",
			DeliveryTimeout:      time.Second,
			DigestDailyInterval:  24 * time.Hour,
			DigestWeeklyInterval: 7 * 24 * time.Hour,
			StatusNotifications:  true,
		},
		Dashboard: DashboardConfig{
			MetricsPollInterval: 30 * time.Second,
		},
	}
}
