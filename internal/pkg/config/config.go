// Package config loads process settings from the environment. Anything that
// differs per deployment (port, database, secrets) is required; the rest has
// a default that works locally.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Redis     RedisConfig
	RabbitMQ  RabbitMQConfig
	Stripe    StripeConfig
	Booking   BookingConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

// DSN renders a postgres URL. Credentials are escaped so passwords with
// reserved characters survive.
func (c DBConfig) DSN() string {
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	q.Set("timezone", c.TimeZone)
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02T15:04:05.000Z07:00"`
}

type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"JWT_DURATION" default:"12h"`
}

// AdminConfig seeds the first operator at startup. Both fields empty skips it.
type AdminConfig struct {
	BootstrapEmail    string `envconfig:"ADMIN_BOOTSTRAP_EMAIL"`
	BootstrapPassword string `envconfig:"ADMIN_BOOTSTRAP_PASSWORD"`
}

func (c AdminConfig) Enabled() bool {
	return c.BootstrapEmail != "" && c.BootstrapPassword != ""
}

// RedisConfig configures the game catalog cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"REDIS_CACHE_TTL" default:"30s"`
	Prefix   string        `envconfig:"REDIS_CACHE_PREFIX" default:"rsvp"`
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// RabbitMQConfig configures the notification queue. An empty URL makes the
// API log notifications instead of publishing them.
type RabbitMQConfig struct {
	URL   string `envconfig:"RABBITMQ_URL"`
	Queue string `envconfig:"RABBITMQ_NOTIFICATION_QUEUE" default:"rsvp.notifications"`
}

func (c RabbitMQConfig) Enabled() bool { return c.URL != "" }

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	SuccessURL    string `envconfig:"STRIPE_SUCCESS_URL" default:"http://localhost:3000/booking/success?code={CODE}"`
	CancelURL     string `envconfig:"STRIPE_CANCEL_URL" default:"http://localhost:3000/booking/cancelled"`
	Currency      string `envconfig:"STRIPE_CURRENCY" default:"usd"`
	Mock          bool   `envconfig:"STRIPE_MOCK" default:"false"`
}

type BookingConfig struct {
	CodePrefix          string        `envconfig:"BOOKING_CODE_PREFIX" default:"PKP"`
	CodeLength          int           `envconfig:"BOOKING_CODE_LENGTH" default:"8"`
	RefundWindow        time.Duration `envconfig:"BOOKING_REFUND_WINDOW" default:"24h"`
	NotificationTimeout time.Duration `envconfig:"BOOKING_NOTIFICATION_TIMEOUT" default:"10s"`
	OperatorEmail       string        `envconfig:"BOOKING_OPERATOR_EMAIL" default:"ops@localhost"`
}

type TelemetryConfig struct {
	Enabled        bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName    string `envconfig:"OTEL_SERVICE_NAME" default:"pickup-rsvp"`
	ServiceVersion string `envconfig:"OTEL_SERVICE_VERSION" default:"dev"`
	Environment    string `envconfig:"OTEL_ENVIRONMENT" default:"local"`
	CollectorAddr  string `envconfig:"OTEL_COLLECTOR_ADDR" default:"localhost:4317"`
}

// LoadConfig reads an optional .env file, then the process environment, which
// wins over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate catches settings envconfig accepts but the booking flow cannot run with.
func (c Config) Validate() error {
	var problems []string
	if c.Booking.CodeLength < 6 || c.Booking.CodeLength > 16 {
		problems = append(problems, "BOOKING_CODE_LENGTH must be between 6 and 16")
	}
	if strings.ContainsAny(c.Booking.CodePrefix, "- ") {
		problems = append(problems, "BOOKING_CODE_PREFIX must not contain dashes or spaces")
	}
	if c.Booking.RefundWindow < 0 {
		problems = append(problems, "BOOKING_REFUND_WINDOW must not be negative")
	}
	if c.Booking.NotificationTimeout <= 0 {
		problems = append(problems, "BOOKING_NOTIFICATION_TIMEOUT must be positive")
	}
	if !c.Stripe.Mock && c.Stripe.WebhookSecret == "" {
		problems = append(problems, "STRIPE_WEBHOOK_SECRET is required unless STRIPE_MOCK is set")
	}
	if c.Redis.Enabled() && c.Redis.TTL <= 0 {
		problems = append(problems, "REDIS_CACHE_TTL must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// NewTestConfig is a complete config for tests: mock payments, no cache or
// queue, and quiet logs.
func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8889"},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "rsvp_test",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339},
		JWT: JWTConfig{Secret: "test-secret-key-for-jwt-signing", TTL: time.Hour},
		RabbitMQ: RabbitMQConfig{
			Queue: "rsvp.notifications.test",
		},
		Stripe: StripeConfig{
			WebhookSecret: "whsec_test",
			SuccessURL:    "http://localhost:3000/booking/success?code={CODE}",
			CancelURL:     "http://localhost:3000/booking/cancelled",
			Currency:      "usd",
			Mock:          true,
		},
		Booking: BookingConfig{
			CodePrefix:          "PKP",
			CodeLength:          8,
			RefundWindow:        24 * time.Hour,
			NotificationTimeout: time.Second,
			OperatorEmail:       "ops@example.com",
		},
		Telemetry: TelemetryConfig{ServiceName: "pickup-rsvp-test"},
	}
}
