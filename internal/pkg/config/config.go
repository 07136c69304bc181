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
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timezone, timeouts, etc.)
// - optional integrations (Redis, LINE Notify, RabbitMQ) are disabled when left empty
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	Reservation ReservationConfig
	Redis       RedisConfig
	Notify      NotifyConfig
	Hotel       HotelConfig
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
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Bangkok"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type ReservationConfig struct {
	// Upper bound on waiting for inventory row locks inside a reservation.
	LockTimeout    time.Duration `envconfig:"RESERVATION_LOCK_TIMEOUT" default:"3s"`
	IdempotencyTTL time.Duration `envconfig:"RESERVATION_IDEMPOTENCY_TTL" default:"24h"`
	MaxNights      int           `envconfig:"RESERVATION_MAX_NIGHTS" default:"60"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	RoomTypeTTL  time.Duration `envconfig:"REDIS_ROOM_TYPE_TTL" default:"5m"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"2s"`
	OpTimeout    time.Duration `envconfig:"REDIS_OP_TIMEOUT" default:"200ms"`
	KeyNamespace string        `envconfig:"REDIS_KEY_NAMESPACE" default:"hotel"`
}

type NotifyConfig struct {
	LineToken    string        `envconfig:"LINE_NOTIFY_TOKEN"`
	LineURL      string        `envconfig:"LINE_NOTIFY_URL" default:"https://notify-api.line.me/api/notify"`
	Timeout      time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`
	MaxInFlight  int           `envconfig:"NOTIFY_MAX_IN_FLIGHT" default:"8"`
	AMQPURL      string        `envconfig:"AMQP_URL"`
	BookingQueue string        `envconfig:"AMQP_BOOKING_QUEUE" default:"booking.created"`
}

type HotelConfig struct {
	Name string `envconfig:"HOTEL_NAME" default:"Hotel"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c NotifyConfig) LineEnabled() bool { return c.LineToken != "" }
func (c NotifyConfig) AMQPEnabled() bool { return c.AMQPURL != "" }
func (c RedisConfig) Enabled() bool      { return c.Addr != "" }

// LoadConfig reads an optional .env file before processing the environment;
// variables already set in the process take precedence.
func LoadConfig() (Config, error) {
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
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 40,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Bangkok",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		Reservation: ReservationConfig{
			LockTimeout:    2 * time.Second,
			IdempotencyTTL: time.Hour,
			MaxNights:      60,
		},
		Redis: RedisConfig{
			RoomTypeTTL:  time.Minute,
			DialTimeout:  2 * time.Second,
			OpTimeout:    500 * time.Millisecond,
			KeyNamespace: "test",
		},
		Notify: NotifyConfig{
			Timeout:      time.Second,
			MaxInFlight:  2,
			BookingQueue: "booking.created",
		},
		Hotel: HotelConfig{
			Name: "Test Hotel",
		},
	}
}
