package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/muhammadheryan/table-booking/constant"
)

type Config struct {
	Environment string
	Server      ServerConfig
	AWS         AWSConfig
	Auth        AuthConfig
	Storage     StorageConfig
	Reservation ReservationConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type AWSConfig struct {
	Region string `validate:"required"`
	// EndpointURL points the SDK at a local emulator such as DynamoDB Local.
	EndpointURL string
}

type AuthConfig struct {
	UserPoolID string `validate:"required"`
	ClientID   string `validate:"required"`
	// AutoConfirmUsers confirms unconfirmed accounts on their first sign-in.
	AutoConfirmUsers bool
	// SuppressVerification creates users already confirmed, without sending
	// the pool's verification message.
	SuppressVerification bool
}

type StorageConfig struct {
	TablesTable       string `validate:"required"`
	ReservationsTable string `validate:"required"`
	// TableIDUnique rejects a table whose id is already stored.
	TableIDUnique bool
}

type ReservationConfig struct {
	LockTTL time.Duration `validate:"gt=0"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Load reads configuration from the environment. Values in a .env file in the
// working directory are loaded first and never override the process env.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		AWS: AWSConfig{
			Region:      getEnv("REGION", ""),
			EndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		},
		Auth: AuthConfig{
			UserPoolID:           getEnv("COGNITO_ID", ""),
			ClientID:             getEnv("CLIENT_ID", ""),
			AutoConfirmUsers:     getBool("AUTO_CONFIRM_USERS", true),
			SuppressVerification: getBool("SIGNUP_SUPPRESS_VERIFICATION", false),
		},
		Storage: StorageConfig{
			TablesTable:       getEnv("TABLES_TABLE", ""),
			ReservationsTable: getEnv("RESERVATIONS_TABLE", ""),
			TableIDUnique:     getBool("TABLE_ID_UNIQUE", false),
		},
		Reservation: ReservationConfig{
			LockTTL: getDuration("RESERVATION_LOCK_TTL", constant.DefaultReservationLockTTL),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", ""),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

// Validate reports the first missing or invalid required setting.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

func (c *Config) RabbitMQEnabled() bool {
	return c.RabbitMQ.Host != ""
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
