package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyRole    = key("role")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Logger     Logger
	Metrics    Metrics
	Kafka      Kafka
	Centrifuge Centrifuge
	Redis      Redis
	Platform   Platform
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"conversation-service"`
	Port string `env:"SERVICE_PORT" env-default:"8080"`
}

type Postgres struct {
	User     string `env:"CONVERSATION_SERVICE_POSTGRES_USER"`
	Password string `env:"CONVERSATION_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"CONVERSATION_SERVICE_POSTGRES_DB"`
	Host     string `env:"CONVERSATION_SERVICE_POSTGRES_HOST"`
	Port     string `env:"CONVERSATION_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST"`
	Port int    `env:"METRICS_PORT"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"KAFKA_USER_TOPIC" env-default:"user_updates"`
}

type Centrifuge struct {
	BaseURL     string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey      string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret   string        `env:"CENTRIFUGO_JWT_SECRET"`
	ProxySecret string        `env:"CENTRIFUGO_PROXY_SECRET"`
	Timeout     time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
	TokenTTL    time.Duration `env:"CENTRIFUGO_TOKEN_TTL" env-default:"1h"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env config: %v", err)
	}
	return cfg
}
