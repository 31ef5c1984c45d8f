package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	RedisAddr     string `env:"REDIS_ADDR"`
	AMQPURL       string `env:"AMQP_URL"`

	JWTUserSecret string `env:"JWT_USER_SECRET"`
	AdminAPIKey   string `env:"ADMIN_API_KEY"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"        envDefault:"0"`

	TossBaseURL       string        `env:"TOSS_BASE_URL"       envDefault:"https://api.tosspayments.com"`
	TossSecretKey     string        `env:"TOSS_SECRET_KEY"`
	GatewayTimeout    time.Duration `env:"GATEWAY_TIMEOUT"     envDefault:"10s"`
	PendingPaymentTTL time.Duration `env:"PENDING_PAYMENT_TTL" envDefault:"30m"`
	ReaperSchedule    string        `env:"REAPER_SCHEDULE"     envDefault:"@every 1m"`
}

// LoadConfig собирает конфигурацию из .env файла (если есть), переменных окружения и флагов.
// Переменные окружения приоритетнее флагов.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}
	return load(flag.CommandLine, os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func load(flags *flag.FlagSet, args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if err := loadFlags(flags, args, &flagsConfig); err != nil {
		return nil, err
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("jwt user secret is not set")
	}
	return conf, nil
}

func loadFlags(flags *flag.FlagSet, args []string, flagConfig *Config) error {
	flags.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flags.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flags.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flags.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address for order locks, empty disables distributed locks")
	flags.StringVar(&flagConfig.AMQPURL, "q", "", "RabbitMQ URL for order events, empty writes events to log")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %s", err.Error())
	}
	return nil
}

// mergeConfig поля, для которых есть флаги, берутся из окружения либо из флагов. Остальные - из окружения.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.RedisAddr = defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr)
	conf.AMQPURL = defaultIfBlank(envConfig.AMQPURL, flagsConfig.AMQPURL)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
