package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,          default=8080"`
	Env           string `env:"ENV,           default=development"`
	SessionSecret string `env:"SESSION_SECRET"`
	LogLevel      string `env:"LOG_LEVEL,     default=info"`

	DB    DBConfig
	Redis RedisConfig
	Mongo MongoConfig
}

type DBConfig struct {
	Host           string        `env:"DB_HOST,            default=localhost"`
	Port           string        `env:"DB_PORT,            default=3306"`
	User           string        `env:"DB_USER,            default=root"`
	Password       string        `env:"DB_PASSWORD"`
	Name           string        `env:"DB_NAME,            default=toko_sembako"`
	Charset        string        `env:"DB_CHARSET,         default=utf8mb4"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=toko_sembako_audit"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
