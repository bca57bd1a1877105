package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every externally supplied parameter. Values come from
// the environment, optionally seeded from a .env file.
type Config struct {
	Env  string `env:"ENV" envDefault:"DEVELOPMENT"`
	Port string `env:"PORT" envDefault:"8080"`

	Mongo   Mongo   `envPrefix:"MONGO_"`
	Redis   Redis   `envPrefix:"REDIS_"`
	JWT     JWT     `envPrefix:"JWT_"`
	Storage Storage `envPrefix:"MINIO_"`
}

type Mongo struct {
	URI string `env:"URI" envDefault:"mongodb://localhost:27017"`
	DB  string `env:"DB" envDefault:"twitter"`
}

type Redis struct {
	Host string `env:"HOST" envDefault:"localhost:6379"`
	Pass string `env:"PASS"`
	DB   int    `env:"DB" envDefault:"0"`
}

type JWT struct {
	Secret        string        `env:"SECRET,required"`
	RefreshSecret string        `env:"REFRESH_SECRET,required"`
	Issuer        string        `env:"ISSUER" envDefault:"twitter-backend"`
	Expires       time.Duration `env:"EXPIRES" envDefault:"15m"`
	RefreshTTL    time.Duration `env:"REFRESH_EXPIRES" envDefault:"72h"`
}

type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"twitter-media"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

func (c Config) Production() bool {
	return c.Env == "PRODUCTION"
}

// Load reads .env when present, then parses the environment.
func Load() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return Config{}, fmt.Errorf("failed to load the env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
