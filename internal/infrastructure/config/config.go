package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	UploadDir string        `env:"UPLOAD_DIR, default=uploads"`

	Mongo  MongoConfig
	Google GoogleConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=taskie"`
}

type GoogleConfig struct {
	UserInfoURL string        `env:"GOOGLE_USERINFO_URL, default=https://www.googleapis.com/oauth2/v3/userinfo"`
	Timeout     time.Duration `env:"GOOGLE_TIMEOUT,      default=5s"`
}

// insecureDefaultSecret is only acceptable outside production; Load rejects
// a production start without an explicit JWT_SECRET.
const insecureDefaultSecret = "testsecret"

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	return load(envconfig.OsLookuper())
}

func load(lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("config: JWT_SECRET is required when ENV=production")
		}
		cfg.JWTSecret = insecureDefaultSecret
	}

	return &cfg, nil
}
