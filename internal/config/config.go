package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. The signing secret is deliberately
// required without a default so a deployment can never fall back to a
// well-known value.
type Config struct {
	Addr          string        `envconfig:"ADDR" default:":8080"`
	JWTSecret     string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL      time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	SegmenterAddr string        `envconfig:"SEGMENTER_ADDR" default:"segmenter:50051"`
	DatabaseDSN   string        `envconfig:"DATABASE_DSN"`
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	OCRLanguages  []string      `envconfig:"OCR_LANGUAGES"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
