package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "STOREFRONT"

type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// JWT settings for admin/vendor session tokens.
	JWTSecret string        `envconfig:"JWT_SECRET" default:"dev-secret"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"15m"`

	// MockLatency is the artificial delay applied to every mutating
	// store operation, standing in for a network backend.
	MockLatency time.Duration `envconfig:"MOCK_LATENCY" default:"1s"`

	// SessionFile is the single durable key: the signed-in admin
	// principal serialized as JSON.
	SessionFile string `envconfig:"SESSION_FILE" default:"admin_session.json"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"false"`
	MetricsToken   string `envconfig:"METRICS_TOKEN" default:""`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
