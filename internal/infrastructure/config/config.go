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
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=1h"`

	// CORSOrigins is the allow-list of browser origins permitted to call the
	// API with credentials.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Database DatabaseConfig
	Redis    RedisConfig
	Admin    AdminSeedConfig
}

type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL, default=postgres://localhost:5432/customer_admin?sslmode=disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,    default=10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,    default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
}

// RedisConfig backs the optional token revocation denylist. An empty Addr
// disables revocation entirely.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// AdminSeedConfig provisions the bootstrap admin account at startup. Both
// fields empty means no seeding; accounts then come only from external tooling.
type AdminSeedConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
