package site

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/soulcreations/site/content"
)

// EnvPrefix prefixes every environment variable LoadConfig reads.
const EnvPrefix = "site"

// Config holds all host configuration.
type Config struct {
	URL         string `envconfig:"URL"`         // Canonical URL (default "http://localhost:3000")
	Description string `envconfig:"DESCRIPTION"` // Meta description; the tagline when empty

	Addr      string `envconfig:"ADDR"`       // Listen address (default ":3000")
	StaticDir string `envconfig:"STATIC_DIR"` // Compiled client and wasm_exec.js (default "public")

	LogLevel  string `envconfig:"LOG_LEVEL"`  // debug, info, warn, error (default "info")
	LogFormat string `envconfig:"LOG_FORMAT"` // json or console (default "json")

	RateLimit float64 `envconfig:"RATE_LIMIT"` // Requests per second per client IP (default 20)
	RateBurst int     `envconfig:"RATE_BURST"` // Burst per client IP (default 40)

	CacheTTL        time.Duration `envconfig:"CACHE_TTL"`        // Rendered shell lifetime (default 1h)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"` // Graceful shutdown bound (default 10s)
}

func (c *Config) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 20
	}
	if c.RateBurst <= 0 {
		c.RateBurst = 40
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = time.Hour
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// LoadConfig reads SITE_* variables from the environment. When envFile is
// set and exists, its values are loaded first without overriding variables
// already present.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("site: load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("site: env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs once, after the built-in routes.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides Config.StaticDir.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithTable serves t instead of the embedded content.
func WithTable(t *content.Table) Option {
	return func(a *App) {
		a.Table = t
	}
}

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}
