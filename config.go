package geopage

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/eringen/geopage/sitegen"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: GEOPAGE_LOG__LEVEL=debug sets log.level.
const EnvPrefix = "GEOPAGE_"

// AppConfig holds all configuration for a geopage server.
type AppConfig struct {
	Name        string `koanf:"name" yaml:"name"`               // Site name (default "GeoPage")
	URL         string `koanf:"url" yaml:"url"`                 // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description" yaml:"description"` // Used in RSS and meta tags

	Addr         string `koanf:"addr" yaml:"addr"`                   // Listen address (default ":3000")
	DatabasePath string `koanf:"database_path" yaml:"database_path"` // SQLite path (default "data/geopage.db")

	SessionSecret string `koanf:"session_secret" yaml:"session_secret"` // Required: cookie signing secret
	CookieSecure  bool   `koanf:"cookie_secure" yaml:"cookie_secure"`   // Set true for HTTPS

	GalleryLimit    int           `koanf:"gallery_limit" yaml:"gallery_limit"`         // Sites on the gallery page (default 50)
	GalleryCacheTTL time.Duration `koanf:"gallery_cache_ttl" yaml:"gallery_cache_ttl"` // Gallery cache TTL (default 1m)

	GuestbookRateLimit int `koanf:"guestbook_rate_limit" yaml:"guestbook_rate_limit"` // Signatures per IP per minute (default 5)
	CreateRateLimit    int `koanf:"create_rate_limit" yaml:"create_rate_limit"`       // Saves per IP per minute (default 10)

	Log LogConfig `koanf:"log" yaml:"log"`
}

// DefaultConfig returns an AppConfig with every default applied.
func DefaultConfig() AppConfig {
	var c AppConfig
	c.setDefaults()
	return c
}

func (c *AppConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "GeoPage"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Build your own totally rad 90s homepage."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/geopage.db"
	}
	if c.GalleryLimit <= 0 {
		c.GalleryLimit = 50
	}
	if c.GalleryCacheTTL <= 0 {
		c.GalleryCacheTTL = time.Minute
	}
	if c.GuestbookRateLimit <= 0 {
		c.GuestbookRateLimit = 5
	}
	if c.CreateRateLimit <= 0 {
		c.CreateRateLimit = 10
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Encoding == "" {
		c.Log.Encoding = "json"
	}
}

// Validate checks that the configuration can start a server.
func (c AppConfig) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("session_secret is required")
	}
	if len(c.SessionSecret) < 16 {
		return fmt.Errorf("session_secret must be at least 16 bytes")
	}
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	return nil
}

// LoadConfig reads configuration from defaults, then the YAML file at path
// (skipped when path is empty or missing), then GEOPAGE_* environment
// variables.
func LoadConfig(path string) (AppConfig, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return AppConfig{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return AppConfig{}, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return AppConfig{}, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStore uses s instead of opening the SQLite database from the config.
// The caller keeps ownership of s.
func WithStore(s SiteStore) Option {
	return func(a *App) {
		a.Store = s
	}
}

// WithLogger sets the structured logger (default: zap.NewNop).
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Log = l
	}
}

// WithGenerator replaces the site generator, mostly for deterministic tests.
func WithGenerator(g *sitegen.Generator) Option {
	return func(a *App) {
		a.Generator = g
	}
}
