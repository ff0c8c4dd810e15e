// Package config loads dashboard settings from defaults, an optional
// config file, NEUROGUARD_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. NEUROGUARD_SERVER_PORT.
const EnvPrefix = "NEUROGUARD"

// Config is the resolved configuration.
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Log    LogConfig
	Page   PageConfig
}

// ServerConfig controls the HTTP host.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Address returns host:port for net.Listen.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DataConfig selects where the dashboard records come from. File wins
// over DB; with neither set the built-in dataset is used.
type DataConfig struct {
	File    string
	DB      string
	Dataset string
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// PageConfig holds page-shell settings.
type PageConfig struct {
	Title     string
	PlotlyURL string
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"host":       "server.host",
	"port":       "server.port",
	"data":       "data.file",
	"db":         "data.db",
	"dataset":    "data.dataset",
	"log-level":  "log.level",
	"log-format": "log.format",
	"plotly-url": "page.plotly_url",
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8501)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("data.file", "")
	v.SetDefault("data.db", "")
	v.SetDefault("data.dataset", "neuroguard")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("page.title", "NeuroGuard Timeline & Global Map")
	v.SetDefault("page.plotly_url", "https://cdn.plot.ly/plotly-2.35.2.min.js")
}

// BindFlags binds every known flag present in fs to its configuration key.
// Flags absent from fs are skipped, so each command registers only the
// flags it needs.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads configFile when given and resolves the configuration.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			IdleTimeout:     v.GetDuration("server.idle_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Data: DataConfig{
			File:    v.GetString("data.file"),
			DB:      v.GetString("data.db"),
			Dataset: v.GetString("data.dataset"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Page: PageConfig{
			Title:     v.GetString("page.title"),
			PlotlyURL: v.GetString("page.plotly_url"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d must be within 1-65535", c.Server.Port))
	}
	for key, d := range map[string]time.Duration{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.idle_timeout":     c.Server.IdleTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", key))
		}
	}
	if c.Data.DB != "" && strings.TrimSpace(c.Data.Dataset) == "" {
		errs = append(errs, errors.New("data.dataset is required when data.db is set"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q must be one of debug, info, warn, error", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be text or json", c.Log.Format))
	}
	return errors.Join(errs...)
}
