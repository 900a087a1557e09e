// Package config loads the calendard daemon configuration.
//
// Values are merged in order: built-in defaults, the YAML config file,
// CALENDAR_ prefixed environment variables, then command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/blockberries/calendar/clock"
	"github.com/blockberries/calendar/server"
)

// NTP configures the optional NTP corrected clock.
type NTP struct {
	// Server is the NTP host, e.g. "pool.ntp.org". Empty uses the host clock.
	Server string `env:"SERVER" yaml:"server"`
	// SyncInterval is the time between offset refreshes.
	SyncInterval time.Duration `env:"SYNCINTERVAL" yaml:"syncInterval"`
}

// Config defines the daemon configuration.
type Config struct {
	// Listen is the gRPC listen address.
	Listen string `env:"LISTEN" yaml:"listen"`

	LogLevel      string `env:"LOGLEVEL" yaml:"logLevel"`
	LogColors     bool   `env:"LOGCOLORS" yaml:"logColors"`
	LogTimeFormat string `env:"LOGTIMEFORMAT" yaml:"logTimeFormat"`

	NTP NTP `envPrefix:"NTP_" yaml:"ntp"`

	// UTC makes Now answer with UTC dates.
	UTC bool `env:"UTC" yaml:"utc"`
	// Pattern is the strftime pattern used when a Format request has none.
	Pattern string `env:"PATTERN" yaml:"pattern"`

	path string
}

func defaults() Config {
	return Config{
		Listen:        ":9090",
		LogLevel:      "info",
		LogColors:     false,
		LogTimeFormat: time.RFC3339,
		NTP: NTP{
			SyncInterval: time.Minute * 10,
		},
	}
}

// Load merges defaults, the config file, the environment and args,
// which are the command line arguments without the program name.
// A missing config file is not an error.
func Load(args []string) (*Config, error) {
	fv, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := new(Config)
	*cfg = defaults()
	cfg.path = ConfigPath(fv.config)

	if data, err := os.ReadFile(cfg.path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", cfg.path, err)
		}
		log.Debug().Str("configPath", cfg.path).Msg("no config file, using defaults")
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", cfg.path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}
	fv.apply(cfg)

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	if cfg.NTP.SyncInterval <= 0 {
		return nil, fmt.Errorf("config: ntp sync interval must be positive, got %s", cfg.NTP.SyncInterval)
	}
	return cfg, nil
}

// ConfigPath returns config file path. A non-empty override wins over
// the environment.
func ConfigPath(override string) string {
	if override != "" {
		return override
	}
	configPath := os.Getenv(ConfigEnv)
	if configPath == "" {
		configPath = ConfigName
		if wd, err := os.Getwd(); err == nil {
			configPath = path.Join(wd, ConfigName)
		}
	}
	return configPath
}

// Path returns the config file path Load looked at.
func (cfg Config) Path() string { return cfg.path }

// Level parses LogLevel.
func (cfg Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("config: log level: %w", err)
	}
	return lvl, nil
}

// InitLogger replaces the global logger with a console logger honoring
// the log settings.
func (cfg Config) InitLogger() {
	lvl, err := cfg.Level()
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	w := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    !cfg.LogColors,
		TimeFormat: cfg.LogTimeFormat,
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(w).
		With().Timestamp().
		Logger()
}

// Clock returns the clock the calculator should read "now" from: an NTP
// clock when a server is configured, the host clock otherwise.
func (c NTP) Clock() clock.Clock {
	if c.Server == "" {
		return clock.System{}
	}
	return clock.NewNTP(c.Server, c.SyncInterval)
}

// ServerOptions returns the calculator options derived from cfg.
func (cfg Config) ServerOptions() []server.Option {
	return []server.Option{
		server.WithUTC(cfg.UTC),
		server.WithDefaultPattern(cfg.Pattern),
	}
}
