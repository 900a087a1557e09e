package config

import (
	"errors"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

var (
	// EnvPrefix defines name prefix for environment variables, for
	// example CALENDAR_LISTEN=:9000
	EnvPrefix = "CALENDAR_"
	// ConfigEnv defines environment variable for config file path, overrides the ConfigName
	ConfigEnv = "CALENDAR_CONFIG"
	// ConfigName defines default filename for look in work directory if ConfigEnv is empty
	ConfigName = "calendar.yaml"
)

// flagValues holds the command line overrides. Empty means unset.
type flagValues struct {
	config   string
	listen   string
	logLevel string
}

func parseFlags(args []string) (flagValues, error) {
	var fv flagValues
	flags := pflag.NewFlagSet("calendard", pflag.ContinueOnError)
	flags.StringVar(&fv.config, "config", "",
		`config file path, overrides the `+ConfigEnv+` environment variable`)
	flags.StringVar(&fv.listen, "listen", "",
		`gRPC listen address, ":9090" by default`)
	flags.StringVar(&fv.logLevel, "log-level", "",
		`log level: trace, debug, info, warn or error`)
	if err := flags.Parse(args); err != nil {
		return flagValues{}, err
	}
	return fv, nil
}

func applyEnv(v ...interface{}) error {
	var ee []error
	for i := range v {
		if err := env.ParseWithOptions(v[i], env.Options{Prefix: EnvPrefix}); err != nil {
			ee = append(ee, err)
		}
	}
	if len(ee) > 0 {
		return errors.Join(ee...)
	}
	return nil
}

func (fv flagValues) apply(cfg *Config) {
	if fv.listen != "" {
		cfg.Listen = fv.listen
	}
	if fv.logLevel != "" {
		cfg.LogLevel = strings.ToLower(fv.logLevel)
	}
}
