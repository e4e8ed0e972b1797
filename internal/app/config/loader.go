package config

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// MustInitConfig loads the configuration from the given .env file when it
// exists and from environment variables otherwise. Environment variables
// always take precedence. It panics when the result does not unmarshal into
// Config.
func MustInitConfig(configFile string) Config {
	var (
		vpr = viper.New()
		cfg Config
	)

	vpr.SetDefault("SKYLINE_LOG_LEVEL", "info")
	vpr.SetDefault("SKYLINE_HTTP_PORT", 80)
	vpr.SetDefault("SKYLINE_HTTP_TIMEOUT", "30s")
	vpr.SetDefault("SKYLINE_INVENTORY_MANAGER_TIMEOUT", "10s")
	vpr.SetDefault("SKYLINE_PNR_DB_TIMEOUT", "10s")
	vpr.SetDefault("SKYLINE_IATA_AIRLINE_CODE", "SK")
	vpr.SetDefault("SKYLINE_ICAO_AIRLINE_CODE", "SKL")

	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Info("config file loaded successfully", slog.String("file", configFile))
	}

	bindEnv(vpr, reflect.TypeOf(cfg))

	if err := vpr.Unmarshal(&cfg); err != nil {
		slog.Error("cannot unmarshal config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// bindEnv walks the mapstructure tags of a config struct and binds every
// tagged environment variable, descending into squashed sections.
func bindEnv(vpr *viper.Viper, t reflect.Type) {
	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		name, rest, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")

		if strings.Contains(rest, "squash") && field.Type.Kind() == reflect.Struct {
			bindEnv(vpr, field.Type)

			continue
		}

		if name != "" && name != "-" {
			_ = vpr.BindEnv(name)
		}
	}
}
