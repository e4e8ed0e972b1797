package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the configuration of both edge services. It is loaded once at
// process start and treated as read-only afterwards.
type Config struct {
	LogLevel LogLeveler `mapstructure:"SKYLINE_LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Flights  Flights    `mapstructure:",squash"`
	Login    Login      `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"SKYLINE_HTTP_PORT"`
	Timeout time.Duration `mapstructure:"SKYLINE_HTTP_TIMEOUT"`
}

// Flights configures the flights service. The airline codes identify the
// airline whose inventory is exposed; the IATA code prefixes service IDs in
// flight display names.
type Flights struct {
	InventoryManagerURL     string        `mapstructure:"SKYLINE_INVENTORY_MANAGER_URL"`
	InventoryManagerTimeout time.Duration `mapstructure:"SKYLINE_INVENTORY_MANAGER_TIMEOUT"`
	IATAAirlineCode         string        `mapstructure:"SKYLINE_IATA_AIRLINE_CODE"`
	ICAOAirlineCode         string        `mapstructure:"SKYLINE_ICAO_AIRLINE_CODE"`
}

// Login configures the login service.
type Login struct {
	PnrDBURL            string        `mapstructure:"SKYLINE_PNR_DB_URL"`
	PnrDBName           string        `mapstructure:"SKYLINE_PNR_DB_NAME"`
	PnrDBCollectionName string        `mapstructure:"SKYLINE_PNR_DB_COLLECTION_NAME"`
	PnrDBTimeout        time.Duration `mapstructure:"SKYLINE_PNR_DB_TIMEOUT"`
	AccessTokenSecret   string        `mapstructure:"SKYLINE_ACCESS_TOKEN_SECRET"`
}
