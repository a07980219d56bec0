package main

import (
	"fmt"
	"time"

	"github.com/npillmayer/schuko/tracing"
)

// Config holds the settings of the server.
type Config struct {
	Addr       string  // listen address
	Rate       float64 // requests per second and client
	Burst      int     // request burst per client
	MaxUnits   int     // upper bound for the length of a request text
	TraceLevel string  // Debug, Info or Error
	// LimiterTTL is the idle time after which a client's rate limiter is dropped.
	LimiterTTL time.Duration
	MaxClients int // upper bound for the number of rate limiters kept
}

// DefaultConfig returns the configuration used for flags not set.
func DefaultConfig() Config {
	return Config{
		Addr:       ":8080",
		Rate:       20,
		Burst:      40,
		MaxUnits:   64 * 1024,
		TraceLevel: "Info",
		LimiterTTL: 10 * time.Minute,
		MaxClients: 100000,
	}
}

// setTraceLevel applies the configured trace level. Unknown level names are
// rejected by Validate and leave t unchanged.
func (cfg Config) setTraceLevel(t tracing.Trace) {
	switch cfg.TraceLevel {
	case "Debug":
		t.SetTraceLevel(tracing.LevelDebug)
	case "Info":
		t.SetTraceLevel(tracing.LevelInfo)
	case "Error":
		t.SetTraceLevel(tracing.LevelError)
	}
}

// Validate checks a configuration for values the server cannot run with.
func (cfg Config) Validate() error {
	if cfg.Addr == "" {
		return fmt.Errorf("listen address is empty")
	}
	if cfg.Rate <= 0 || cfg.Burst <= 0 {
		return fmt.Errorf("rate and burst must be > 0, are %g and %d", cfg.Rate, cfg.Burst)
	}
	if cfg.MaxUnits <= 0 {
		return fmt.Errorf("max-units must be > 0, is %d", cfg.MaxUnits)
	}
	if cfg.LimiterTTL <= 0 || cfg.MaxClients <= 0 {
		return fmt.Errorf("limiter-ttl and max-clients must be > 0, are %v and %d", cfg.LimiterTTL, cfg.MaxClients)
	}
	switch cfg.TraceLevel {
	case "Debug", "Info", "Error":
	default:
		return fmt.Errorf("invalid trace level: %s", cfg.TraceLevel)
	}
	return nil
}
