// Package config provides configuration utilities for the application.
// Settings are read through viper so flags, environment, and the config
// file all feed the same keys.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Viper keys and their defaults.
const (
	KeyLogLevel     = "logging.level"
	KeyLogFormat    = "logging.format"
	KeyLookupDelay  = "simulation.lookup_delay"
	KeyCaptureDelay = "simulation.capture_delay"
	KeyAuthDelay    = "simulation.auth_delay"
	KeyListenAddr   = "gateway.listen_addr"
	KeyUpstreamURL  = "gateway.upstream_url"
	KeyCurrency     = "transfer.currency"
)

// SetDefaults registers the default values. Call once at startup before
// any accessor.
func SetDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "console")
	viper.SetDefault(KeyLookupDelay, 1500*time.Millisecond)
	viper.SetDefault(KeyCaptureDelay, 2000*time.Millisecond)
	viper.SetDefault(KeyAuthDelay, 1500*time.Millisecond)
	viper.SetDefault(KeyListenAddr, ":8080")
	viper.SetDefault(KeyUpstreamURL, "")
	viper.SetDefault(KeyCurrency, "USD")
}

// LookupDelay is the simulated account lookup latency.
func LookupDelay() time.Duration { return viper.GetDuration(KeyLookupDelay) }

// CaptureDelay is the simulated payment settlement latency.
func CaptureDelay() time.Duration { return viper.GetDuration(KeyCaptureDelay) }

// AuthDelay is the simulated sign-in/sign-up latency.
func AuthDelay() time.Duration { return viper.GetDuration(KeyAuthDelay) }

// ListenAddr is the gateway server's bind address.
func ListenAddr() string { return viper.GetString(KeyListenAddr) }

// UpstreamURL overrides the AI gateway upstream; empty uses the default.
func UpstreamURL() string { return viper.GetString(KeyUpstreamURL) }

// Currency is the send currency for new transfers.
func Currency() string { return viper.GetString(KeyCurrency) }
