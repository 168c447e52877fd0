package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// TunnelConfig controls the optional ngrok tunnel
type TunnelConfig struct {
	Enabled      bool   `env:"NGROK_ENABLED"`
	AuthToken    string `env:"NGROK_AUTHTOKEN"`
	AuthTokenAlt string `env:"NGROK_AUTH_TOKEN"`
	Domain       string `env:"NGROK_DOMAIN"`
}

// Token returns the auth token, accepting both variable spellings
func (c TunnelConfig) Token() string {
	if c.AuthToken != "" {
		return c.AuthToken
	}
	return c.AuthTokenAlt
}

// LoadTunnelConfig reads the tunnel settings from the environment
func LoadTunnelConfig() (TunnelConfig, error) {
	var cfg TunnelConfig
	if err := env.Parse(&cfg); err != nil {
		return TunnelConfig{}, fmt.Errorf("parse tunnel env: %w", err)
	}
	return cfg, nil
}
