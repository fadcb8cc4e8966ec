package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server (e.g. "http://localhost:8080").
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// Token is the access token sent with authenticated requests.
	// Env: CLIENT_TOKEN
	Token string `env:"CLIENT_TOKEN"`
}

// GetClientConfig loads the client configuration from an optional .env file
// and environment variables, fills defaults and validates the result.
// Command-line flags are applied by the caller via [ClientConfig.Override].
func GetClientConfig() (*ClientConfig, error) {
	if err := loadDotEnv(defaultDotEnvPath); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.applyDefaults()

	return cfg, cfg.validate()
}

// Override replaces the address, timeout and token with the non-zero values
// given, typically taken from command-line flags, and re-validates.
func (cfg *ClientConfig) Override(address string, timeout time.Duration, token string) error {
	if address != "" {
		cfg.Adapter.HTTPAddress = address
	}
	if timeout != 0 {
		cfg.Adapter.RequestTimeout = timeout
	}
	if token != "" {
		cfg.Token = token
	}

	return cfg.validate()
}
