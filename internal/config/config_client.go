package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Token is the bearer token issued by the identity provider; the
	// client attaches it to every vault request.
	Token string `env:"TOKEN"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the vault server base URL used by the client.
	BaseURL string `env:"SERVER_URL"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the terminal vault client.
// It is populated from KEEPSAKE_*-prefixed environment variables; the client
// intentionally keeps no configuration files and no local storage.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp `envPrefix:"KEEPSAKE_"`
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter `envPrefix:"KEEPSAKE_"`
}

// GetClientConfig loads and validates the client configuration from the
// environment. BaseURL defaults to a local server; the token has no default
// and must be provided.
func GetClientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{}
	if err := parseEnv(clientCfg); err != nil {
		return nil, fmt.Errorf("error getting client configs: %w", err)
	}

	if clientCfg.Adapter.BaseURL == "" {
		clientCfg.Adapter.BaseURL = "http://localhost:8080"
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = 15 * time.Second
	}

	return clientCfg, clientCfg.validate()
}
