package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view used by the command-line API
// client, assembled from [StructuredConfig].
type ClientConfig struct {
	// BaseURL is the biz-records API address.
	BaseURL string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
	// Token is a previously issued access token, may be empty.
	Token string
	// Args is the subcommand with its own flags and arguments.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(name string, args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(name, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		BaseURL:        cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Token:          cfg.Adapter.Token,
		Args:           cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}
