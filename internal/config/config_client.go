package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the fare API settings used by the client binaries.
type ClientAdapter struct {
	// HTTPAddress is the REST base URL.
	HTTPAddress string
	// WSAddress is the scan feed endpoint.
	WSAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// BalanceRefreshInterval defines how often the dashboard balance is
	// refreshed.
	BalanceRefreshInterval time.Duration
}

// ClientConfig is the rider TUI configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Workers ClientWorkers
	Log     Log
}

// GetClientConfig builds and validates the rider TUI config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: clientAdapter(cfg.Adapter),
		Workers: ClientWorkers{BalanceRefreshInterval: cfg.Workers.BalanceRefreshInterval},
		Log:     cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}

func clientAdapter(a Adapter) ClientAdapter {
	return ClientAdapter{
		HTTPAddress:    a.HTTPAddress,
		WSAddress:      a.WSAddress,
		RequestTimeout: a.RequestTimeout,
	}
}
