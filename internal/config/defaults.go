package config

import "time"

// Built-in defaults, used for every field no other source sets.
const (
	DefaultAPIAddress             = "http://localhost:8080/v1"
	DefaultFeedAddress            = "ws://localhost:8080/v1/ws"
	DefaultRequestTimeout         = 15 * time.Second
	DefaultResetTimeout           = 8 * time.Second
	DefaultServerAddress          = "localhost:8090"
	DefaultHeartbeatInterval      = 15 * time.Second
	DefaultSessionRate            = 1.0
	DefaultSessionBurst           = 5
	DefaultBalanceRefreshInterval = 30 * time.Second
	DefaultLogLevel               = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIAddress,
			WSAddress:      DefaultFeedAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Viewer: Viewer{ResetTimeout: DefaultResetTimeout},
		Server: Server{
			HTTPAddress:       DefaultServerAddress,
			RequestTimeout:    DefaultRequestTimeout,
			HeartbeatInterval: DefaultHeartbeatInterval,
			SessionRate:       DefaultSessionRate,
			SessionBurst:      DefaultSessionBurst,
		},
		Workers: Workers{BalanceRefreshInterval: DefaultBalanceRefreshInterval},
		Log:     Log{Level: DefaultLogLevel},
	}
}
