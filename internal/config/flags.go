package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags from args (program name
// excluded). Unknown flags are reported as errors.
//
// Flags:
//
//	-api fare API base URL
//	-ws scan feed websocket URL
//	-request-timeout outbound request timeout (e.g. "15s")
//	-bus bus id shown by the terminal kiosk
//	-reset-timeout how long a scan result stays on screen (e.g. "8s")
//	-a kiosk web server address in format [host]:[port]
//	-heartbeat SSE heartbeat interval
//	-session-rate viewer sessions per second per client
//	-session-burst viewer session burst per client
//	-balance-refresh rider balance refresh interval
//	-log-level zerolog level
//	-log-file log file of the terminal binaries
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var apiAddress, wsAddress string
	var requestTimeout time.Duration
	var busID string
	var resetTimeout time.Duration
	var heartbeat time.Duration
	var sessionRate float64
	var sessionBurst int
	var balanceRefresh time.Duration
	var logLevel, logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("fare-card", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&apiAddress, "api", "", "Fare API base URL")
	fs.StringVar(&wsAddress, "ws", "", "Scan feed websocket URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&busID, "bus", "", "Bus id")
	fs.DurationVar(&resetTimeout, "reset-timeout", 0, "Result display time (e.g., 8s)")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&heartbeat, "heartbeat", 0, "SSE heartbeat interval")
	fs.Float64Var(&sessionRate, "session-rate", 0, "Viewer sessions per second per client")
	fs.IntVar(&sessionBurst, "session-burst", 0, "Viewer session burst per client")
	fs.DurationVar(&balanceRefresh, "balance-refresh", 0, "Balance refresh interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			WSAddress:      wsAddress,
			RequestTimeout: requestTimeout,
		},
		Viewer: Viewer{
			BusID:        busID,
			ResetTimeout: resetTimeout,
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			HeartbeatInterval: heartbeat,
			SessionRate:       sessionRate,
			SessionBurst:      sessionBurst,
		},
		Workers: Workers{BalanceRefreshInterval: balanceRefresh},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
