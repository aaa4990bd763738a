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

// NetAddress holds a host and port parsed from "host:port".
// It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses os.Args into a [StructuredConfig].
//
// Flags:
//
//	-a relief API base URL
//	-k API key
//	-t request timeout (e.g. "5s")
//	-d SQLite DSN, or "memory"
//	-i sync interval (e.g. "5m")
//	-b bridge address in format [host]:[port]
//	-bridge-sign-key bridge JWT sign key
//	-bridge-issuer bridge JWT issuer
//	-headless disable the terminal dashboard
//	-token device push token
//	-u volunteer user name
//	-c/-config JSON or YAML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("relief-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		bridgeAddress  NetAddress
		apiAddress     string
		apiKey         string
		requestTimeout time.Duration
		dsn            string
		syncInterval   time.Duration
		signKey        string
		issuer         string
		headless       bool
		deviceToken    string
		userName       string
		configPath     string
	)

	fs.StringVar(&apiAddress, "a", "", "Relief API base URL")
	fs.StringVar(&apiKey, "k", "", "Relief API key")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&dsn, "d", "", "SQLite DSN")
	fs.DurationVar(&syncInterval, "i", 0, "Sync interval (e.g., 5m)")
	fs.Var(&bridgeAddress, "b", "Bridge net address host:port")
	fs.StringVar(&signKey, "bridge-sign-key", "", "Bridge token sign key")
	fs.StringVar(&issuer, "bridge-issuer", "", "Bridge token issuer")
	fs.BoolVar(&headless, "headless", false, "Run without the terminal dashboard")
	fs.StringVar(&deviceToken, "token", "", "Device push token")
	fs.StringVar(&userName, "u", "", "Volunteer user name")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DeviceToken: deviceToken,
			UserName:    userName,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			APIKey:         apiKey,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{SyncInterval: syncInterval},
		Bridge: Bridge{
			HTTPAddress:  bridgeAddress.String(),
			TokenSignKey: signKey,
			TokenIssuer:  issuer,
		},
		UI:       UI{Headless: headless},
		FilePath: configPath,
	}, nil
}

// String returns "host:port", or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses "host:port". The host must be an IP, "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
