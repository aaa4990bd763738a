package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML files.
type fileConfig struct {
	App struct {
		DeviceToken string `json:"device_token" yaml:"device_token"`
		UserName    string `json:"user_name" yaml:"user_name"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		APIKey         string   `json:"api_key" yaml:"api_key"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval" yaml:"sync_interval"`
	} `json:"workers" yaml:"workers"`

	Bridge struct {
		HTTPAddress  string `json:"http_address" yaml:"http_address"`
		TokenSignKey string `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer" yaml:"token_issuer"`
	} `json:"bridge" yaml:"bridge"`

	UI struct {
		Headless bool `json:"headless" yaml:"headless"`
	} `json:"ui" yaml:"ui"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			DeviceToken: fc.App.DeviceToken,
			UserName:    fc.App.UserName,
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			APIKey:         fc.Adapter.APIKey,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Workers: Workers{SyncInterval: time.Duration(fc.Workers.SyncInterval)},
		Bridge: Bridge{
			HTTPAddress:  fc.Bridge.HTTPAddress,
			TokenSignKey: fc.Bridge.TokenSignKey,
			TokenIssuer:  fc.Bridge.TokenIssuer,
		},
		UI: UI{Headless: fc.UI.Headless},
	}, nil
}

// Duration accepts either a Go duration string ("30s") or a number of
// nanoseconds in config files.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	return d.parse(node.Value)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
