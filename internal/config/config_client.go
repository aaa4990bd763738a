package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds the device identity seeds.
type ClientApp struct {
	DeviceToken string
	UserName    string
}

// ClientAdapter holds the relief API settings.
type ClientAdapter struct {
	HTTPAddress    string
	APIKey         string
	RequestTimeout time.Duration
}

// ClientDB holds the local store DSN.
type ClientDB struct {
	DSN string
}

// ClientStorage groups the storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers holds background sync settings.
type ClientWorkers struct {
	SyncInterval time.Duration
}

// ClientBridge holds the local bridge settings.
type ClientBridge struct {
	HTTPAddress  string
	TokenSignKey string
	TokenIssuer  string
}

// Enabled reports whether the bridge should be started.
func (b ClientBridge) Enabled() bool {
	return b.HTTPAddress != ""
}

// AuthEnabled reports whether bridge requests must carry a valid JWT.
func (b ClientBridge) AuthEnabled() bool {
	return b.TokenSignKey != ""
}

// ClientUI selects the presentation surface.
type ClientUI struct {
	Headless bool
}

// ClientConfig is the validated configuration consumed by cmd/client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Bridge  ClientBridge
	UI      ClientUI
}

// GetClientConfig loads the merged configuration and returns its validated
// client view.
func GetClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DeviceToken: cfg.App.DeviceToken,
			UserName:    cfg.App.UserName,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			APIKey:         cfg.Adapter.APIKey,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Bridge: ClientBridge{
			HTTPAddress:  cfg.Bridge.HTTPAddress,
			TokenSignKey: cfg.Bridge.TokenSignKey,
			TokenIssuer:  cfg.Bridge.TokenIssuer,
		},
		UI: ClientUI{Headless: cfg.UI.Headless},
	}
}
