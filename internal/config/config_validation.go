// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	addr := cfg.Adapter.HTTPAddress
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	u, err := url.Parse(addr)
	if cfg.Adapter.HTTPAddress == "" || err != nil || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Bridge.HTTPAddress != "" {
		if _, _, err := net.SplitHostPort(cfg.Bridge.HTTPAddress); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBridgeConfigs, err)
		}
	}
	if cfg.Bridge.TokenSignKey != "" && cfg.Bridge.TokenIssuer == "" {
		return fmt.Errorf("%w: sign key requires an issuer", ErrInvalidBridgeConfigs)
	}

	return nil
}
