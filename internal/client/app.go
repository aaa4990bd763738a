package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-relief-sync/internal/adapter"
	"github.com/MKhiriev/go-relief-sync/internal/config"
	"github.com/MKhiriev/go-relief-sync/internal/handler"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/server"
	"github.com/MKhiriev/go-relief-sync/internal/service"
	"github.com/MKhiriev/go-relief-sync/internal/store"
	"github.com/MKhiriev/go-relief-sync/internal/tui"
	"github.com/MKhiriev/go-relief-sync/internal/utils"
	"github.com/MKhiriev/go-relief-sync/internal/workers"
	"github.com/MKhiriev/go-relief-sync/models"
)

const (
	shutdownTimeout = 5 * time.Second
	bridgeTokenTTL  = 24 * time.Hour
)

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers

	handlers    *handler.Handlers
	server      server.Server
	bridgeToken string
	ui          *tui.TUI

	logger *logger.Logger
}

// NewApp builds every component enabled by cfg. Nothing runs until Run.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log.Component("adapter"))
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.Component("store"))
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	tokens := service.NewStaticTokenSource(cfg.App.DeviceToken, storages.Preferences)
	services := service.NewClientServices(storages, serverAdapter, tokens, log)

	if cfg.App.UserName != "" {
		if err = seedUserName(ctx, services.Profile, cfg.App.UserName); err != nil {
			_ = storages.Close()
			return nil, err
		}
	}

	app := &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(cfg.Workers, services, log),
		logger:   log,
	}

	if cfg.Bridge.Enabled() {
		if app.handlers, err = handler.NewHandlers(services, cfg.Bridge, buildInfo, log); err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create bridge handlers: %w", err)
		}
		if app.server, err = server.NewServer(app.handlers, cfg.Bridge, log.Component("bridge-server")); err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create bridge server: %w", err)
		}
		if cfg.Bridge.AuthEnabled() {
			sessionID := utils.NewUUIDGenerator().Generate()
			if app.bridgeToken, err = utils.GenerateBridgeToken(cfg.Bridge.TokenIssuer, sessionID, bridgeTokenTTL, cfg.Bridge.TokenSignKey); err != nil {
				_ = storages.Close()
				return nil, fmt.Errorf("issue bridge token: %w", err)
			}
			log.Info().Str("session", sessionID).Str("token", utils.Fingerprint(app.bridgeToken)).Msg("bridge token issued")
		}
	}

	if !cfg.UI.Headless {
		if app.ui, err = tui.New(services, buildInfo, log.Component("tui")); err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create ui: %w", err)
		}
	}

	if app.ui == nil && app.server == nil {
		log.Warn().Msg("headless without bridge: region prompts resolve to NONE")
	}

	return app, nil
}

// seedUserName stores the configured name unless the user already set one.
func seedUserName(ctx context.Context, profile service.ProfileService, name string) error {
	current, err := profile.UserName(ctx)
	if err != nil {
		return fmt.Errorf("read user name: %w", err)
	}
	if current != "" {
		return nil
	}
	if err = profile.SetUserName(ctx, name); err != nil {
		return fmt.Errorf("seed user name: %w", err)
	}
	return nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.close()

	if a.server != nil {
		if a.bridgeToken != "" {
			fmt.Printf("Bridge token: %s\n", a.bridgeToken)
		}
		detach := a.handlers.HTTP.Attach()
		defer detach()

		go a.server.RunServer()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			a.server.Shutdown(shutdownCtx)
		}()
	}

	if a.ui != nil {
		a.workers.OnSyncReport(a.ui.ReportSync)
	}
	a.workers.Start(ctx)
	defer a.workers.Stop()

	if a.ui == nil {
		go a.registerDevice(ctx)
		<-ctx.Done()
		a.logger.Info().Msg("shutdown signal received")
		return nil
	}

	a.ui.OnAttached = a.registerDevice
	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) registerDevice(ctx context.Context) {
	if err := a.services.Registration.RegisterDevice(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.registerDevice").Msg("device registration did not complete")
		return
	}
	a.logger.Info().Str("func", "*App.registerDevice").Msg("device registered")
}

func (a *App) close() {
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.close").Msg("error closing local storage")
	}
}
