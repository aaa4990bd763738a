// Package tui is the terminal front end of the relief client. It renders
// the cached reference data and acts as a region picker and notice sink
// for the service layer while the program runs.
package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/service"
	"github.com/MKhiriev/go-relief-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	// OnAttached, when set, runs in its own goroutine once the program is
	// registered as region picker and notice sink.
	OnAttached func(ctx context.Context)

	mu      sync.Mutex
	surface *programSurface

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newDashboardModel(ctx, t.services, t.buildInfo),
		tea.WithAltScreen(), tea.WithContext(ctx))

	surface := newProgramSurface(p.Send)
	go surface.forward(ctx)

	detachPicker := t.services.Regions.AttachPicker(surface)
	detachNotices := t.services.Notices.Attach(surface)
	t.setSurface(surface)
	defer func() {
		t.setSurface(nil)
		detachNotices()
		detachPicker()
	}()

	if t.OnAttached != nil {
		go t.OnAttached(ctx)
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("program stopped with error")
		return err
	}
	return ErrUserQuit
}

// ReportSync shows the result of a background sync round. It is a no-op
// while the program is not running.
func (t *TUI) ReportSync(report models.SyncReport) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.surface != nil {
		t.surface.push(syncDoneMsg{report: report})
	}
}

func (t *TUI) setSurface(s *programSurface) {
	t.mu.Lock()
	t.surface = s
	t.mu.Unlock()
}
