package service

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/mock"
	"github.com/MKhiriev/go-relief-sync/internal/store"
	"github.com/MKhiriev/go-relief-sync/models"
	"go.uber.org/mock/gomock"
)

// recordingPicker counts picker signals and forwards shows to a channel so
// tests can wait for a prompt to be open.
type recordingPicker struct {
	mu        sync.Mutex
	shows     int
	dismisses int
	shown     chan []models.Region
}

func newRecordingPicker() *recordingPicker {
	return &recordingPicker{shown: make(chan []models.Region, 16)}
}

func (p *recordingPicker) ShowRegionPicker(regions []models.Region) {
	p.mu.Lock()
	p.shows++
	p.mu.Unlock()
	p.shown <- regions
}

func (p *recordingPicker) DismissRegionPicker() {
	p.mu.Lock()
	p.dismisses++
	p.mu.Unlock()
}

func (p *recordingPicker) counts() (shows, dismisses int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shows, p.dismisses
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []models.Notice
}

func (n *recordingNotifier) Notify(notice models.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) bodies() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.notices))
	for _, notice := range n.notices {
		out = append(out, notice.Body)
	}
	return out
}

// newTestEnv returns a gomock adapter and in-memory storages.
func newTestEnv(t *testing.T) (*mock.MockServerAdapter, *store.ClientStorages) {
	t.Helper()
	ctrl := gomock.NewController(t)
	return mock.NewMockServerAdapter(ctrl), store.NewStoragesFromKV(store.NewMemoryStore())
}

var nopLogger = logger.Nop()
