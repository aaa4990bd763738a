package http

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-relief-sync/models"
)

// maxQueuedNotices bounds the notice queue; the oldest are dropped first.
const maxQueuedNotices = 100

// RegionPromptTitle marks the notice queued when a region prompt opens.
const RegionPromptTitle = "Region"

// Surface is the bridge's presentation side. A shell polls the notice
// queue; an opened region prompt shows up there as a notice and is
// answered with POST /bridge/region.
type Surface struct {
	mu      sync.Mutex
	notices []models.Notice
}

func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) ShowRegionPicker(regions []models.Region) {
	codes := make([]string, 0, len(regions))
	for _, r := range regions {
		codes = append(codes, r.String())
	}
	s.Notify(models.Notice{
		Title: RegionPromptTitle,
		Body:  "Select your region: " + strings.Join(codes, ", "),
		At:    time.Now(),
	})
}

// DismissRegionPicker is a no-op: the shell reads the prompt state from
// GET /bridge/region.
func (s *Surface) DismissRegionPicker() {}

func (s *Surface) Notify(notice models.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, notice)
	if over := len(s.notices) - maxQueuedNotices; over > 0 {
		s.notices = slices.Delete(s.notices, 0, over)
	}
}

// Drain returns the queued notices, oldest first, and empties the queue.
func (s *Surface) Drain() []models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notices
	s.notices = nil
	if out == nil {
		out = []models.Notice{}
	}
	return out
}
