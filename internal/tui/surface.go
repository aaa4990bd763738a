package tui

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-relief-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

const surfaceBuffer = 64

// programSurface adapts the running program to service.RegionPicker and
// service.Notifier. Calls never block the caller; messages are forwarded
// to the program in the order they were raised.
type programSurface struct {
	send  func(tea.Msg)
	queue chan tea.Msg
}

func newProgramSurface(send func(tea.Msg)) *programSurface {
	return &programSurface{
		send:  send,
		queue: make(chan tea.Msg, surfaceBuffer),
	}
}

func (s *programSurface) ShowRegionPicker(regions []models.Region) {
	s.push(regionPromptMsg{regions: slices.Clone(regions)})
}

func (s *programSurface) DismissRegionPicker() {
	s.push(regionDismissMsg{})
}

func (s *programSurface) Notify(notice models.Notice) {
	s.push(noticeMsg{notice: notice})
}

// push drops the message when the program is not draining the queue.
func (s *programSurface) push(msg tea.Msg) {
	select {
	case s.queue <- msg:
	default:
	}
}

func (s *programSurface) forward(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.queue:
			s.send(msg)
		}
	}
}
