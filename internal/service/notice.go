package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-relief-sync/internal/adapter"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/models"
)

// Notice texts shown to the volunteer.
const (
	NoticeRegionUndefined   = "Define your region to receive notifications."
	NoticeRegistrationError = "Failed to send token to server."
	NoticeRegionNotSaved    = "Failed to save the selected region."
	NoticeMissionError      = "Error completing mission"
	NoticeChatError         = "Failed to send message."
	NoticeSOSTitle          = "SOS"
	NoticeSOSBody           = "Alert - a user in your region is requesting immediate help."
	NoticeSOSError          = "Failed to send SOS."
)

// NoticeBus fans notices out to every attached [Notifier]. It is itself a
// Notifier and records each notice in the log, so notices are never lost
// when no surface is attached.
type NoticeBus struct {
	mu     sync.RWMutex
	sinks  map[uint64]Notifier
	nextID uint64
	now    func() time.Time

	logger *logger.Logger
}

func NewNoticeBus(log *logger.Logger) *NoticeBus {
	return &NoticeBus{
		sinks:  make(map[uint64]Notifier),
		now:    time.Now,
		logger: log,
	}
}

// Attach registers n and returns a function that removes it.
func (b *NoticeBus) Attach(n Notifier) (detach func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.sinks[id] = n
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.sinks, id)
		b.mu.Unlock()
	}
}

func (b *NoticeBus) Notify(notice models.Notice) {
	if notice.At.IsZero() {
		notice.At = b.now()
	}
	b.logger.Info().Str("title", notice.Title).Str("body", notice.Body).Msg("notice")

	b.mu.RLock()
	sinks := make([]Notifier, 0, len(b.sinks))
	for _, s := range b.sinks {
		sinks = append(sinks, s)
	}
	b.mu.RUnlock()

	for _, s := range sinks {
		s.Notify(notice)
	}
}

// userMessage turns err into text suitable for a notice body.
func userMessage(fallback string, err error) string {
	switch {
	case err == nil:
		return fallback
	case errors.Is(err, ErrUserNameRequired):
		return fallback + " Set your name first."
	case errors.Is(err, ErrDeviceTokenMissing):
		return fallback + " Device is not registered."
	case errors.Is(err, context.Canceled):
		return fallback + " Cancelled."
	case errors.Is(err, adapter.ErrTimeout):
		return fallback + " The server did not answer in time."
	case errors.Is(err, adapter.ErrNetwork):
		return fallback + " No connection."
	case errors.Is(err, adapter.ErrUnauthorized):
		return fallback + " Access denied."
	case errors.Is(err, adapter.ErrRejected):
		return fallback + " Rejected by server."
	}
	return fallback
}
