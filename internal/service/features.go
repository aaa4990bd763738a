package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-relief-sync/internal/adapter"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/store"
	"github.com/MKhiriev/go-relief-sync/models"
)

type shelterService struct {
	cache *store.Collection[models.Shelter]
}

func NewShelterService(cache *store.Collection[models.Shelter]) ShelterService {
	return &shelterService{cache: cache}
}

func (s *shelterService) All(ctx context.Context) ([]models.Shelter, error) {
	return s.cache.Load(ctx)
}

type missionService struct {
	adapter  adapter.ServerAdapter
	cache    *store.Collection[models.Mission]
	sync     SyncCoordinator
	prefs    *store.Preferences
	notifier Notifier

	logger *logger.Logger
}

func NewMissionService(
	a adapter.ServerAdapter,
	cache *store.Collection[models.Mission],
	sync SyncCoordinator,
	prefs *store.Preferences,
	notifier Notifier,
	log *logger.Logger,
) MissionService {
	return &missionService{
		adapter:  a,
		cache:    cache,
		sync:     sync,
		prefs:    prefs,
		notifier: notifier,
		logger:   log,
	}
}

func (s *missionService) Active(ctx context.Context) ([]models.Mission, error) {
	missions, err := s.cache.Load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(missions, func(m models.Mission) bool { return !m.Open() }), nil
}

// Complete never changes the cached status itself: the new status arrives
// with the re-sync.
func (s *missionService) Complete(ctx context.Context, id int64) error {
	missions, err := s.cache.Load(ctx)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(missions, func(m models.Mission) bool { return m.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrMissionNotFound, id)
	}
	mission := missions[idx]

	name, token, err := volunteer(ctx, s.prefs)
	if err != nil {
		s.notify(userMessage(NoticeMissionError, err))
		return err
	}

	req := models.MissionDoneRequest{ID: id, UserName: name, Token: token}
	if err = s.adapter.SetMissionDone(ctx, req); err != nil {
		s.logger.Err(err).Str("func", "*missionService.Complete").Int64("mission_id", id).Msg("mission completion failed")
		s.notify(userMessage(NoticeMissionError, err))
		return err
	}

	s.notify(fmt.Sprintf("Mission %q was completed.", mission.Title))
	s.sync.Sync(ctx)
	return nil
}

func (s *missionService) notify(body string) {
	s.notifier.Notify(models.Notice{Title: "Missions", Body: body})
}

type chatService struct {
	adapter  adapter.ServerAdapter
	regions  RegionFlow
	prefs    *store.Preferences
	notifier Notifier

	logger *logger.Logger
}

func NewChatService(
	a adapter.ServerAdapter,
	regions RegionFlow,
	prefs *store.Preferences,
	notifier Notifier,
	log *logger.Logger,
) ChatService {
	return &chatService{adapter: a, regions: regions, prefs: prefs, notifier: notifier, logger: log}
}

func (s *chatService) Messages(ctx context.Context) ([]models.ChatMessage, error) {
	region, err := s.regions.CurrentRegion(ctx)
	if err != nil {
		return nil, err
	}
	if !region.Valid() {
		return nil, ErrRegionUndefined
	}
	return s.adapter.ChatMessages(ctx, region)
}

func (s *chatService) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	name, token, err := volunteer(ctx, s.prefs)
	if err != nil {
		s.notifier.Notify(models.Notice{Title: "Chat", Body: userMessage(NoticeChatError, err)})
		return err
	}

	req := models.SendMessageRequest{Token: token, UserName: name, Message: text}
	if err = s.adapter.SendChatMessage(ctx, req); err != nil {
		s.logger.Err(err).Str("func", "*chatService.Send").Msg("error sending chat message")
		s.notifier.Notify(models.Notice{Title: "Chat", Body: userMessage(NoticeChatError, err)})
		return err
	}
	return nil
}

type alertService struct {
	adapter  adapter.ServerAdapter
	regions  RegionFlow
	notifier Notifier

	logger *logger.Logger
}

func NewAlertService(a adapter.ServerAdapter, regions RegionFlow, notifier Notifier, log *logger.Logger) AlertService {
	return &alertService{adapter: a, regions: regions, notifier: notifier, logger: log}
}

func (s *alertService) SendSOS(ctx context.Context) error {
	region, err := s.regions.CurrentRegion(ctx)
	if err != nil {
		return err
	}
	if !region.Valid() {
		s.notifier.Notify(models.Notice{Title: NoticeSOSTitle, Body: NoticeRegionUndefined})
		return ErrRegionUndefined
	}

	req := models.RegionNotificationRequest{Title: NoticeSOSTitle, Body: NoticeSOSBody, Region: region}
	if err = s.adapter.SendRegionNotification(ctx, req); err != nil {
		s.logger.Err(err).Str("func", "*alertService.SendSOS").Str("region", region.String()).Msg("error sending SOS")
		s.notifier.Notify(models.Notice{Title: NoticeSOSTitle, Body: userMessage(NoticeSOSError, err)})
		return err
	}

	s.logger.Info().Str("func", "*alertService.SendSOS").Str("region", region.String()).Msg("SOS sent")
	return nil
}

type profileService struct {
	prefs *store.Preferences
}

func NewProfileService(prefs *store.Preferences) ProfileService {
	return &profileService{prefs: prefs}
}

func (s *profileService) UserName(ctx context.Context) (string, error) {
	return s.prefs.UserName(ctx)
}

func (s *profileService) SetUserName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrUserNameRequired
	}
	return s.prefs.SetUserName(ctx, name)
}

// volunteer returns the identity attached to missions and chat messages.
func volunteer(ctx context.Context, prefs *store.Preferences) (name, token string, err error) {
	if name, err = prefs.UserName(ctx); err != nil {
		return "", "", err
	}
	if name == "" {
		return "", "", ErrUserNameRequired
	}
	if token, err = prefs.DeviceToken(ctx); err != nil {
		return "", "", err
	}
	if token == "" {
		return "", "", ErrDeviceTokenMissing
	}
	return name, token, nil
}
