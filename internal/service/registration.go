package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-relief-sync/internal/adapter"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/store"
	"github.com/MKhiriev/go-relief-sync/internal/utils"
	"github.com/MKhiriev/go-relief-sync/models"
)

type registrationService struct {
	adapter  adapter.ServerAdapter
	regions  RegionFlow
	tokens   TokenSource
	prefs    *store.Preferences
	notifier Notifier

	logger *logger.Logger
}

func NewRegistrationService(
	a adapter.ServerAdapter,
	regions RegionFlow,
	tokens TokenSource,
	prefs *store.Preferences,
	notifier Notifier,
	log *logger.Logger,
) RegistrationService {
	return &registrationService{
		adapter:  a,
		regions:  regions,
		tokens:   tokens,
		prefs:    prefs,
		notifier: notifier,
		logger:   log,
	}
}

func (s *registrationService) RegisterToken(ctx context.Context, token string, region models.Region) error {
	log := s.logger.With().
		Str("func", "*registrationService.RegisterToken").
		Str("token", utils.Fingerprint(token)).
		Str("region", region.String()).
		Logger()

	if !region.Valid() {
		log.Info().Msg("region undefined, registration skipped")
		s.notify(NoticeRegionUndefined)
		return ErrRegionUndefined
	}
	if token == "" {
		log.Warn().Msg("no device token, registration skipped")
		return ErrDeviceTokenMissing
	}

	req := models.RegisterTokenRequest{Token: token, Region: region}
	if err := s.adapter.RegisterToken(ctx, req); err != nil {
		log.Err(err).Msg("token registration failed")
		s.notify(userMessage(NoticeRegistrationError, err))
		return err
	}

	log.Info().Msg("token registered")
	return nil
}

func (s *registrationService) RegisterDevice(ctx context.Context) error {
	token, err := s.obtainToken(ctx)
	if err != nil {
		return err
	}

	region, err := s.regions.GetOrPromptRegion(ctx)
	if err != nil {
		return fmt.Errorf("region selection: %w", err)
	}

	return s.RegisterToken(ctx, token, region)
}

func (s *registrationService) ChangeRegion(ctx context.Context) (models.Region, error) {
	region, err := s.regions.ForcePrompt(ctx)
	if err != nil {
		return models.RegionUndefined, fmt.Errorf("region selection: %w", err)
	}

	token, err := s.prefs.DeviceToken(ctx)
	if err != nil {
		return region, err
	}
	if token == "" {
		if token, err = s.obtainToken(ctx); err != nil {
			return region, err
		}
	}

	return region, s.RegisterToken(ctx, token, region)
}

func (s *registrationService) RefreshToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrDeviceTokenMissing
	}
	if err := s.prefs.SetDeviceToken(ctx, token); err != nil {
		return fmt.Errorf("cache device token: %w", err)
	}

	region, err := s.regions.CurrentRegion(ctx)
	if err != nil {
		return err
	}
	return s.RegisterToken(ctx, token, region)
}

func (s *registrationService) CurrentToken(ctx context.Context) (string, error) {
	return s.prefs.DeviceToken(ctx)
}

// obtainToken asks the token source and caches the answer.
func (s *registrationService) obtainToken(ctx context.Context) (string, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*registrationService.obtainToken").Msg("error obtaining device token")
		s.notify(NoticeRegistrationError)
		return "", fmt.Errorf("%w: %w", ErrDeviceTokenMissing, err)
	}
	if token == "" {
		return "", ErrDeviceTokenMissing
	}

	if err = s.prefs.SetDeviceToken(ctx, token); err != nil {
		s.logger.Err(err).Str("func", "*registrationService.obtainToken").Msg("error caching device token")
	}
	return token, nil
}

func (s *registrationService) notify(body string) {
	s.notifier.Notify(models.Notice{Title: "Registration", Body: body})
}

// storedTokenSource returns the configured token, or the one cached by a
// previous run.
type storedTokenSource struct {
	configured string
	prefs      *store.Preferences
}

// NewStaticTokenSource returns a [TokenSource] for a desktop client, where
// the push token is supplied by configuration rather than a platform SDK.
func NewStaticTokenSource(configured string, prefs *store.Preferences) TokenSource {
	return &storedTokenSource{configured: strings.TrimSpace(configured), prefs: prefs}
}

func (t *storedTokenSource) Token(ctx context.Context) (string, error) {
	if t.configured != "" {
		return t.configured, nil
	}
	return t.prefs.DeviceToken(ctx)
}
