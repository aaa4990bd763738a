package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-relief-sync/internal/adapter"
	"github.com/MKhiriev/go-relief-sync/internal/mock"
	"github.com/MKhiriev/go-relief-sync/internal/store"
	"github.com/MKhiriev/go-relief-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubTokenSource struct {
	token string
	err   error
}

func (s stubTokenSource) Token(context.Context) (string, error) {
	return s.token, s.err
}

type registrationFixture struct {
	svc      RegistrationService
	adapter  *mock.MockServerAdapter
	storages *store.ClientStorages
	regions  RegionFlow
	notifier *recordingNotifier
}

func newRegistrationFixture(t *testing.T, tokens TokenSource) *registrationFixture {
	t.Helper()
	mockAdapter, storages := newTestEnv(t)
	notifier := &recordingNotifier{}
	regions := NewRegionFlow(storages.Preferences, nopLogger)
	return &registrationFixture{
		svc:      NewRegistrationService(mockAdapter, regions, tokens, storages.Preferences, notifier, nopLogger),
		adapter:  mockAdapter,
		storages: storages,
		regions:  regions,
		notifier: notifier,
	}
}

func TestRegistrationService_RegisterToken_Success(t *testing.T) {
	f := newRegistrationFixture(t, stubTokenSource{})

	f.adapter.EXPECT().
		RegisterToken(gomock.Any(), models.RegisterTokenRequest{Token: "tok", Region: models.RegionSouth}).
		Return(nil)

	require.NoError(t, f.svc.RegisterToken(context.Background(), "tok", models.RegionSouth))
	assert.Empty(t, f.notifier.bodies())
}

func TestRegistrationService_RegisterToken_UndefinedRegionNeverCallsServer(t *testing.T) {
	for _, region := range []models.Region{models.RegionUndefined, "", "XX"} {
		f := newRegistrationFixture(t, stubTokenSource{})
		// no adapter expectation: any call fails the test

		err := f.svc.RegisterToken(context.Background(), "tok", region)

		assert.ErrorIs(t, err, ErrRegionUndefined)
		assert.Equal(t, []string{NoticeRegionUndefined}, f.notifier.bodies())
	}
}

func TestRegistrationService_RegisterToken_EmptyToken(t *testing.T) {
	f := newRegistrationFixture(t, stubTokenSource{})

	err := f.svc.RegisterToken(context.Background(), "", models.RegionNorth)

	assert.ErrorIs(t, err, ErrDeviceTokenMissing)
}

func TestRegistrationService_RegisterToken_FailureNotifiesOnce(t *testing.T) {
	failures := []error{adapter.ErrTimeout, adapter.ErrNetwork, adapter.ErrRejected, &adapter.StatusError{Code: 500}}

	for _, regErr := range failures {
		t.Run(regErr.Error(), func(t *testing.T) {
			f := newRegistrationFixture(t, stubTokenSource{})
			f.adapter.EXPECT().RegisterToken(gomock.Any(), gomock.Any()).Return(regErr).Times(1)

			err := f.svc.RegisterToken(context.Background(), "tok", models.RegionNorth)

			assert.ErrorIs(t, err, regErr)
			bodies := f.notifier.bodies()
			require.Len(t, bodies, 1)
			assert.Contains(t, bodies[0], NoticeRegistrationError)
		})
	}
}

func TestRegistrationService_RegisterDevice_StoredRegion(t *testing.T) {
	f := newRegistrationFixture(t, stubTokenSource{token: "fresh"})
	ctx := context.Background()
	require.NoError(t, f.storages.Preferences.SetRegion(ctx, models.RegionMetro))

	f.adapter.EXPECT().
		RegisterToken(gomock.Any(), models.RegisterTokenRequest{Token: "fresh", Region: models.RegionMetro}).
		Return(nil)

	require.NoError(t, f.svc.RegisterDevice(ctx))

	token, err := f.svc.CurrentToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
}

func TestRegistrationService_RegisterDevice_NoPickerSkipsRegistration(t *testing.T) {
	f := newRegistrationFixture(t, stubTokenSource{token: "fresh"})

	err := f.svc.RegisterDevice(context.Background())

	assert.ErrorIs(t, err, ErrRegionUndefined)
	assert.Equal(t, []string{NoticeRegionUndefined}, f.notifier.bodies())
}

func TestRegistrationService_RegisterDevice_PromptsForRegion(t *testing.T) {
	f := newRegistrationFixture(t, stubTokenSource{token: "fresh"})
	ctx := context.Background()
	picker := newRecordingPicker()
	f.regions.AttachPicker(picker)

	f.adapter.EXPECT().
		RegisterToken(gomock.Any(), models.RegisterTokenRequest{Token: "fresh", Region: models.RegionSouth}).
		Return(nil)

	done := make(chan error, 1)
	go func() { done <- f.svc.RegisterDevice(ctx) }()

	waitShown(t, picker)
	require.NoError(t, f.regions.Select(ctx, models.RegionSouth))
	require.NoError(t, <-done)
}

func TestRegistrationService_RegisterDevice_TokenUnavailable(t *testing.T) {
	f := newRegistrationFixture(t, stubTokenSource{err: errors.New("push service down")})

	err := f.svc.RegisterDevice(context.Background())

	assert.ErrorIs(t, err, ErrDeviceTokenMissing)
	assert.Equal(t, []string{NoticeRegistrationError}, f.notifier.bodies())
}

func TestRegistrationService_ChangeRegion(t *testing.T) {
	f := newRegistrationFixture(t, stubTokenSource{})
	ctx := context.Background()
	require.NoError(t, f.storages.Preferences.SetRegion(ctx, models.RegionCenter))
	require.NoError(t, f.storages.Preferences.SetDeviceToken(ctx, "cached"))
	picker := newRecordingPicker()
	f.regions.AttachPicker(picker)

	f.adapter.EXPECT().
		RegisterToken(gomock.Any(), models.RegisterTokenRequest{Token: "cached", Region: models.RegionWest}).
		Return(nil)

	type changeResult struct {
		region models.Region
		err    error
	}
	done := make(chan changeResult, 1)
	go func() {
		region, err := f.svc.ChangeRegion(ctx)
		done <- changeResult{region, err}
	}()

	waitShown(t, picker)
	require.NoError(t, f.regions.Select(ctx, models.RegionWest))

	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, models.RegionWest, got.region)
}

func TestRegistrationService_RefreshToken(t *testing.T) {
	f := newRegistrationFixture(t, stubTokenSource{})
	ctx := context.Background()
	require.NoError(t, f.storages.Preferences.SetRegion(ctx, models.RegionNorth))

	f.adapter.EXPECT().
		RegisterToken(gomock.Any(), models.RegisterTokenRequest{Token: "rotated", Region: models.RegionNorth}).
		Return(nil)

	require.NoError(t, f.svc.RefreshToken(ctx, " rotated "))

	token, err := f.svc.CurrentToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated", token)

	assert.ErrorIs(t, f.svc.RefreshToken(ctx, "  "), ErrDeviceTokenMissing)
}

func TestStaticTokenSource(t *testing.T) {
	prefs := store.NewPreferences(store.NewMemoryStore())
	ctx := context.Background()

	token, err := NewStaticTokenSource("", prefs).Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, prefs.SetDeviceToken(ctx, "stored"))
	token, err = NewStaticTokenSource("", prefs).Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "stored", token)

	token, err = NewStaticTokenSource(" configured ", prefs).Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "configured", token)
}
