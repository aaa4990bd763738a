package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-relief-sync/internal/adapter"
	"github.com/MKhiriev/go-relief-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Missions ─────────────────────────────────────────────────────────────────

func TestMissionService_Active(t *testing.T) {
	mockAdapter, storages := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, storages.Missions.Save(ctx, []models.Mission{
		{ID: 1, Status: models.MissionPending},
		{ID: 2, Status: models.MissionRescued},
		{ID: 3, Status: models.MissionCompleted},
	}))

	svc := NewMissionService(mockAdapter, storages.Missions, NewMissionSync(mockAdapter, storages, nopLogger), storages.Preferences, &recordingNotifier{}, nopLogger)

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, int64(1), active[0].ID)
	assert.Equal(t, int64(3), active[1].ID)
}

func TestMissionService_Complete_ResyncsOnSuccess(t *testing.T) {
	mockAdapter, storages := newTestEnv(t)
	ctx := context.Background()
	notifier := &recordingNotifier{}
	require.NoError(t, storages.Missions.Save(ctx, []models.Mission{{ID: 5, Title: "Bridge", Status: models.MissionPending}}))
	require.NoError(t, storages.Preferences.SetUserName(ctx, "Ana"))
	require.NoError(t, storages.Preferences.SetDeviceToken(ctx, "tok"))

	updated := []models.Mission{{ID: 5, Title: "Bridge", Status: models.MissionCompleted}}
	gomock.InOrder(
		mockAdapter.EXPECT().
			SetMissionDone(gomock.Any(), models.MissionDoneRequest{ID: 5, UserName: "Ana", Token: "tok"}).
			Return(nil),
		mockAdapter.EXPECT().FetchMissions(gomock.Any()).Return(updated, nil),
	)

	svc := NewMissionService(mockAdapter, storages.Missions, NewMissionSync(mockAdapter, storages, nopLogger), storages.Preferences, notifier, nopLogger)

	require.NoError(t, svc.Complete(ctx, 5))

	cached, err := storages.Missions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, cached)
	assert.Equal(t, []string{`Mission "Bridge" was completed.`}, notifier.bodies())
}

func TestMissionService_Complete_FailureLeavesCache(t *testing.T) {
	mockAdapter, storages := newTestEnv(t)
	ctx := context.Background()
	notifier := &recordingNotifier{}
	before := []models.Mission{{ID: 5, Title: "Bridge", Status: models.MissionPending}}
	require.NoError(t, storages.Missions.Save(ctx, before))
	require.NoError(t, storages.Preferences.SetUserName(ctx, "Ana"))
	require.NoError(t, storages.Preferences.SetDeviceToken(ctx, "tok"))

	mockAdapter.EXPECT().SetMissionDone(gomock.Any(), gomock.Any()).Return(adapter.ErrTimeout)

	svc := NewMissionService(mockAdapter, storages.Missions, NewMissionSync(mockAdapter, storages, nopLogger), storages.Preferences, notifier, nopLogger)

	assert.ErrorIs(t, svc.Complete(ctx, 5), adapter.ErrTimeout)

	cached, err := storages.Missions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, cached)
	require.Len(t, notifier.bodies(), 1)
	assert.Contains(t, notifier.bodies()[0], NoticeMissionError)
}

func TestMissionService_Complete_Preconditions(t *testing.T) {
	mockAdapter, storages := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, storages.Missions.Save(ctx, []models.Mission{{ID: 5}}))

	svc := NewMissionService(mockAdapter, storages.Missions, NewMissionSync(mockAdapter, storages, nopLogger), storages.Preferences, &recordingNotifier{}, nopLogger)

	assert.ErrorIs(t, svc.Complete(ctx, 99), ErrMissionNotFound)
	assert.ErrorIs(t, svc.Complete(ctx, 5), ErrUserNameRequired)

	require.NoError(t, storages.Preferences.SetUserName(ctx, "Ana"))
	assert.ErrorIs(t, svc.Complete(ctx, 5), ErrDeviceTokenMissing)
}

// ── Chat ─────────────────────────────────────────────────────────────────────

func TestChatService_Messages(t *testing.T) {
	mockAdapter, storages := newTestEnv(t)
	ctx := context.Background()
	regions := NewRegionFlow(storages.Preferences, nopLogger)
	svc := NewChatService(mockAdapter, regions, storages.Preferences, &recordingNotifier{}, nopLogger)

	_, err := svc.Messages(ctx)
	assert.ErrorIs(t, err, ErrRegionUndefined)

	require.NoError(t, storages.Preferences.SetRegion(ctx, models.RegionNorth))
	rows := []models.ChatMessage{{ID: 1, Message: "hi"}}
	mockAdapter.EXPECT().ChatMessages(gomock.Any(), models.RegionNorth).Return(rows, nil)

	got, err := svc.Messages(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestChatService_Send(t *testing.T) {
	mockAdapter, storages := newTestEnv(t)
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := NewChatService(mockAdapter, NewRegionFlow(storages.Preferences, nopLogger), storages.Preferences, notifier, nopLogger)

	assert.ErrorIs(t, svc.Send(ctx, "   "), ErrEmptyMessage)
	assert.ErrorIs(t, svc.Send(ctx, "hello"), ErrUserNameRequired)
	require.Len(t, notifier.bodies(), 1)

	require.NoError(t, storages.Preferences.SetUserName(ctx, "Ana"))
	require.NoError(t, storages.Preferences.SetDeviceToken(ctx, "tok"))

	mockAdapter.EXPECT().
		SendChatMessage(gomock.Any(), models.SendMessageRequest{Token: "tok", UserName: "Ana", Message: "hello"}).
		Return(nil)
	require.NoError(t, svc.Send(ctx, " hello "))

	mockAdapter.EXPECT().SendChatMessage(gomock.Any(), gomock.Any()).Return(adapter.ErrNetwork)
	assert.ErrorIs(t, svc.Send(ctx, "again"), adapter.ErrNetwork)
	assert.Len(t, notifier.bodies(), 2)
}

// ── Alerts ───────────────────────────────────────────────────────────────────

func TestAlertService_SendSOS(t *testing.T) {
	mockAdapter, storages := newTestEnv(t)
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := NewAlertService(mockAdapter, NewRegionFlow(storages.Preferences, nopLogger), notifier, nopLogger)

	assert.ErrorIs(t, svc.SendSOS(ctx), ErrRegionUndefined)
	assert.Equal(t, []string{NoticeRegionUndefined}, notifier.bodies())

	require.NoError(t, storages.Preferences.SetRegion(ctx, models.RegionEast))
	mockAdapter.EXPECT().
		SendRegionNotification(gomock.Any(), models.RegionNotificationRequest{
			Title:  NoticeSOSTitle,
			Body:   NoticeSOSBody,
			Region: models.RegionEast,
		}).
		Return(nil)

	require.NoError(t, svc.SendSOS(ctx))
}

// ── Shelters & profile ───────────────────────────────────────────────────────

func TestShelterService_All(t *testing.T) {
	_, storages := newTestEnv(t)
	ctx := context.Background()
	svc := NewShelterService(storages.Shelters)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	shelters := []models.Shelter{{ID: 1, Name: "School"}}
	require.NoError(t, storages.Shelters.Save(ctx, shelters))

	all, err = svc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, shelters, all)
}

func TestProfileService(t *testing.T) {
	_, storages := newTestEnv(t)
	ctx := context.Background()
	svc := NewProfileService(storages.Preferences)

	assert.ErrorIs(t, svc.SetUserName(ctx, "  "), ErrUserNameRequired)
	require.NoError(t, svc.SetUserName(ctx, " Ana "))

	name, err := svc.UserName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)
}
