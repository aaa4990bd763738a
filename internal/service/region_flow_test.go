// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-relief-sync/internal/mock"
	"github.com/MKhiriev/go-relief-sync/internal/store"
	"github.com/MKhiriev/go-relief-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const waitTimeout = 2 * time.Second

type promptResult struct {
	region models.Region
	err    error
}

func newTestRegionFlow() (RegionFlow, *store.Preferences) {
	prefs := store.NewPreferences(store.NewMemoryStore())
	return NewRegionFlow(prefs, nopLogger), prefs
}

func promptAsync(ctx context.Context, fn func(context.Context) (models.Region, error)) <-chan promptResult {
	out := make(chan promptResult, 1)
	go func() {
		region, err := fn(ctx)
		out <- promptResult{region: region, err: err}
	}()
	return out
}

func waitShown(t *testing.T, p *recordingPicker) {
	t.Helper()
	select {
	case regions := <-p.shown:
		assert.Equal(t, models.Regions, regions)
	case <-time.After(waitTimeout):
		t.Fatal("picker was not shown")
	}
}

func waitResult(t *testing.T, ch <-chan promptResult) promptResult {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(waitTimeout):
		t.Fatal("prompt did not resolve")
		return promptResult{}
	}
}

func TestRegionFlow_GetOrPromptRegion_PersistedRegionSkipsPicker(t *testing.T) {
	flow, prefs := newTestRegionFlow()
	ctx := context.Background()
	require.NoError(t, prefs.SetRegion(ctx, models.RegionNorth))

	picker := newRecordingPicker()
	flow.AttachPicker(picker)

	region, err := flow.GetOrPromptRegion(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.RegionNorth, region)
	shows, _ := picker.counts()
	assert.Zero(t, shows)
	assert.False(t, flow.Pending())
}

func TestRegionFlow_GetOrPromptRegion_SelectResolvesAndPersists(t *testing.T) {
	flow, prefs := newTestRegionFlow()
	ctx := context.Background()
	picker := newRecordingPicker()
	flow.AttachPicker(picker)

	res := promptAsync(ctx, flow.GetOrPromptRegion)
	waitShown(t, picker)
	assert.True(t, flow.Pending())

	require.NoError(t, flow.Select(ctx, models.RegionSouth))

	got := waitResult(t, res)
	require.NoError(t, got.err)
	assert.Equal(t, models.RegionSouth, got.region)

	stored, err := prefs.Region(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RegionSouth, stored)

	assert.False(t, flow.Pending())
	_, dismisses := picker.counts()
	assert.Equal(t, 1, dismisses)
}

func TestRegionFlow_GetOrPromptRegion_NoPickerResolvesUndefined(t *testing.T) {
	flow, prefs := newTestRegionFlow()
	ctx := context.Background()

	region, err := flow.GetOrPromptRegion(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.RegionUndefined, region)

	stored, err := prefs.Region(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RegionUndefined, stored)
	assert.False(t, flow.Pending())
}

func TestRegionFlow_QueuedPromptReadsStoredRegion(t *testing.T) {
	flow, _ := newTestRegionFlow()
	ctx := context.Background()
	picker := newRecordingPicker()
	flow.AttachPicker(picker)

	first := promptAsync(ctx, flow.GetOrPromptRegion)
	waitShown(t, picker)
	second := promptAsync(ctx, flow.GetOrPromptRegion)

	select {
	case <-second:
		t.Fatal("second prompt resolved before a selection")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, flow.Select(ctx, models.RegionEast))

	assert.Equal(t, models.RegionEast, waitResult(t, first).region)
	assert.Equal(t, models.RegionEast, waitResult(t, second).region)

	shows, _ := picker.counts()
	assert.Equal(t, 1, shows, "queued prompt must not reopen the picker")
}

func TestRegionFlow_ForcePromptQueuesBehindPending(t *testing.T) {
	flow, prefs := newTestRegionFlow()
	ctx := context.Background()
	picker := newRecordingPicker()
	flow.AttachPicker(picker)

	first := promptAsync(ctx, flow.GetOrPromptRegion)
	waitShown(t, picker)
	forced := promptAsync(ctx, flow.ForcePrompt)

	require.NoError(t, flow.Select(ctx, models.RegionWest))
	assert.Equal(t, models.RegionWest, waitResult(t, first).region)

	waitShown(t, picker)
	require.NoError(t, flow.Select(ctx, models.RegionMetro))
	assert.Equal(t, models.RegionMetro, waitResult(t, forced).region)

	stored, err := prefs.Region(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RegionMetro, stored)
}

func TestRegionFlow_ForcePromptWithStoredRegion(t *testing.T) {
	flow, prefs := newTestRegionFlow()
	ctx := context.Background()
	require.NoError(t, prefs.SetRegion(ctx, models.RegionCenter))
	picker := newRecordingPicker()
	flow.AttachPicker(picker)

	res := promptAsync(ctx, flow.ForcePrompt)
	waitShown(t, picker)
	require.NoError(t, flow.Select(ctx, models.RegionNorth))

	assert.Equal(t, models.RegionNorth, waitResult(t, res).region)
}

func TestRegionFlow_Select_Errors(t *testing.T) {
	flow, _ := newTestRegionFlow()
	ctx := context.Background()

	assert.ErrorIs(t, flow.Select(ctx, models.RegionNorth), ErrNoPendingSelection)
	assert.ErrorIs(t, flow.Select(ctx, models.RegionUndefined), ErrInvalidRegion)
	assert.ErrorIs(t, flow.Select(ctx, "XX"), ErrInvalidRegion)
}

func TestRegionFlow_Select_PersistFailureKeepsPromptOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	flow := NewRegionFlow(store.NewPreferences(kv), nopLogger)
	ctx := context.Background()
	picker := newRecordingPicker()
	flow.AttachPicker(picker)

	kv.EXPECT().Get(gomock.Any(), store.KeyRegion).Return("", store.ErrKeyNotFound).Times(2)
	gomock.InOrder(
		kv.EXPECT().Set(gomock.Any(), store.KeyRegion, "ZS").Return(errors.New("read-only")),
		kv.EXPECT().Set(gomock.Any(), store.KeyRegion, "ZS").Return(nil),
	)

	res := promptAsync(ctx, flow.GetOrPromptRegion)
	waitShown(t, picker)

	err := flow.Select(ctx, models.RegionSouth)
	assert.ErrorIs(t, err, ErrRegionNotSaved)
	assert.True(t, flow.Pending())

	require.NoError(t, flow.Select(ctx, models.RegionSouth))
	assert.Equal(t, models.RegionSouth, waitResult(t, res).region)
}

func TestRegionFlow_DetachLastPickerResolvesUndefined(t *testing.T) {
	flow, prefs := newTestRegionFlow()
	ctx := context.Background()
	picker := newRecordingPicker()
	detach := flow.AttachPicker(picker)

	res := promptAsync(ctx, flow.GetOrPromptRegion)
	waitShown(t, picker)

	detach()
	detach()

	got := waitResult(t, res)
	require.NoError(t, got.err)
	assert.Equal(t, models.RegionUndefined, got.region)
	assert.False(t, flow.Pending())

	stored, err := prefs.Region(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RegionUndefined, stored)
}

func TestRegionFlow_DetachOneOfTwoKeepsPrompt(t *testing.T) {
	flow, _ := newTestRegionFlow()
	ctx := context.Background()
	p1, p2 := newRecordingPicker(), newRecordingPicker()
	detach1 := flow.AttachPicker(p1)
	flow.AttachPicker(p2)

	res := promptAsync(ctx, flow.GetOrPromptRegion)
	waitShown(t, p1)
	waitShown(t, p2)

	detach1()
	assert.True(t, flow.Pending())

	require.NoError(t, flow.Select(ctx, models.RegionNorth))
	assert.Equal(t, models.RegionNorth, waitResult(t, res).region)
}

func TestRegionFlow_LateAttachShowsPendingPrompt(t *testing.T) {
	flow, _ := newTestRegionFlow()
	ctx := context.Background()
	first := newRecordingPicker()
	flow.AttachPicker(first)

	res := promptAsync(ctx, flow.GetOrPromptRegion)
	waitShown(t, first)

	late := newRecordingPicker()
	flow.AttachPicker(late)
	waitShown(t, late)

	require.NoError(t, flow.Select(ctx, models.RegionCenter))
	assert.Equal(t, models.RegionCenter, waitResult(t, res).region)
}

func TestRegionFlow_ContextCancelled(t *testing.T) {
	flow, _ := newTestRegionFlow()
	picker := newRecordingPicker()
	flow.AttachPicker(picker)

	ctx, cancel := context.WithCancel(context.Background())
	res := promptAsync(ctx, flow.GetOrPromptRegion)
	waitShown(t, picker)

	cancel()

	got := waitResult(t, res)
	assert.ErrorIs(t, got.err, context.Canceled)
	assert.Equal(t, models.RegionUndefined, got.region)
	assert.False(t, flow.Pending())
	_, dismisses := picker.counts()
	assert.Equal(t, 1, dismisses)

	// the flow is usable again
	assert.ErrorIs(t, flow.Select(context.Background(), models.RegionNorth), ErrNoPendingSelection)
}

func TestRegionFlow_CurrentRegion(t *testing.T) {
	flow, prefs := newTestRegionFlow()
	ctx := context.Background()

	region, err := flow.CurrentRegion(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RegionUndefined, region)

	require.NoError(t, prefs.SetRegion(ctx, models.RegionMetro))
	region, err = flow.CurrentRegion(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RegionMetro, region)
}
