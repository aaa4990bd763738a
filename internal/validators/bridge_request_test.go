// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-relief-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBridgeRequestValidator(t *testing.T) {
	v := NewBridgeRequestValidator()
	require.NotNil(t, v)
	_, ok := v.(*BridgeRequestValidator)
	assert.True(t, ok)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewBridgeRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "region value", obj: models.RegionSelectionRequest{Region: "ZS"}},
		{name: "region pointer", obj: &models.RegionSelectionRequest{Region: "RM"}},
		{name: "chat value", obj: models.ChatPostRequest{Message: "hi"}},
		{name: "chat pointer", obj: &models.ChatPostRequest{Message: "hi"}},
		{name: "profile value", obj: models.ProfileRequest{UserName: "Ana"}},
		{name: "profile pointer", obj: &models.ProfileRequest{UserName: "Ana"}},
		{name: "mission id", obj: MissionID(4)},
		{name: "unsupported", obj: 42, wantErr: ErrUnsupportedType},
		{name: "nil", obj: nil, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateRegionSelection(t *testing.T) {
	v := &BridgeRequestValidator{}

	tests := []struct {
		name    string
		region  string
		wantErr error
	}{
		{name: "center", region: "CTR"},
		{name: "west", region: "ZO"},
		{name: "sentinel", region: "NONE", wantErr: ErrInvalidRegion},
		{name: "empty", region: "", wantErr: ErrInvalidRegion},
		{name: "lower case", region: "zs", wantErr: ErrInvalidRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.validateRegionSelection(models.RegionSelectionRequest{Region: tt.region})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateChatPost(t *testing.T) {
	v := &BridgeRequestValidator{}

	assert.NoError(t, v.validateChatPost(models.ChatPostRequest{Message: "need water"}))
	assert.ErrorIs(t, v.validateChatPost(models.ChatPostRequest{Message: "   "}), ErrEmptyMessage)
	assert.ErrorIs(t, v.validateChatPost(models.ChatPostRequest{Message: strings.Repeat("я", MaxMessageLength+1)}), ErrMessageTooLong)
	assert.NoError(t, v.validateChatPost(models.ChatPostRequest{Message: strings.Repeat("я", MaxMessageLength)}))
	assert.ErrorIs(t, v.validateChatPost(models.ChatPostRequest{Message: "x"}, "unknown"), ErrUnknownField)
}

func TestValidateProfile(t *testing.T) {
	v := &BridgeRequestValidator{}

	assert.NoError(t, v.validateProfile(models.ProfileRequest{UserName: " Bia "}))
	assert.ErrorIs(t, v.validateProfile(models.ProfileRequest{}), ErrEmptyUserName)
	assert.ErrorIs(t, v.validateProfile(models.ProfileRequest{UserName: strings.Repeat("a", MaxUserNameLength+1)}), ErrUserNameTooLong)
}

func TestValidateMissionID(t *testing.T) {
	v := &BridgeRequestValidator{}

	assert.NoError(t, v.validateMissionID(1))
	assert.ErrorIs(t, v.validateMissionID(0), ErrInvalidMissionID)
	assert.ErrorIs(t, v.validateMissionID(-3), ErrInvalidMissionID)
	assert.ErrorIs(t, v.validateMissionID(1, FieldRegion), ErrUnknownField)
}
