package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_Valid(t *testing.T) {
	for _, r := range Regions {
		assert.True(t, r.Valid(), string(r))
		assert.True(t, r.Defined(), string(r))
	}
	assert.False(t, RegionUndefined.Valid())
	assert.False(t, RegionUndefined.Defined())
	assert.False(t, Region("").Defined())
	assert.False(t, Region("zs").Valid())
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("ZS")
	require.NoError(t, err)
	assert.Equal(t, RegionSouth, r)

	r, err = ParseRegion("NONE")
	require.Error(t, err)
	assert.Equal(t, RegionUndefined, r)
}

func TestMission_Open(t *testing.T) {
	assert.True(t, Mission{Status: MissionPending}.Open())
	assert.True(t, Mission{Status: MissionCompleted}.Open())
	assert.True(t, Mission{Status: "escalated"}.Open())
	assert.False(t, Mission{Status: MissionRescued}.Open())
}

func TestMission_UnknownStatusKept(t *testing.T) {
	var m Mission
	require.NoError(t, json.Unmarshal([]byte(`{"id":9,"status":"escalated","points":3}`), &m))
	assert.Equal(t, MissionStatus("escalated"), m.Status)
	assert.Equal(t, int64(9), m.EntityID())
}

func TestSheltersResponse_RawField(t *testing.T) {
	var resp SheltersResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":true}`), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Shelters)

	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"shelters":[{"id":1}]}`), &resp))
	assert.JSONEq(t, `[{"id":1}]`, string(resp.Shelters))
}

func TestChatMessage_Mine(t *testing.T) {
	m := ChatMessage{Token: "abc"}
	assert.True(t, m.Mine("abc"))
	assert.False(t, m.Mine("other"))
	assert.False(t, ChatMessage{}.Mine(""))
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc123")
	assert.Equal(t, "v1.2.0", info.Version())
	assert.Equal(t, "N/A", info.Date())
	assert.Equal(t, "relief-sync v1.2.0 (abc123, N/A)", info.String())
	assert.Equal(t, "N/A", AppBuildInfo{}.Version())
}
