package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrack(t *testing.T) {
	track := ParseTrack(" software_engineering ")
	require.NotNil(t, track)
	assert.Equal(t, TrackSoftwareEngineering, *track)

	assert.Nil(t, ParseTrack("ASTROLOGY"))
	assert.Nil(t, ParseTrack(""))
}

func TestTrackFromOrdinal(t *testing.T) {
	track := TrackFromOrdinal(2)
	require.NotNil(t, track)
	assert.Equal(t, TrackDataAnalytics, *track)

	assert.Nil(t, TrackFromOrdinal(0))
	assert.Nil(t, TrackFromOrdinal(5))
}

func TestTrackOrdinalAndValid(t *testing.T) {
	assert.Equal(t, 1, TrackSoftwareEngineering.Ordinal())
	assert.Equal(t, 4, TrackECommerce.Ordinal())
	assert.True(t, TrackNetworkSecurity.Valid())

	unknown := MajorTrack("ASTROLOGY")
	assert.Equal(t, 0, unknown.Ordinal())
	assert.False(t, unknown.Valid())
	assert.Equal(t, "ASTROLOGY", unknown.DisplayName())
}
