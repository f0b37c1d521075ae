package models

import "strings"

// MajorTrack is a student's declared specialization. The set is closed:
// curriculum policy is defined per track and an unknown track has no
// electives, so new values must come with matching curriculum data.
type MajorTrack string

const (
	TrackSoftwareEngineering MajorTrack = "SOFTWARE_ENGINEERING"
	TrackDataAnalytics       MajorTrack = "DATA_ANALYTICS"
	TrackNetworkSecurity     MajorTrack = "NETWORK_SECURITY"
	TrackECommerce           MajorTrack = "E_COMMERCE"
)

// AllTracks lists every track in menu order.
var AllTracks = []MajorTrack{
	TrackSoftwareEngineering,
	TrackDataAnalytics,
	TrackNetworkSecurity,
	TrackECommerce,
}

// TrackFromOrdinal maps a 1-based menu index to a track. Returns nil for
// out-of-range values.
func TrackFromOrdinal(n int) *MajorTrack {
	if n < 1 || n > len(AllTracks) {
		return nil
	}
	t := AllTracks[n-1]
	return &t
}

// ParseTrack resolves a track from its enum name, case-insensitively.
// Returns nil when the name does not match any known track.
func ParseTrack(raw string) *MajorTrack {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for _, t := range AllTracks {
		if string(t) == name {
			track := t
			return &track
		}
	}
	return nil
}

// Ordinal returns the 1-based menu index of the track, or 0 if unknown.
func (t MajorTrack) Ordinal() int {
	for i, candidate := range AllTracks {
		if candidate == t {
			return i + 1
		}
	}
	return 0
}

// DisplayName returns the human-facing label for the track.
func (t MajorTrack) DisplayName() string {
	switch t {
	case TrackSoftwareEngineering:
		return "Software Engineering"
	case TrackDataAnalytics:
		return "Data Analytics"
	case TrackNetworkSecurity:
		return "Network & Security"
	case TrackECommerce:
		return "E-Commerce"
	default:
		return string(t)
	}
}

// Valid reports whether the track is one of the closed set.
func (t MajorTrack) Valid() bool {
	return t.Ordinal() != 0
}
