// ABOUTME: Core data models for walk selections and recommendations
// ABOUTME: Provides coordinate validation and duration preference analysis

package models

import (
	"fmt"
	"math"
)

// DefaultDurationMin is assumed when a history record carries no duration.
const DefaultDurationMin = 30

// LatLng is a coordinate pair in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ValidateCoordinates checks if latitude and longitude are within valid ranges.
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return fmt.Errorf("coordinates cannot be NaN")
	}
	if math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return fmt.Errorf("coordinates cannot be infinite")
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// PathDescription is one named segment of a recommendation's narrative.
type PathDescription struct {
	PathName    string `json:"path_name"`
	Description string `json:"description"`
}

// DurationPreference classifies how long a user tends to walk.
type DurationPreference string

const (
	PreferenceShort  DurationPreference = "short"
	PreferenceMedium DurationPreference = "medium"
	PreferenceLong   DurationPreference = "long"
)

// ClassifyDuration maps an average walk duration in minutes to a preference bucket.
func ClassifyDuration(avgMin float64) DurationPreference {
	switch {
	case avgMin <= 30:
		return PreferenceShort
	case avgMin <= 90:
		return PreferenceMedium
	default:
		return PreferenceLong
	}
}
