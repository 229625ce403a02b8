// ABOUTME: GeoJSON types for recommended route geometry
// ABOUTME: Extracts route coordinates and builds the offline fallback path

package geojson

import (
	"encoding/json"

	"github.com/seyeon-q/soomgil/internal/models"
)

// FeatureCollection represents a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type,omitempty"`
	Features []Feature `json:"features"`
}

// Feature represents a GeoJSON Feature.
type Feature struct {
	Type       string                 `json:"type,omitempty"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// Geometry represents a GeoJSON Geometry. Coordinates stay raw because the
// recommendation API nests them differently per geometry type.
type Geometry struct {
	Type        string          `json:"type,omitempty"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// PointCoordinates is one route vertex. The recommendation API emits
// [lat, lng] pairs, not GeoJSON's standard [lng, lat] ordering; keep its convention.
type PointCoordinates [2]float64

// RouteCoordinates pulls the walkable path out of a recommendation's first
// feature. Missing or malformed geometry yields nil.
func RouteCoordinates(fc *FeatureCollection) []PointCoordinates {
	if fc == nil || len(fc.Features) == 0 {
		return nil
	}
	var coords []PointCoordinates
	if err := json.Unmarshal(fc.Features[0].Geometry.Coordinates, &coords); err != nil {
		return nil
	}
	return coords
}

// FromRoute wraps a coordinate path in a single-feature collection, the same
// shape the recommendation API returns.
func FromRoute(path []PointCoordinates) (*FeatureCollection, error) {
	raw, err := json.Marshal(path)
	if err != nil {
		return nil, err
	}
	return &FeatureCollection{
		Features: []Feature{{Geometry: Geometry{Coordinates: raw}}},
	}, nil
}

// Seoul City Hall, the fallback start when none was selected.
var defaultStart = models.LatLng{Lat: 37.5665, Lng: 126.9780}

// MockRoute synthesizes a placeholder path around the start coordinate: a
// fixed 5-point offset pattern scaled by the walk duration. Used when the
// recommendation API is unreachable so the flow is never blocked.
func MockRoute(start *models.LatLng, durationMin *int) []PointCoordinates {
	if start == nil {
		start = &defaultStart
	}

	duration := models.DefaultDurationMin
	if durationMin != nil && *durationMin != 0 {
		duration = *durationMin
	}
	step := float64(duration) * 0.0001
	if step < 0.001 {
		step = 0.001
	}

	lat, lng := start.Lat, start.Lng
	return []PointCoordinates{
		{lat, lng},
		{lat + step, lng + step},
		{lat + step*2, lng},
		{lat, lng - step},
		{lat, lng},
	}
}

// ToJSON serializes a FeatureCollection.
func (fc *FeatureCollection) ToJSON() ([]byte, error) {
	return json.Marshal(fc)
}

// ToJSONIndent serializes a FeatureCollection with indentation.
func (fc *FeatureCollection) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(fc, "", "  ")
}
