// ABOUTME: Typed endpoints of the Soomgil API
// ABOUTME: Route recommendation, personalization, mood music, health

package api

import (
	"context"
	"net/http"

	"github.com/seyeon-q/soomgil/internal/geojson"
	"github.com/seyeon-q/soomgil/internal/history"
	"github.com/seyeon-q/soomgil/internal/models"
)

// Recommendation is the payload of a recommended route.
type Recommendation struct {
	Geojson     *geojson.FeatureCollection `json:"geojson"`
	Description []models.PathDescription   `json:"description"`
}

// RecommendRoute requests a walking route for the start coordinate and
// duration in minutes.
func (c *Client) RecommendRoute(ctx context.Context, lat, lon float64, durationMin int) (*Recommendation, error) {
	req := struct {
		Lat      float64 `json:"lat"`
		Lon      float64 `json:"lon"`
		Duration int     `json:"duration"`
	}{lat, lon, durationMin}

	var rec Recommendation
	if err := c.call(ctx, http.MethodPost, "/routes/recommend", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// fallbackDescription is shown when the API could not produce a route and the
// placeholder path is used instead.
var fallbackDescription = []models.PathDescription{{
	PathName:    "추천 경로",
	Description: "완만한 보행로와 휴식 포인트를 고려해 추천된 산책 경로입니다.",
}}

// FallbackRecommendation synthesizes a local placeholder recommendation so a
// failed API call never blocks the walk flow.
func FallbackRecommendation(start *models.LatLng, durationMin *int) *Recommendation {
	fc, err := geojson.FromRoute(geojson.MockRoute(start, durationMin))
	if err != nil {
		fc = &geojson.FeatureCollection{}
	}
	return &Recommendation{Geojson: fc, Description: fallbackDescription}
}

// PersonalizedMessages is the response of the personalization endpoint: up to
// two messages plus, optionally, the coordinates of the latest visited spot.
type PersonalizedMessages struct {
	Success           bool           `json:"success"`
	Messages          []string       `json:"messages"`
	LatestCoordinates *models.LatLng `json:"latest_coordinates"`
}

// DefaultMessage is shown when personalization is unavailable.
const DefaultMessage = "🌼 동대문구의 숨은 산책로를 찾아보아요!"

// GetPersonalizedMessages sends the full walk history and returns tailored
// greeting messages.
func (c *Client) GetPersonalizedMessages(ctx context.Context, records []history.Record) (*PersonalizedMessages, error) {
	req := struct {
		UserHistory []history.Record `json:"user_history"`
	}{records}

	var out PersonalizedMessages
	if err := c.call(ctx, http.MethodPost, "/personalized-messages", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DurationRoute is the response of the duration-personalized recommendation.
type DurationRoute struct {
	Success          bool                       `json:"success"`
	Geojson          *geojson.FeatureCollection `json:"geojson"`
	Description      string                     `json:"description"`
	RecommendedPlace *struct {
		Name string `json:"name"`
	} `json:"recommended_place"`
	Error string `json:"error"`
}

// GenerateDurationRoute requests a route tailored to the user's duration
// preference bucket.
func (c *Client) GenerateDurationRoute(ctx context.Context, start models.LatLng, pref models.DurationPreference) (*DurationRoute, error) {
	req := struct {
		StartLat       float64 `json:"start_lat"`
		StartLon       float64 `json:"start_lon"`
		UserPreference string  `json:"user_preference"`
	}{start.Lat, start.Lng, string(pref)}

	var out DurationRoute
	if err := c.call(ctx, http.MethodPost, "/duration-route", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateMusic requests mood-keyed music and returns the raw audio bytes
// with their content type.
func (c *Client) GenerateMusic(ctx context.Context, mood string) ([]byte, string, error) {
	if mood == "" {
		mood = "mysterious and cinematic"
	}
	req := struct {
		Mood string `json:"mood"`
	}{mood}
	return c.callRaw(ctx, http.MethodPost, "/generate-music", req)
}

// Health pings the API.
func (c *Client) Health(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/health", nil, nil)
}

// Statistics fetches the service-wide usage statistics blob.
func (c *Client) Statistics(ctx context.Context) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.call(ctx, http.MethodGet, "/statistics", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
