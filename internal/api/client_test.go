// ABOUTME: Tests for the Soomgil API client against a local test server
// ABOUTME: Covers request shapes, decode paths, failures and the local fallback

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seyeon-q/soomgil/internal/geojson"
	"github.com/seyeon-q/soomgil/internal/history"
	"github.com/seyeon-q/soomgil/internal/models"
)

func TestRecommendRoute(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/routes/recommend" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("expected an X-Request-ID header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"geojson": {"type": "FeatureCollection", "features": [
				{"geometry": {"type": "LineString", "coordinates": [[37.58, 127.04], [37.59, 127.05]]}}
			]},
			"description": [{"path_name": "청계천 산책로", "description": "물가를 따라 걷는 길"}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	rec, err := client.RecommendRoute(context.Background(), 37.58, 127.04, 40)
	if err != nil {
		t.Fatalf("RecommendRoute: %v", err)
	}

	if gotBody["lat"] != 37.58 || gotBody["lon"] != 127.04 || gotBody["duration"] != float64(40) {
		t.Errorf("unexpected request body: %v", gotBody)
	}

	coords := geojson.RouteCoordinates(rec.Geojson)
	if len(coords) != 2 {
		t.Errorf("expected 2 route coordinates, got %d", len(coords))
	}
	if len(rec.Description) != 1 || rec.Description[0].PathName != "청계천 산책로" {
		t.Errorf("unexpected description: %+v", rec.Description)
	}
}

func TestRecommendRoute_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.RecommendRoute(context.Background(), 37.58, 127.04, 40)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestRecommendRoute_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before use

	client := NewClient(srv.URL, nil)
	_, err := client.RecommendRoute(context.Background(), 37.58, 127.04, 40)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestFallbackRecommendation(t *testing.T) {
	duration := 40
	rec := FallbackRecommendation(&models.LatLng{Lat: 37.58, Lng: 127.04}, &duration)

	coords := geojson.RouteCoordinates(rec.Geojson)
	if len(coords) != 5 {
		t.Errorf("expected the 5-point placeholder path, got %d points", len(coords))
	}
	if len(rec.Description) != 1 || rec.Description[0].PathName != "추천 경로" {
		t.Errorf("unexpected fallback description: %+v", rec.Description)
	}
}

func TestGetPersonalizedMessages(t *testing.T) {
	var gotBody struct {
		UserHistory []history.Record `json:"user_history"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/personalized-messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"messages": ["오늘도 걸어볼까요?", "청계천이 기다려요"],
			"latest_coordinates": {"lat": 37.58, "lng": 127.04}
		}`))
	}))
	defer srv.Close()

	duration := 30
	records := []history.Record{{Date: "2025-03-14", Title: "경로", StartAddress: "미지정", DurationMin: &duration}}

	client := NewClient(srv.URL, nil)
	out, err := client.GetPersonalizedMessages(context.Background(), records)
	if err != nil {
		t.Fatalf("GetPersonalizedMessages: %v", err)
	}

	if len(gotBody.UserHistory) != 1 || gotBody.UserHistory[0].Title != "경로" {
		t.Errorf("history not forwarded: %+v", gotBody.UserHistory)
	}
	if !out.Success || len(out.Messages) != 2 {
		t.Errorf("unexpected response: %+v", out)
	}
	if out.LatestCoordinates == nil || out.LatestCoordinates.Lat != 37.58 {
		t.Errorf("latest coordinates not decoded: %+v", out.LatestCoordinates)
	}
}

func TestGenerateDurationRoute(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/duration-route" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"geojson": {"features": [{"geometry": {"coordinates": [[37.58, 127.04]]}}]},
			"description": "짧은 산책에 어울리는 경로입니다.",
			"recommended_place": {"name": "용두공원"}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	out, err := client.GenerateDurationRoute(context.Background(), models.LatLng{Lat: 37.58, Lng: 127.04}, models.PreferenceShort)
	if err != nil {
		t.Fatalf("GenerateDurationRoute: %v", err)
	}

	if gotBody["start_lat"] != 37.58 || gotBody["start_lon"] != 127.04 {
		t.Errorf("unexpected start in request: %v", gotBody)
	}
	if gotBody["user_preference"] != string(models.PreferenceShort) {
		t.Errorf("user_preference = %v", gotBody["user_preference"])
	}
	if out.RecommendedPlace == nil || out.RecommendedPlace.Name != "용두공원" {
		t.Errorf("recommended place not decoded: %+v", out.RecommendedPlace)
	}
}

func TestGenerateMusic(t *testing.T) {
	audio := []byte{0xFF, 0xFB, 0x90, 0x00}
	var gotMood string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Mood string `json:"mood"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		gotMood = body.Mood
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(audio)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	data, contentType, err := client.GenerateMusic(context.Background(), "")
	if err != nil {
		t.Fatalf("GenerateMusic: %v", err)
	}

	if gotMood != "mysterious and cinematic" {
		t.Errorf("empty mood should use the default, got %q", gotMood)
	}
	if contentType != "audio/mpeg" {
		t.Errorf("content type = %q", contentType)
	}
	if len(data) != len(audio) {
		t.Errorf("audio bytes not passed through: %d bytes", len(data))
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/health" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	if err := client.Health(context.Background()); err != nil {
		t.Errorf("Health: %v", err)
	}
}
