// ABOUTME: Tests for district-scoped geocoding against a local test server
// ABOUTME: Boundary rejection, address assembly and the spaced-road retry

package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReverse_InsideBoundary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("expected format=json")
		}
		_, _ = w.Write([]byte(`{
			"display_name": "서울역사박물관, 회기로, 동대문구, 서울특별시, 대한민국",
			"address": {
				"city": "서울특별시",
				"borough": "동대문구",
				"road": "회기로",
				"house_number": "85"
			},
			"namedetails": {"name": "경희대학교"}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	addr, err := client.Reverse(context.Background(), 37.5969, 127.0519)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}

	want := "서울특별시 동대문구 회기로 85 (경희대학교)"
	if addr != want {
		t.Errorf("address = %q, want %q", addr, want)
	}
}

func TestReverse_NoBuildingName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"display_name": "장안동, 동대문구, 서울특별시",
			"address": {"city": "서울특별시", "city_district": "동대문구", "road": "장한로"},
			"namedetails": {}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	addr, err := client.Reverse(context.Background(), 37.57, 127.06)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	if addr != "서울특별시 동대문구 장한로" {
		t.Errorf("address = %q", addr)
	}
}

func TestReverse_OutsideBoundary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"display_name": "세종대로, 중구, 서울특별시, 대한민국",
			"address": {"city": "서울특별시", "borough": "중구", "road": "세종대로"}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	_, err := client.Reverse(context.Background(), 37.5665, 126.9780)
	if !errors.Is(err, ErrOutsideBoundary) {
		t.Errorf("expected ErrOutsideBoundary, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`[{"lat": "37.5838", "lon": "127.0549"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	loc, err := client.Search(context.Background(), "회기로 85")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery != "서울특별시 동대문구 회기로 85" {
		t.Errorf("query = %q, want the district-prefixed address", gotQuery)
	}
	if loc.Lat != 37.5838 || loc.Lng != 127.0549 {
		t.Errorf("location = %+v", loc)
	}
}

func TestSearch_SpacedRetry(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		if len(queries) == 1 {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"lat": "37.574", "lon": "127.039"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	loc, err := client.Search(context.Background(), "약령시로10길")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if loc == nil {
		t.Fatalf("expected a result from the spaced retry")
	}

	if len(queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(queries))
	}
	if queries[1] != "서울특별시 동대문구 약령시로 10길" {
		t.Errorf("retry query = %q, want the spaced road-name variant", queries[1])
	}
}

func TestSearch_NoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nil)
	_, err := client.Search(context.Background(), "존재하지 않는 주소")
	if !errors.Is(err, ErrNoResult) {
		t.Errorf("expected ErrNoResult, got %v", err)
	}
}
