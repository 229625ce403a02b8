// ABOUTME: Nominatim reverse/forward geocoding scoped to one district
// ABOUTME: Rate-limited to respect the public usage policy

package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/seyeon-q/soomgil/internal/models"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// DefaultBoundary is the administrative district walks are limited to.
const DefaultBoundary = "동대문구"

// searchPrefix narrows forward searches to the supported district.
const searchPrefix = "서울특별시 동대문구 "

// ErrOutsideBoundary marks coordinates that resolve outside the supported
// district. The pending selection should be discarded, not saved.
var ErrOutsideBoundary = errors.New("location outside supported boundary")

// ErrNoResult means a forward search matched nothing, even after the
// spacing-variant retry.
var ErrNoResult = errors.New("address not found")

// Client resolves coordinates and addresses against Nominatim.
type Client struct {
	baseURL    string
	boundary   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a geocoding client. Empty baseURL and boundary fall back
// to the public instance and the supported district.
func NewClient(baseURL, boundary string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if boundary == "" {
		boundary = DefaultBoundary
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		boundary:   boundary,
		httpClient: httpClient,
		// Nominatim allows one request per second.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

type reverseResponse struct {
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
	NameDetails struct {
		Name string `json:"name"`
	} `json:"namedetails"`
}

// Reverse resolves coordinates to a short human-readable address. It returns
// ErrOutsideBoundary when the spot is not inside the supported district.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	query.Set("format", "json")
	query.Set("addressdetails", "1")
	query.Set("namedetails", "1")

	var res reverseResponse
	if err := c.get(ctx, "/reverse", query, &res); err != nil {
		return "", err
	}

	if !strings.Contains(res.DisplayName, c.boundary) {
		return "", ErrOutsideBoundary
	}
	return buildAddress(res), nil
}

// buildAddress assembles city, district, road and house number, appending the
// named building when Nominatim knows one.
func buildAddress(res reverseResponse) string {
	addr := res.Address
	city := firstOf(addr, "city", "state")
	district := firstOf(addr, "city_district", "borough", "county", "state_district")
	road := addr["road"]
	houseNo := addr["house_number"]

	base := strings.TrimSpace(strings.Join([]string{city, district, road, houseNo}, " "))
	base = strings.Join(strings.Fields(base), " ")

	if res.NameDetails.Name != "" {
		return base + " (" + res.NameDetails.Name + ")"
	}
	return base
}

func firstOf(addr map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := addr[k]; v != "" {
			return v
		}
	}
	return ""
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Road-name queries often come in without spaces; Nominatim wants them split.
var (
	roAlleyPattern = regexp.MustCompile(`로(\d+)길`)
	alleyPattern   = regexp.MustCompile(`길(\d+)`)
)

// Search resolves a free-text address inside the supported district to
// coordinates. A miss is retried once with the spaced road-name variant.
func (c *Client) Search(ctx context.Context, queryText string) (*models.LatLng, error) {
	queryText = strings.TrimSpace(queryText)

	loc, err := c.searchOnce(ctx, searchPrefix+queryText)
	if err != nil || loc != nil {
		return loc, err
	}

	spaced := roAlleyPattern.ReplaceAllString(queryText, "로 $1길")
	spaced = alleyPattern.ReplaceAllString(spaced, "길 $1")
	loc, err = c.searchOnce(ctx, searchPrefix+spaced)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrNoResult
	}
	return loc, nil
}

func (c *Client) searchOnce(ctx context.Context, fullQuery string) (*models.LatLng, error) {
	query := url.Values{}
	query.Set("q", fullQuery)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("addressdetails", "1")
	query.Set("namedetails", "1")

	var results []searchResult
	if err := c.get(ctx, "/search", query, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude: %w", err)
	}
	return &models.LatLng{Lat: lat, Lng: lng}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "soomgil-cli")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocode request: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode geocode response: %w", err)
	}
	return nil
}
