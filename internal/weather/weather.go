// Package weather fetches current conditions from the Open-Meteo API for
// the trip's locations and maps WMO weather codes to display labels.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/Mahe1235/Thai2026/internal/trip"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Current is one observation for a location.
type Current struct {
	Temp      int    `json:"temp"`
	Code      int    `json:"code"`
	Label     string `json:"label"`
	Emoji     string `json:"emoji"`
	Humidity  int    `json:"humidity"`
	WindSpeed int    `json:"wind_speed"`
	Location  string `json:"location"`
}

// Info is the display mapping for a WMO weather code.
type Info struct {
	Label string
	Emoji string
}

// wmoCodes maps WMO weather codes to labels. Lookup falls back to the
// closest code at or below the reported one, since Open-Meteo reports
// intermediate codes the table omits.
var wmoCodes = map[int]Info{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Foggy", "🌫️"},
	48: {"Icy fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Drizzle", "🌦️"},
	61: {"Light rain", "🌧️"},
	63: {"Rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	80: {"Rain showers", "🌦️"},
	81: {"Rain showers", "🌦️"},
	82: {"Heavy showers", "⛈️"},
	95: {"Thunderstorm", "⛈️"},
	99: {"Thunderstorm w/ hail", "⛈️"},
}

// CodeInfo returns the label and emoji for a WMO weather code.
func CodeInfo(code int) Info {
	best := -1
	for k := range wmoCodes {
		if k <= code && k > best {
			best = k
		}
	}
	if best < 0 {
		return Info{Label: "Unknown", Emoji: "🌡️"}
	}
	return wmoCodes[best]
}

// Client fetches current conditions with a short-lived per-location cache
// so dashboard refreshes do not hammer the upstream API.
type Client struct {
	baseURL string
	client  *http.Client
	ttl     time.Duration

	mu    sync.Mutex
	cache map[string]cached
}

type cached struct {
	current Current
	at      time.Time
}

// NewClient creates a weather client. baseURL overrides the Open-Meteo
// endpoint when non-empty (used by tests).
func NewClient(baseURL string, ttl time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		ttl:   ttl,
		cache: make(map[string]cached),
	}
}

type meteoResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// CurrentFor returns current conditions for a location, serving from
// cache when a fresh observation exists.
func (c *Client) CurrentFor(ctx context.Context, loc trip.Location) (Current, error) {
	c.mu.Lock()
	if hit, ok := c.cache[loc.Name]; ok && time.Since(hit.at) < c.ttl {
		c.mu.Unlock()
		return hit.current, nil
	}
	c.mu.Unlock()

	current, err := c.fetch(ctx, loc)
	if err != nil {
		return Current{}, err
	}

	c.mu.Lock()
	c.cache[loc.Name] = cached{current: current, at: time.Now()}
	c.mu.Unlock()
	return current, nil
}

func (c *Client) fetch(ctx context.Context, loc trip.Location) (Current, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.2f", loc.Lat))
	q.Set("longitude", fmt.Sprintf("%.2f", loc.Lon))
	q.Set("current", "temperature_2m,weather_code,relative_humidity_2m,wind_speed_10m")
	q.Set("timezone", "Asia/Bangkok")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Current{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Current{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Current{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body meteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Current{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	info := CodeInfo(body.Current.WeatherCode)
	return Current{
		Temp:      int(body.Current.Temperature + 0.5),
		Code:      body.Current.WeatherCode,
		Label:     info.Label,
		Emoji:     info.Emoji,
		Humidity:  int(body.Current.Humidity),
		WindSpeed: int(body.Current.WindSpeed + 0.5),
		Location:  loc.Name,
	}, nil
}
