package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aidlink/backend/internal/geo"
)

// NominatimGeocoder resolves locations through the public OSM Nominatim
// service. Nominatim requires a User-Agent and asks for at most one request
// per second, so lookups are cached and paced.
type NominatimGeocoder struct {
	BaseURL     string
	UserAgent   string
	MinInterval time.Duration
	Client      *http.Client

	mu        sync.Mutex
	lastReqAt time.Time
	cache     map[string]geo.Point
}

type nominatimItem struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, location string) (geo.Point, error) {
	if strings.TrimSpace(location) == "" {
		return geo.Point{}, ErrNotFound
	}
	if g.Client == nil {
		g.Client = &http.Client{Timeout: 5 * time.Second}
	}
	if g.BaseURL == "" {
		g.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if g.UserAgent == "" {
		g.UserAgent = "AidLink"
	}
	if g.MinInterval <= 0 {
		g.MinInterval = time.Second
	}

	g.mu.Lock()
	if g.cache == nil {
		g.cache = map[string]geo.Point{}
	}
	if cached, ok := g.cache[location]; ok {
		g.mu.Unlock()
		return cached, nil
	}
	sleepFor := time.Until(g.lastReqAt.Add(g.MinInterval))
	if sleepFor > 0 {
		g.mu.Unlock()
		time.Sleep(sleepFor)
		g.mu.Lock()
	}
	g.lastReqAt = time.Now()
	g.mu.Unlock()

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", g.BaseURL, url.QueryEscape(location))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return geo.Point{}, ErrNotFound
	}
	req.Header.Set("User-Agent", g.UserAgent)

	resp, err := g.Client.Do(req)
	if err != nil {
		return geo.Point{}, ErrNotFound
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return geo.Point{}, ErrNotFound
	}

	var items []nominatimItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return geo.Point{}, ErrNotFound
	}
	point, err := parseNominatimItems(items)
	if err != nil {
		return geo.Point{}, err
	}

	g.mu.Lock()
	g.cache[location] = point
	g.mu.Unlock()

	return point, nil
}

func parseNominatimItems(items []nominatimItem) (geo.Point, error) {
	if len(items) == 0 {
		return geo.Point{}, ErrNotFound
	}
	lat, err := strconv.ParseFloat(items[0].Lat, 64)
	if err != nil {
		return geo.Point{}, ErrNotFound
	}
	lon, err := strconv.ParseFloat(items[0].Lon, 64)
	if err != nil {
		return geo.Point{}, ErrNotFound
	}
	return geo.Point{Lat: lat, Lon: lon}, nil
}
