package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aidlink/backend/internal/geo"
)

// GoogleGeocoder resolves locations through the Google Geocoding API.
// It shares the Places credential; without one every lookup is ErrNotFound.
type GoogleGeocoder struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

type googleGeocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, location string) (geo.Point, error) {
	if strings.TrimSpace(location) == "" || strings.TrimSpace(g.APIKey) == "" {
		return geo.Point{}, ErrNotFound
	}
	if g.Client == nil {
		g.Client = &http.Client{Timeout: 5 * time.Second}
	}
	base := g.BaseURL
	if base == "" {
		base = "https://maps.googleapis.com/maps/api/geocode/json"
	}

	endpoint := base + "?address=" + url.QueryEscape(location) + "&key=" + url.QueryEscape(g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return geo.Point{}, ErrNotFound
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return geo.Point{}, ErrNotFound
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return geo.Point{}, ErrNotFound
	}

	var body googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return geo.Point{}, ErrNotFound
	}
	if body.Status != "OK" || len(body.Results) == 0 {
		return geo.Point{}, ErrNotFound
	}
	loc := body.Results[0].Geometry.Location
	return geo.Point{Lat: loc.Lat, Lon: loc.Lng}, nil
}
