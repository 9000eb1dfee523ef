package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aidlink/backend/internal/geo"
	"github.com/aidlink/backend/internal/geocode"
	"github.com/aidlink/backend/internal/models"
)

// osmBBoxDegrees is the half-width of the Overpass bounding box (~25 km).
const osmBBoxDegrees = 0.25

// OSMProvider searches the free Overpass API. No credential needed; a single
// tag-filtered bounding-box query returns everything in one round trip.
type OSMProvider struct {
	BaseURL  string
	Geocoder geocode.Geocoder
	Client   *http.Client
	Logger   zerolog.Logger
}

type overpassResponse struct {
	Elements []osmElement `json:"elements"`
}

func (p *OSMProvider) Name() string { return models.SourceOpenStreetMap }

func (p *OSMProvider) Search(ctx context.Context, q Query) ([]models.Resource, error) {
	if p.Client == nil {
		p.Client = &http.Client{Timeout: 15 * time.Second}
	}
	base := p.BaseURL
	if base == "" {
		base = "https://overpass-api.de/api/interpreter"
	}

	origin, err := p.Geocoder.Geocode(ctx, q.Location)
	if err != nil {
		p.Logger.Debug().Str("location", q.Location).Msg("overpass: geocode failed")
		return nil, ErrUnavailable
	}

	query := buildOverpassQuery(osmTags(q.Category, q.Text), origin, q.MaxResults)
	endpoint := base + "?data=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, ErrUnavailable
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		p.Logger.Debug().Err(err).Msg("overpass: request failed")
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrUnavailable
	}

	var body overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, ErrUnavailable
	}

	var resources []models.Resource
	for _, element := range body.Elements {
		r, ok := normalizeOSMElement(element, origin)
		if !ok {
			continue
		}
		resources = append(resources, r)
	}

	nearby := WithinRadius(resources, q.RadiusMiles)
	if q.MaxResults > 0 && len(nearby) > q.MaxResults {
		nearby = nearby[:q.MaxResults]
	}
	if len(nearby) == 0 {
		return nil, ErrUnavailable
	}
	p.Logger.Info().Int("count", len(nearby)).Msg("openstreetmap results")
	return nearby, nil
}

// buildOverpassQuery emits one union query over nodes and ways for every tag
// filter, bounded to a box around the origin. "key=*" filters match any value.
func buildOverpassQuery(tags []string, origin geo.Point, maxResults int) string {
	if maxResults <= 0 {
		maxResults = 10
	}
	south := origin.Lat - osmBBoxDegrees
	north := origin.Lat + osmBBoxDegrees
	west := origin.Lon - osmBBoxDegrees
	east := origin.Lon + osmBBoxDegrees
	bbox := fmt.Sprintf("(%f,%f,%f,%f)", south, west, north, east)

	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, tag := range tags {
		key, value, _ := strings.Cut(tag, "=")
		var filter string
		if value == "*" || value == "" {
			filter = fmt.Sprintf("[%q]", key)
		} else {
			filter = fmt.Sprintf("[%q=%q]", key, value)
		}
		b.WriteString("  node" + filter + bbox + ";\n")
		b.WriteString("  way" + filter + bbox + ";\n")
	}
	b.WriteString(");\n")
	b.WriteString(fmt.Sprintf("out center %d;\n", maxResults))
	return b.String()
}
