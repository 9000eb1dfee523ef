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

	"github.com/aidlink/backend/internal/geocode"
	"github.com/aidlink/backend/internal/models"
)

// GoogleProvider searches the Google Places API. It is a two-stage fetch:
// a text search returns lightweight stubs, then each stub gets a best-effort
// detail fetch; a detail failure drops that stub only.
type GoogleProvider struct {
	APIKey   string
	BaseURL  string
	Geocoder geocode.Geocoder
	Client   *http.Client
	Logger   zerolog.Logger
}

const detailFields = "name,formatted_address,formatted_phone_number,website,opening_hours,geometry,types,rating,user_ratings_total"

type googleSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID string `json:"place_id"`
	} `json:"results"`
}

type googleDetailResponse struct {
	Status string      `json:"status"`
	Result googlePlace `json:"result"`
}

func (p *GoogleProvider) Name() string { return models.SourceGooglePlaces }

// Available reports whether a credential is configured.
func (p *GoogleProvider) Available() bool { return strings.TrimSpace(p.APIKey) != "" }

func (p *GoogleProvider) Search(ctx context.Context, q Query) ([]models.Resource, error) {
	if !p.Available() {
		return nil, ErrUnavailable
	}
	if p.Client == nil {
		p.Client = &http.Client{Timeout: 5 * time.Second}
	}
	base := p.BaseURL
	if base == "" {
		base = "https://maps.googleapis.com/maps/api/place"
	}

	origin, err := p.Geocoder.Geocode(ctx, q.Location)
	if err != nil {
		p.Logger.Debug().Str("location", q.Location).Msg("google places: geocode failed")
		return nil, ErrUnavailable
	}

	radiusMeters := int(q.RadiusMiles * 1609.34)
	params := url.Values{}
	params.Set("query", buildCommunityQuery(q.Text, q.Category))
	params.Set("location", fmt.Sprintf("%f,%f", origin.Lat, origin.Lon))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("key", p.APIKey)

	var search googleSearchResponse
	if err := p.getJSON(ctx, base+"/textsearch/json?"+params.Encode(), &search); err != nil {
		p.Logger.Debug().Err(err).Msg("google places: text search failed")
		return nil, ErrUnavailable
	}
	if search.Status != "OK" || len(search.Results) == 0 {
		return nil, ErrUnavailable
	}

	// Over-fetch so ranking and the radius cutoff have candidates to drop.
	stubs := search.Results
	if limit := q.MaxResults * 2; limit > 0 && len(stubs) > limit {
		stubs = stubs[:limit]
	}

	var resources []models.Resource
	for _, stub := range stubs {
		if stub.PlaceID == "" {
			continue
		}
		detailParams := url.Values{}
		detailParams.Set("place_id", stub.PlaceID)
		detailParams.Set("fields", detailFields)
		detailParams.Set("key", p.APIKey)

		var detail googleDetailResponse
		if err := p.getJSON(ctx, base+"/details/json?"+detailParams.Encode(), &detail); err != nil || detail.Status != "OK" {
			continue
		}
		detail.Result.PlaceID = stub.PlaceID
		resources = append(resources, normalizeGooglePlace(detail.Result, origin))
	}

	nearby := WithinRadius(Rank(resources, q.Text, q.MaxResults), q.RadiusMiles)
	if len(nearby) == 0 {
		return nil, ErrUnavailable
	}
	p.Logger.Info().Int("count", len(nearby)).Float64("radius_miles", q.RadiusMiles).Msg("google places results")
	return nearby, nil
}

func (p *GoogleProvider) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("google places http error: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
