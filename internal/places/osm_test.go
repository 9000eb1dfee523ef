package places

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aidlink/backend/internal/geo"
	"github.com/aidlink/backend/internal/models"
)

func TestOSMProviderParsesElements(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("data")
		fmt.Fprint(w, `{"elements":[
			{"type":"node","id":1,"lat":38.59,"lon":-121.49,"tags":{"name":"Food Bank","amenity":"food_bank"}},
			{"type":"relation","id":2},
			{"type":"way","id":3,"center":{"lat":38.60,"lon":-121.50},"tags":{"name":"Shelter","amenity":"shelter"}}
		]}`)
	}))
	defer srv.Close()

	p := &OSMProvider{
		BaseURL:  srv.URL,
		Geocoder: stubGeocoder{point: geo.Point{Lat: 38.5816, Lon: -121.4944}},
		Logger:   zerolog.Nop(),
	}
	got, err := p.Search(context.Background(), Query{Text: "food", Category: models.CategoryFood, Location: "Sacramento, CA", MaxResults: 10, RadiusMiles: 15})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 resources (relation skipped), got %d", len(got))
	}
	if got[0].ID != "osm_1" || got[0].Source != models.SourceOpenStreetMap {
		t.Fatalf("unexpected first resource: %+v", got[0])
	}
	if !strings.Contains(gotQuery, `"amenity"="food_bank"`) {
		t.Fatalf("expected food_bank tag filter in query: %s", gotQuery)
	}
	if !strings.Contains(gotQuery, "out center") {
		t.Fatalf("expected out center clause: %s", gotQuery)
	}
}

func TestOSMProviderUnavailableOnGeocodeFailure(t *testing.T) {
	p := &OSMProvider{Geocoder: stubGeocoder{err: errors.New("nope")}, Logger: zerolog.Nop()}
	if _, err := p.Search(context.Background(), Query{Location: "Nowhereville"}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestOSMProviderUnavailableOnEmptyElements(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"elements":[]}`)
	}))
	defer srv.Close()

	p := &OSMProvider{
		BaseURL:  srv.URL,
		Geocoder: stubGeocoder{point: geo.Point{Lat: 38.5816, Lon: -121.4944}},
		Logger:   zerolog.Nop(),
	}
	if _, err := p.Search(context.Background(), Query{Location: "Sacramento", MaxResults: 5, RadiusMiles: 10}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestOSMProviderUnavailableOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := &OSMProvider{
		BaseURL:  srv.URL,
		Geocoder: stubGeocoder{point: geo.Point{Lat: 38.5816, Lon: -121.4944}},
		Logger:   zerolog.Nop(),
	}
	if _, err := p.Search(context.Background(), Query{Location: "Sacramento", MaxResults: 5, RadiusMiles: 10}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestBuildOverpassQueryWildcard(t *testing.T) {
	q := buildOverpassQuery([]string{"healthcare=*", "amenity=clinic"}, geo.Point{Lat: 38.5, Lon: -121.5}, 5)
	if !strings.Contains(q, `node["healthcare"](`) {
		t.Fatalf("expected bare key filter for wildcard tag: %s", q)
	}
	if !strings.Contains(q, `way["amenity"="clinic"](`) {
		t.Fatalf("expected way clause for valued tag: %s", q)
	}
	if !strings.Contains(q, "out center 5;") {
		t.Fatalf("expected result limit: %s", q)
	}
}

func TestOSMTagsDeduplicatesQueryAdditions(t *testing.T) {
	tags := osmTags(models.CategoryFood, "food assistance")
	count := 0
	for _, tag := range tags {
		if tag == "amenity=food_bank" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected amenity=food_bank exactly once, got %d in %v", count, tags)
	}
}

func TestOSMTagsUnknownCategoryUsesGeneral(t *testing.T) {
	tags := osmTags("nonsense", "")
	found := false
	for _, tag := range tags {
		if tag == "amenity=community_centre" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected general tags for unknown category, got %v", tags)
	}
}
