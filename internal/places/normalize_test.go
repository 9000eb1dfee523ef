package places

import (
	"strings"
	"testing"

	"github.com/aidlink/backend/internal/geo"
	"github.com/aidlink/backend/internal/models"
)

var sacramento = geo.Point{Lat: 38.5816, Lon: -121.4944}

func TestNormalizeGooglePlace(t *testing.T) {
	p := googlePlace{
		PlaceID:              "abc123",
		Name:                 "Sacramento Food Bank",
		FormattedAddress:     "3333 3rd Ave, Sacramento, CA",
		FormattedPhoneNumber: "(916) 456-1980",
		Website:              "https://example.org",
		Types:                []string{"food", "point_of_interest"},
		Rating:               ratingPtr(4.2),
	}
	p.Geometry.Location.Lat = 38.59
	p.Geometry.Location.Lng = -121.49

	r := normalizeGooglePlace(p, sacramento)
	if r.ID != "abc123" || r.Source != models.SourceGooglePlaces {
		t.Fatalf("unexpected identity: %+v", r)
	}
	if r.Category != models.CategoryFood {
		t.Fatalf("expected food category, got %s", r.Category)
	}
	if r.Distance >= 5 || r.Distance <= 0 {
		t.Fatalf("expected a small real distance, got %f", r.Distance)
	}
	if r.Rating == nil || *r.Rating != 4.2 {
		t.Fatalf("rating not carried through: %v", r.Rating)
	}
	if r.Email != "info@sacramentofoodbank.org" {
		t.Fatalf("unexpected email: %s", r.Email)
	}
}

func TestNormalizeGooglePlacePlaceholders(t *testing.T) {
	r := normalizeGooglePlace(googlePlace{PlaceID: "x"}, sacramento)
	if r.Name != "Community Resource" {
		t.Fatalf("unexpected name: %s", r.Name)
	}
	if r.Phone != "Contact for phone number" {
		t.Fatalf("unexpected phone: %s", r.Phone)
	}
	if r.Address != "Address not available" {
		t.Fatalf("unexpected address: %s", r.Address)
	}
	if r.Hours != "Contact for hours" {
		t.Fatalf("unexpected hours: %s", r.Hours)
	}
	if r.Distance != models.UnknownDistance {
		t.Fatalf("expected unknown-distance sentinel, got %f", r.Distance)
	}
	if r.Rating != nil {
		t.Fatalf("expected absent rating, got %v", *r.Rating)
	}
	if r.Category != models.CategoryGeneral {
		t.Fatalf("expected general category, got %s", r.Category)
	}
}

func TestNormalizeOSMElement(t *testing.T) {
	e := osmElement{
		Type: "node",
		ID:   42,
		Lat:  38.60,
		Lon:  -121.50,
		Tags: map[string]string{
			"name":            "Community Kitchen",
			"amenity":         "food_bank",
			"addr:housenumber": "123",
			"addr:street":     "Main St",
			"addr:city":       "Sacramento",
			"addr:postcode":   "95814",
			"phone":           "(916) 555-0100",
			"opening_hours":   "Mo-Fr 09:00-17:00",
		},
	}
	r, ok := normalizeOSMElement(e, sacramento)
	if !ok {
		t.Fatalf("expected element to normalize")
	}
	if r.ID != "osm_42" {
		t.Fatalf("unexpected id: %s", r.ID)
	}
	if r.Address != "123 Main St, Sacramento 95814" {
		t.Fatalf("unexpected address: %s", r.Address)
	}
	if r.Category != models.CategoryFood {
		t.Fatalf("expected food category, got %s", r.Category)
	}
	if r.Distance <= 0 || r.Distance >= 10 {
		t.Fatalf("expected computed distance, got %f", r.Distance)
	}
	if r.Hours != "Mo-Fr 09:00-17:00" {
		t.Fatalf("unexpected hours: %s", r.Hours)
	}
}

func TestNormalizeOSMElementSkipsRelationsAndMissingCoords(t *testing.T) {
	if _, ok := normalizeOSMElement(osmElement{Type: "relation", ID: 1}, sacramento); ok {
		t.Fatalf("relations should be skipped")
	}
	if _, ok := normalizeOSMElement(osmElement{Type: "way", ID: 2}, sacramento); ok {
		t.Fatalf("ways without a center should be skipped")
	}
}

func TestNormalizeOSMElementWayUsesCenter(t *testing.T) {
	e := osmElement{Type: "way", ID: 7}
	e.Center = &struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}{Lat: 38.60, Lon: -121.50}
	r, ok := normalizeOSMElement(e, sacramento)
	if !ok {
		t.Fatalf("expected way with center to normalize")
	}
	if r.Latitude != 38.60 || r.Longitude != -121.50 {
		t.Fatalf("unexpected coordinates: %f %f", r.Latitude, r.Longitude)
	}
	if r.Name != "Community Resource" || r.Address != "Address available" {
		t.Fatalf("unexpected placeholders: %q %q", r.Name, r.Address)
	}
}

func TestEmailFromName(t *testing.T) {
	if got := emailFromName("Loaves & Fishes"); got != "info@loavesandfishes.org" {
		t.Fatalf("unexpected email: %s", got)
	}
	if got := emailFromName("St. Vincent's Kitchen, Inc"); got != "info@st.vincentskitcheninc.org" {
		t.Fatalf("unexpected email: %s", got)
	}
}

func TestTransportationInfoBands(t *testing.T) {
	if got := transportationInfo(0.3, false); got != "Walkable (~10 min walk)" {
		t.Fatalf("unexpected hint: %s", got)
	}
	if got := transportationInfo(2, false); !strings.Contains(got, "bus trip") {
		t.Fatalf("unexpected hint: %s", got)
	}
	if got := transportationInfo(2, true); !strings.Contains(got, "transportation assistance - call") {
		t.Fatalf("unexpected hint: %s", got)
	}
}

func TestCategoryFromGoogleTypes(t *testing.T) {
	cases := map[string][]string{
		models.CategoryFood:       {"food", "establishment"},
		models.CategoryHousing:    {"lodging"},
		models.CategoryHealthcare: {"doctor"},
		models.CategoryEmployment: {"job_center"},
		models.CategoryGeneral:    {"establishment"},
	}
	for want, types := range cases {
		if got := categoryFromGoogleTypes(types); got != want {
			t.Fatalf("types %v: expected %s, got %s", types, want, got)
		}
	}
}
