package places

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aidlink/backend/internal/geo"
	"github.com/aidlink/backend/internal/models"
)

// googlePlace is the detail-fetch payload shape we consume.
type googlePlace struct {
	PlaceID              string   `json:"place_id"`
	Name                 string   `json:"name"`
	FormattedAddress     string   `json:"formatted_address"`
	FormattedPhoneNumber string   `json:"formatted_phone_number"`
	Website              string   `json:"website"`
	Types                []string `json:"types"`
	Rating               *float64 `json:"rating"`
	UserRatingsTotal     *int     `json:"user_ratings_total"`
	OpeningHours         struct {
		OpenNow     *bool    `json:"open_now"`
		WeekdayText []string `json:"weekday_text"`
	} `json:"opening_hours"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// osmElement is one Overpass result element.
type osmElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

func normalizeGooglePlace(p googlePlace, origin geo.Point) models.Resource {
	name := p.Name
	if name == "" {
		name = "Community Resource"
	}
	address := p.FormattedAddress
	if address == "" {
		address = "Address not available"
	}
	phone := p.FormattedPhoneNumber
	if phone == "" {
		phone = "Contact for phone number"
	}
	services := p.Name
	if services == "" {
		services = "Community services"
	}

	loc := p.Geometry.Location
	distance := float64(models.UnknownDistance)
	if loc.Lat != 0 || loc.Lng != 0 {
		distance = geo.Miles(origin.Lat, origin.Lon, loc.Lat, loc.Lng)
	}

	return models.Resource{
		ID:             p.PlaceID,
		Name:           name,
		Description:    "Verified community resource via Google Places",
		Category:       categoryFromGoogleTypes(p.Types),
		Address:        address,
		Phone:          phone,
		Email:          emailFromName(name),
		Website:        p.Website,
		Hours:          formatGoogleHours(p),
		Services:       services,
		Eligibility:    "Contact for eligibility requirements",
		Latitude:       loc.Lat,
		Longitude:      loc.Lng,
		Distance:       distance,
		Rating:         p.Rating,
		Reviews:        p.UserRatingsTotal,
		Verified:       true,
		Source:         models.SourceGooglePlaces,
		LastUpdated:    "2024-01-01",
		Transportation: transportationInfo(distance, hasTransportType(p.Types)),
	}
}

func normalizeOSMElement(e osmElement, origin geo.Point) (models.Resource, bool) {
	if e.Type == "relation" {
		return models.Resource{}, false
	}

	lat, lon := e.Lat, e.Lon
	if e.Type != "node" {
		if e.Center == nil {
			return models.Resource{}, false
		}
		lat, lon = e.Center.Lat, e.Center.Lon
	}
	if lat == 0 && lon == 0 {
		return models.Resource{}, false
	}

	name := e.Tags["name"]
	if name == "" {
		name = "Community Resource"
	}
	services := e.Tags["description"]
	if services == "" {
		services = name
	}
	phone := e.Tags["phone"]
	if phone == "" {
		phone = "Contact for phone number"
	}
	website := e.Tags["website"]
	if website == "" {
		website = e.Tags["url"]
	}
	hours := e.Tags["opening_hours"]
	if hours == "" {
		hours = "Contact for hours"
	}

	return models.Resource{
		ID:          "osm_" + strconv.FormatInt(e.ID, 10),
		Name:        name,
		Description: "Community resource from OpenStreetMap",
		Category:    categoryFromOSMTags(e.Tags),
		Address:     osmAddress(e.Tags),
		Phone:       phone,
		Email:       emailFromName(name),
		Website:     website,
		Hours:       hours,
		Services:    services,
		Eligibility: "Contact for eligibility requirements",
		Latitude:    lat,
		Longitude:   lon,
		Distance:    geo.Miles(origin.Lat, origin.Lon, lat, lon),
		Verified:    true,
		Source:      models.SourceOpenStreetMap,
		LastUpdated: "2024-01-01",
	}, true
}

func osmAddress(tags map[string]string) string {
	var parts []string
	for _, key := range []string{"addr:housenumber", "addr:street"} {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	address := strings.Join(parts, " ")
	if address == "" {
		address = "Address available"
	}
	if city := tags["addr:city"]; city != "" {
		address += ", " + city
	}
	if postcode := tags["addr:postcode"]; postcode != "" {
		address += " " + postcode
	}
	return address
}

func categoryFromGoogleTypes(types []string) string {
	for _, t := range types {
		switch {
		case strings.Contains(t, "food"):
			return models.CategoryFood
		case strings.Contains(t, "lodging"), strings.Contains(t, "housing"):
			return models.CategoryHousing
		case strings.Contains(t, "health"), strings.Contains(t, "doctor"):
			return models.CategoryHealthcare
		case strings.Contains(t, "employment"), strings.Contains(t, "job"):
			return models.CategoryEmployment
		}
	}
	return models.CategoryGeneral
}

func categoryFromOSMTags(tags map[string]string) string {
	amenity := tags["amenity"]
	switch {
	case strings.Contains(amenity, "food_bank"):
		return models.CategoryFood
	case strings.Contains(amenity, "shelter"), strings.Contains(tags["social_facility"], "shelter"):
		return models.CategoryHousing
	case strings.Contains(amenity, "clinic"):
		return models.CategoryHealthcare
	}
	return models.CategoryGeneral
}

func formatGoogleHours(p googlePlace) string {
	if p.OpeningHours.OpenNow != nil && *p.OpeningHours.OpenNow {
		return "Open now"
	}
	if len(p.OpeningHours.WeekdayText) > 0 {
		return strings.Join(p.OpeningHours.WeekdayText, "\n")
	}
	return "Contact for hours"
}

func hasTransportType(types []string) bool {
	for _, t := range types {
		lower := strings.ToLower(t)
		if strings.Contains(lower, "transport") || strings.Contains(lower, "transit") {
			return true
		}
	}
	return false
}

// transportationInfo renders a rough how-to-get-there hint from the computed
// distance. Display convenience only.
func transportationInfo(distanceMiles float64, hasTransport bool) string {
	switch {
	case hasTransport:
		return "Provides transportation assistance - call for details"
	case distanceMiles <= 0.5:
		return "Walkable (~10 min walk)"
	case distanceMiles <= 1:
		return fmt.Sprintf("Walkable (~%d min) or short bus ride", int(distanceMiles*15))
	case distanceMiles <= 3:
		return fmt.Sprintf("Short bus trip (~%d min) or ride share ($%d-$%d)",
			int(distanceMiles*2), int(distanceMiles*1.5), int(distanceMiles*3))
	default:
		return fmt.Sprintf("Call to ask about transportation assistance or use ride share ($%d-$%d)",
			int(distanceMiles*1.5), int(distanceMiles*3))
	}
}

// emailFromName synthesizes a plausible contact address from an organization
// name. Not a verified contact, purely a display convenience.
func emailFromName(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, "&", "and")
	for _, cut := range []string{" ", ",", "'"} {
		slug = strings.ReplaceAll(slug, cut, "")
	}
	return "info@" + slug + ".org"
}
