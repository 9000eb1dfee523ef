// Package catalog holds the verified last-resort resource table used when no
// live place-search provider can answer.
package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/aidlink/backend/internal/models"
)

// Source is a read-only lookup of verified entries by category. It is an
// interface so the shipped table can be swapped out in tests.
type Source interface {
	Lookup(category string) ([]Entry, string)
}

// Entry is one row of the verified table. Distances, ratings and ids are
// synthesized at conversion time since the table has no search origin.
type Entry struct {
	Name        string
	Description string
	Address     string
	Phone       string
	Website     string
	Hours       string
	Services    string
	Eligibility string
	Latitude    float64
	Longitude   float64
}

// Verified is the shipped Sacramento-area table.
type Verified struct{}

// Lookup returns the entries for a category plus the category they are
// actually filed under. Unknown categories fall back to the food list so the
// last-resort source is never empty, and the resolved category keeps every
// resource labeled within the fixed set.
func (Verified) Lookup(category string) ([]Entry, string) {
	if entries, ok := verifiedEntries[category]; ok {
		return entries, category
	}
	return verifiedEntries[models.CategoryFood], models.CategoryFood
}

// FilterByLocation keeps entries whose name or address contains the location
// string, case-insensitively. A filter that matches nothing is discarded and
// the full list returned instead.
func FilterByLocation(entries []Entry, location string) []Entry {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return entries
	}
	var filtered []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Address), loc) || strings.Contains(strings.ToLower(e.Name), loc) {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == 0 {
		return entries
	}
	return filtered
}

// Resources converts entries to canonical Resource records, truncated to max.
// Distance and rating are placeholders: the table has no live data, so each
// successive entry is pushed slightly further out to keep the ordering stable.
func Resources(entries []Entry, category string, max int) []models.Resource {
	if category == "" {
		category = models.CategoryGeneral
	}
	if max > 0 && len(entries) > max {
		entries = entries[:max]
	}
	out := make([]models.Resource, 0, len(entries))
	for i, e := range entries {
		rating := 4.5
		reviews := 50 + i*10
		out = append(out, models.Resource{
			ID:          fmt.Sprintf("fallback_%03d", i+1),
			Name:        e.Name,
			Description: e.Description,
			Category:    category,
			Address:     e.Address,
			Phone:       e.Phone,
			Email:       entryEmail(e.Name),
			Website:     e.Website,
			Hours:       e.Hours,
			Services:    e.Services,
			Eligibility: e.Eligibility,
			Latitude:    e.Latitude,
			Longitude:   e.Longitude,
			Distance:    math.Round((0.5+float64(i)*2)*10) / 10,
			Rating:      &rating,
			Reviews:     &reviews,
			Verified:    true,
			Source:      models.SourceVerifiedLocal,
			LastUpdated: "2024-01-01",
		})
	}
	return out
}

func entryEmail(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, "&", "and")
	for _, cut := range []string{" ", ",", "'", "."} {
		slug = strings.ReplaceAll(slug, cut, "")
	}
	return "info@" + slug + ".org"
}
