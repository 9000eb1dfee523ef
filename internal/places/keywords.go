package places

import (
	"sort"
	"strings"

	"github.com/aidlink/backend/internal/models"
)

// Category keyword expansions for the Google text search. These are tuned for
// community-resource recall, not shown to users.
var googleCategoryKeywords = map[string]string{
	models.CategoryFood:       "food bank, pantry, meal assistance, community kitchen",
	models.CategoryHousing:    "homeless shelter, housing assistance, emergency shelter",
	models.CategoryHealthcare: "community health center, free clinic, medical assistance",
	models.CategoryEmployment: "job center, employment assistance, workforce development",
	models.CategoryFinancial:  "financial assistance, public benefit, cash assistance",
}

// buildCommunityQuery appends the category's keyword expansion to the user's
// query text.
func buildCommunityQuery(query, category string) string {
	return strings.TrimSpace(query + " " + googleCategoryKeywords[category])
}

// OSM tag filters per category.
var osmCategoryTags = map[string][]string{
	models.CategoryFood:       {"amenity=food_bank", "amenity=community_kitchen", "social_facility=food"},
	models.CategoryHousing:    {"amenity=shelter", "social_facility=shelter", "amenity=hostel"},
	models.CategoryHealthcare: {"amenity=clinic", "amenity=hospital", "healthcare=*"},
	models.CategoryEmployment: {"office=employment", "office=job_centre"},
	models.CategoryGeneral:    {"amenity=community_centre", "social_facility=*"},
}

// osmTags maps a category plus free-text query to a deduplicated tag list.
// Query terms widen the filter: "food" or "shelter" in the text pulls in the
// matching amenity tags regardless of the declared category.
func osmTags(category, query string) []string {
	tags := osmCategoryTags[category]
	if tags == nil {
		tags = osmCategoryTags[models.CategoryGeneral]
	}

	q := strings.ToLower(query)
	extra := make([]string, 0, 4)
	if strings.Contains(q, "food") {
		extra = append(extra, "amenity=food_bank", "amenity=community_kitchen")
	}
	if strings.Contains(q, "shelter") || strings.Contains(q, "housing") {
		extra = append(extra, "amenity=shelter", "social_facility=shelter")
	}

	seen := map[string]struct{}{}
	var out []string
	for _, tag := range append(append([]string{}, tags...), extra...) {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
