package places

import (
	"sort"
	"strings"

	"github.com/aidlink/backend/internal/models"
)

// rankScore is the composite desirability score used to order candidates.
//
// An unrated resource gets a flat 20 points (roughly a 1.67-star equivalent)
// so the absence of a rating neither dominates nor zeroes it out.
func rankScore(r models.Resource, queryWords []string) float64 {
	score := 20.0
	if r.Rating != nil {
		score = *r.Rating * 12
	}

	switch {
	case r.Distance <= 1:
		score += 25
	case r.Distance <= 3:
		score += 15
	case r.Distance <= 5:
		score += 8
	default:
		score += 3
	}

	name := strings.ToLower(r.Name)
	services := strings.ToLower(r.Services)
	description := strings.ToLower(r.Description)
	for _, word := range queryWords {
		if strings.Contains(name, word) || strings.Contains(services, word) || strings.Contains(description, word) {
			score += 7
		}
	}
	return score
}

// Rank orders resources by rating (desc), then composite score (desc), then
// distance (asc), drops duplicate ids keeping the best-ranked copy, and
// truncates to max.
//
// Note the comparator treats a missing rating as 0 even though the score gave
// it 20 points. That asymmetry is long-standing observed behavior; keep both
// sides as they are.
func Rank(resources []models.Resource, query string, max int) []models.Resource {
	words := strings.Fields(strings.ToLower(query))

	type scored struct {
		resource models.Resource
		score    float64
	}
	candidates := make([]scored, 0, len(resources))
	for _, r := range resources {
		candidates = append(candidates, scored{resource: r, score: rankScore(r, words)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := sortRating(candidates[i].resource), sortRating(candidates[j].resource)
		if ri != rj {
			return ri > rj
		}
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].resource.Distance < candidates[j].resource.Distance
	})

	seen := make(map[string]struct{}, len(candidates))
	ranked := make([]models.Resource, 0, len(candidates))
	for _, c := range candidates {
		if id := c.resource.ID; id != "" {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
		}
		ranked = append(ranked, c.resource)
	}

	if max > 0 && len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

func sortRating(r models.Resource) float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

// WithinRadius drops resources further than radiusMiles from the origin.
// The unknown-distance sentinel is always out of range.
func WithinRadius(resources []models.Resource, radiusMiles float64) []models.Resource {
	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if r.Distance <= radiusMiles {
			out = append(out, r)
		}
	}
	return out
}
