// Package discovery picks a data source for each search: live providers in
// priority order, then the verified catalog. Exactly one source answers a
// request; results are never merged across sources.
package discovery

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aidlink/backend/internal/catalog"
	"github.com/aidlink/backend/internal/models"
	"github.com/aidlink/backend/internal/places"
)

// Result is one source's answer plus how much we trust it.
type Result struct {
	Resources  []models.Resource
	Source     string
	Confidence float64
}

type Orchestrator struct {
	Providers []places.Provider
	Catalog   catalog.Source
	Logger    zerolog.Logger
}

// Search walks the provider chain first-success-wins. Any provider failure,
// whatever the cause, advances the chain; the catalog always answers.
func (o *Orchestrator) Search(ctx context.Context, q places.Query) Result {
	for _, p := range o.Providers {
		resources, err := p.Search(ctx, q)
		if err != nil || len(resources) == 0 {
			o.Logger.Debug().Str("provider", p.Name()).Err(err).Msg("provider unavailable, trying next")
			continue
		}
		o.Logger.Info().Str("provider", p.Name()).Int("count", len(resources)).Msg("search served by provider")
		return Result{Resources: resources, Source: p.Name(), Confidence: 0.95}
	}

	category := q.Category
	if category == "" {
		category = models.CategoryGeneral
	}
	entries, resolved := o.Catalog.Lookup(category)
	entries = catalog.FilterByLocation(entries, q.Location)
	resources := catalog.Resources(entries, resolved, q.MaxResults)
	o.Logger.Info().Int("count", len(resources)).Msg("search served by verified catalog")
	return Result{Resources: resources, Source: models.SourceVerifiedFallback, Confidence: 0.85}
}
