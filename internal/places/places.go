// Package places holds the live place-search providers and the normalization
// and ranking shared between them.
package places

import (
	"context"
	"errors"

	"github.com/aidlink/backend/internal/models"
)

// ErrUnavailable is the single failure mode a provider exposes: no credential,
// geocoding failed, the backend errored, or nothing usable came back. The
// orchestrator treats them all the same and moves down the chain.
var ErrUnavailable = errors.New("provider unavailable")

// Query is one discovery request.
type Query struct {
	Text        string
	Category    string
	Location    string
	MaxResults  int
	RadiusMiles float64
}

// Provider searches an external backend and returns normalized resources.
type Provider interface {
	Name() string
	Search(ctx context.Context, q Query) ([]models.Resource, error)
}
