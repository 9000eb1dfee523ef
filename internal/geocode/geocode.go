package geocode

import (
	"context"
	"errors"

	"github.com/aidlink/backend/internal/geo"
)

// ErrNotFound covers every way a free-text location can fail to resolve:
// empty input, no results, network failure, or a non-success status. Callers
// fall back instead of surfacing the cause.
var ErrNotFound = errors.New("geocode not found")

// Geocoder resolves a free-text location ("Sacramento, CA") to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (geo.Point, error)
}
