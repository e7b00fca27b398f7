package directory

import (
	"context"
	"errors"

	"github.com/vbb-change-positions/pkg/positions/models"
)

// ErrNotFound is returned by directories when a station id is unknown.
var ErrNotFound = errors.New("station not found")

type StationLookup interface {
	StationByID(ctx context.Context, id string) (models.Station, error)
	// SearchStations returns at most limit stations, best match first.
	SearchStations(ctx context.Context, query string, limit int) ([]models.Station, error)
}

type LineDirectory interface {
	LinesAt(ctx context.Context, stationID string) ([]models.Line, error)
}

type Directory interface {
	StationLookup
	LineDirectory
}
