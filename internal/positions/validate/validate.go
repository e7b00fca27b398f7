package validate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/vbb-change-positions/internal/directory"
	"github.com/vbb-change-positions/pkg/positions/models"
)

var (
	// 9-digit ids as served by the REST API, or the long 12-digit form
	stationIDPattern = regexp.MustCompile(`^\d{9}(\d{3})?$`)
	positionPattern  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// IsStationID reports whether raw looks like a VBB stop id.
func IsStationID(raw string) bool {
	return stationIDPattern.MatchString(raw)
}

// ParseStation resolves raw either by id or by a text search taking the
// single best match.
func ParseStation(ctx context.Context, lookup directory.StationLookup, raw string) (models.Station, error) {
	raw = strings.TrimSpace(raw)

	if IsStationID(raw) {
		station, err := lookup.StationByID(ctx, raw)
		if errors.Is(err, directory.ErrNotFound) {
			return models.Station{}, &NotFoundError{Query: raw, Err: err}
		}
		if err != nil {
			return models.Station{}, fmt.Errorf("looking up station %s: %w", raw, err)
		}
		return station, nil
	}

	stations, err := lookup.SearchStations(ctx, raw, 1)
	if err != nil {
		return models.Station{}, fmt.Errorf("searching station %q: %w", raw, err)
	}
	if len(stations) == 0 {
		return models.Station{}, &NotFoundError{Query: raw}
	}
	return stations[0], nil
}

// ParseLineSelection rejects a selection without any selected line and
// otherwise returns it unchanged.
func ParseLineSelection(sel models.Selection) (models.Selection, error) {
	if !sel.Any() {
		return nil, &ValidationError{Field: "lines", Msg: "at least one line must be selected"}
	}
	return sel, nil
}

// ParsePosition parses a plain decimal platform position in [0, 1].
// Hex floats, infinities and NaN are rejected.
func ParsePosition(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	invalid := &ValidationError{Field: "position", Msg: fmt.Sprintf("invalid platform position %q", raw)}
	if !positionPattern.MatchString(trimmed) {
		return 0, invalid
	}
	x, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(x) || x < 0 || x > 1 {
		return 0, invalid
	}
	if x == 0 {
		// -0 would be written as "-0"
		x = 0
	}
	return x, nil
}

// ParseTrack normalises a track label. The empty string means no track.
func ParseTrack(raw string) string {
	return strings.TrimSpace(raw)
}
