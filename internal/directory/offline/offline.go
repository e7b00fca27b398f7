package offline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/vbb-change-positions/internal/directory"
	"github.com/vbb-change-positions/pkg/positions/models"
)

type stationRecord struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Lines []models.Line `json:"lines"`
}

// Directory serves stations and lines from a local JSON file, so entries
// can be collected without network access.
type Directory struct {
	stations []stationRecord
	names    []string
	byID     map[string]int
}

// Load reads a JSON array of {id, name, lines: [{name, product}]}.
func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stations file: %w", err)
	}
	defer f.Close()

	var records []stationRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding stations file: %w", err)
	}
	return newDirectory(records)
}

func newDirectory(records []stationRecord) (*Directory, error) {
	d := &Directory{
		stations: records,
		names:    make([]string, len(records)),
		byID:     make(map[string]int, len(records)),
	}
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("station %d (%q) has no id", i, r.Name)
		}
		if _, dup := d.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate station id %s", r.ID)
		}
		d.byID[r.ID] = i
		d.names[i] = r.Name
	}
	return d, nil
}

func (d *Directory) StationByID(ctx context.Context, id string) (models.Station, error) {
	i, ok := d.byID[id]
	if !ok {
		return models.Station{}, directory.ErrNotFound
	}
	return d.station(i), nil
}

// SearchStations ranks station names by fuzzy match against query. Names
// containing the query verbatim come first, then by edit distance.
func (d *Directory) SearchStations(ctx context.Context, query string, limit int) ([]models.Station, error) {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil, nil
	}

	ranks := fuzzy.RankFindNormalizedFold(query, d.names)
	lowerQuery := strings.ToLower(query)
	sort.SliceStable(ranks, func(i, j int) bool {
		pi := strings.Contains(strings.ToLower(ranks[i].Target), lowerQuery)
		pj := strings.Contains(strings.ToLower(ranks[j].Target), lowerQuery)
		if pi != pj {
			return pi
		}
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	stations := make([]models.Station, 0, len(ranks))
	for _, r := range ranks {
		stations = append(stations, d.station(r.OriginalIndex))
	}
	return stations, nil
}

func (d *Directory) LinesAt(ctx context.Context, stationID string) ([]models.Line, error) {
	i, ok := d.byID[stationID]
	if !ok {
		return nil, directory.ErrNotFound
	}
	lines := make([]models.Line, len(d.stations[i].Lines))
	copy(lines, d.stations[i].Lines)
	return lines, nil
}

func (d *Directory) Len() int {
	return len(d.stations)
}

func (d *Directory) station(i int) models.Station {
	return models.Station{ID: d.stations[i].ID, Name: d.stations[i].Name}
}
