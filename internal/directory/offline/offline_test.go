package offline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vbb-change-positions/internal/directory"
)

const stationsJSON = `[
	{"id": "900000100003", "name": "S+U Alexanderplatz", "lines": [
		{"name": "U2", "product": "subway"},
		{"name": "S5", "product": "suburban"},
		{"name": "M4", "product": "tram"}
	]},
	{"id": "900000058101", "name": "S Südkreuz", "lines": [
		{"name": "S41", "product": "suburban"},
		{"name": "S42", "product": "suburban"}
	]},
	{"id": "900000024101", "name": "S Charlottenburg", "lines": []},
	{"id": "900000120005", "name": "S Ostbahnhof", "lines": []},
	{"id": "900000100026", "name": "Alexanderstr.", "lines": []}
]`

func loadTestDirectory(t *testing.T) *Directory {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.json")
	if err := os.WriteFile(path, []byte(stationsJSON), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return d
}

func TestLoad(t *testing.T) {
	d := loadTestDirectory(t)
	if d.Len() != 5 {
		t.Errorf("Expected 5 stations, got %d", d.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestNewRejectsBadRecords(t *testing.T) {
	if _, err := newDirectory([]stationRecord{{Name: "no id"}}); err == nil {
		t.Error("Expected error for station without id")
	}
	if _, err := newDirectory([]stationRecord{{ID: "1", Name: "a"}, {ID: "1", Name: "b"}}); err == nil {
		t.Error("Expected error for duplicate ids")
	}
}

func TestStationByID(t *testing.T) {
	d := loadTestDirectory(t)
	ctx := context.Background()

	s, err := d.StationByID(ctx, "900000058101")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Name != "S Südkreuz" {
		t.Errorf("Unexpected station %+v", s)
	}

	if _, err := d.StationByID(ctx, "900000000000"); !errors.Is(err, directory.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSearchStations(t *testing.T) {
	d := loadTestDirectory(t)
	ctx := context.Background()

	tests := []struct {
		query    string
		expected string
	}{
		{"sudkreuz", "900000058101"},
		{"Ostbahnhof", "900000120005"},
		{"alexplatz", "900000100003"},
		{"charlottenbg", "900000024101"},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got, err := d.SearchStations(ctx, tc.query, 1)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(got) != 1 || got[0].ID != tc.expected {
				t.Errorf("SearchStations(%q) = %+v, expected %s", tc.query, got, tc.expected)
			}
		})
	}
}

func TestSearchStationsVerbatimFirst(t *testing.T) {
	d := loadTestDirectory(t)

	got, err := d.SearchStations(context.Background(), "alexander", 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 matches, got %+v", got)
	}
	// shorter edit distance wins among verbatim matches
	if got[0].ID != "900000100026" {
		t.Errorf("Expected Alexanderstr. first, got %+v", got)
	}
}

func TestSearchStationsNoMatch(t *testing.T) {
	d := loadTestDirectory(t)

	got, err := d.SearchStations(context.Background(), "xyzzy", 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no match, got %+v", got)
	}
}

func TestLinesAt(t *testing.T) {
	d := loadTestDirectory(t)

	lines, err := d.LinesAt(context.Background(), "900000100003")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(lines) != 3 || lines[2].Product != "tram" {
		t.Errorf("Unexpected lines %+v", lines)
	}

	lines[0].Name = "changed"
	again, _ := d.LinesAt(context.Background(), "900000100003")
	if again[0].Name != "U2" {
		t.Error("LinesAt must return a copy")
	}
}
