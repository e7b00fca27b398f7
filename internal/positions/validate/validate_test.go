package validate

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/vbb-change-positions/internal/directory"
	"github.com/vbb-change-positions/pkg/positions/models"
)

type fakeLookup struct {
	byID    map[string]models.Station
	results []models.Station
	err     error

	lastQuery string
	lastLimit int
}

func (f *fakeLookup) StationByID(ctx context.Context, id string) (models.Station, error) {
	if f.err != nil {
		return models.Station{}, f.err
	}
	s, ok := f.byID[id]
	if !ok {
		return models.Station{}, directory.ErrNotFound
	}
	return s, nil
}

func (f *fakeLookup) SearchStations(ctx context.Context, query string, limit int) ([]models.Station, error) {
	f.lastQuery = query
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

var alex = models.Station{ID: "900000100003", Name: "S+U Alexanderplatz"}

func TestIsStationID(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{"900000100003", true},
		{"900100003", true},
		{"90010000", false},
		{"9001000031", false},
		{"90000010000", false},
		{"9000001000033", false},
		{"alexanderplatz", false},
		{"90000010000a", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			if got := IsStationID(tc.raw); got != tc.expected {
				t.Errorf("IsStationID(%q) = %v, expected %v", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestParseStationByID(t *testing.T) {
	lookup := &fakeLookup{byID: map[string]models.Station{alex.ID: alex}}

	got, err := ParseStation(context.Background(), lookup, "900000100003")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != alex {
		t.Errorf("Expected %v, got %v", alex, got)
	}
	if lookup.lastQuery != "" {
		t.Errorf("Expected no text search, got query %q", lookup.lastQuery)
	}
}

func TestParseStationByShortID(t *testing.T) {
	short := models.Station{ID: "900100003", Name: "S+U Alexanderplatz (Berlin)"}
	lookup := &fakeLookup{byID: map[string]models.Station{short.ID: short}}

	got, err := ParseStation(context.Background(), lookup, " 900100003 ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != short {
		t.Errorf("Expected %v, got %v", short, got)
	}
	if lookup.lastQuery != "" {
		t.Errorf("Expected no text search, got query %q", lookup.lastQuery)
	}
}

func TestParseStationUnknownID(t *testing.T) {
	lookup := &fakeLookup{byID: map[string]models.Station{}}

	_, err := ParseStation(context.Background(), lookup, "900000999999")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if !errors.Is(err, directory.ErrNotFound) {
		t.Error("Expected error to wrap directory.ErrNotFound")
	}
}

func TestParseStationByQuery(t *testing.T) {
	lookup := &fakeLookup{results: []models.Station{alex}}

	got, err := ParseStation(context.Background(), lookup, "  alexanderplatz ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != alex {
		t.Errorf("Expected %v, got %v", alex, got)
	}
	if lookup.lastQuery != "alexanderplatz" {
		t.Errorf("Expected trimmed query, got %q", lookup.lastQuery)
	}
	if lookup.lastLimit != 1 {
		t.Errorf("Expected limit 1, got %d", lookup.lastLimit)
	}
}

func TestParseStationNoMatch(t *testing.T) {
	lookup := &fakeLookup{}

	_, err := ParseStation(context.Background(), lookup, "nowhere")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if nf.Query != "nowhere" {
		t.Errorf("Expected query nowhere, got %q", nf.Query)
	}
}

func TestParseStationLookupFailure(t *testing.T) {
	boom := errors.New("connection refused")
	lookup := &fakeLookup{err: boom}

	_, err := ParseStation(context.Background(), lookup, "alex")
	if !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped lookup error, got %v", err)
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		t.Error("Lookup failure must not be reported as not found")
	}
}

func TestParseLineSelection(t *testing.T) {
	valid := []models.Selection{
		{"U8": true},
		{"S41": true, "S42": false},
		{"U2": false, "U5": false, "U8": true},
	}
	for _, sel := range valid {
		got, err := ParseLineSelection(sel)
		if err != nil {
			t.Errorf("ParseLineSelection(%v) unexpected error: %v", sel, err)
			continue
		}
		if len(got) != len(sel) {
			t.Errorf("Expected selection unchanged, got %v", got)
		}
		for k, v := range sel {
			if got[k] != v {
				t.Errorf("Expected %s=%v, got %v", k, v, got[k])
			}
		}
	}

	invalid := []models.Selection{
		{"U8": false, "S41": false},
		{},
		nil,
	}
	for _, sel := range invalid {
		_, err := ParseLineSelection(sel)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("ParseLineSelection(%v) expected ValidationError, got %v", sel, err)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		wantErr  bool
	}{
		{"0", 0, false},
		{"1", 1, false},
		{"0.5", 0.5, false},
		{"0.25", 0.25, false},
		{" 0.8 ", 0.8, false},
		{"-0.1", 0, true},
		{"1.5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"0x1p-1", 0, true},
		{"1_0", 0, true},
		{".5", 0.5, false},
		{"5e-1", 0.5, false},
		{"-0", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParsePosition(tc.raw)
			if tc.wantErr {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("ParsePosition(%q) expected ValidationError, got %v", tc.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePosition(%q) unexpected error: %v", tc.raw, err)
			}
			if got != tc.expected || math.Signbit(got) {
				t.Errorf("ParsePosition(%q) = %v, expected %v", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestParseTrack(t *testing.T) {
	if got := ParseTrack(""); got != "" {
		t.Errorf("Expected empty track, got %q", got)
	}
	if got := ParseTrack("   "); got != "" {
		t.Errorf("Expected blank track to be absent, got %q", got)
	}
	if got := ParseTrack("12"); got != "12" {
		t.Errorf("Expected 12, got %q", got)
	}
}
