package directory

import (
	"testing"

	"github.com/vbb-change-positions/pkg/positions/models"
)

func TestChoosableLines(t *testing.T) {
	lines := []models.Line{
		{Name: "U8", Product: "subway"},
		{Name: "M10", Product: "tram"},
		{Name: "S42", Product: "suburban"},
		{Name: "S41", Product: "suburban"},
		{Name: "U8", Product: "subway"},
		{Name: "TXL", Product: "bus"},
		{Name: "RE1", Product: "regional"},
	}

	got := ChoosableLines(lines)
	want := []string{"S41", "S42", "U8"}

	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Expected line %d to be %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestChoosableLinesEmpty(t *testing.T) {
	got := ChoosableLines(nil)
	if len(got) != 0 {
		t.Errorf("Expected no lines, got %v", got)
	}
}
