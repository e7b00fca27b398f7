package colors

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed colors.yaml
var defaultColorsYAML []byte

type Color struct {
	BG string `yaml:"bg"`
	FG string `yaml:"fg"`
}

// Table maps product -> line name -> colour.
type Table map[string]map[string]Color

// Default returns the built-in VBB colour table.
func Default() Table {
	t, err := Parse(defaultColorsYAML)
	if err != nil {
		panic("invalid embedded colors.yaml: " + err.Error())
	}
	return t
}

func Parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding colour table: %w", err)
	}
	return t, nil
}

// Lookup never fails: an unknown product or line just has no colour.
func (t Table) Lookup(product, line string) (Color, bool) {
	lines, ok := t[product]
	if !ok {
		return Color{}, false
	}
	c, ok := lines[line]
	if !ok || c.BG == "" {
		return Color{}, false
	}
	return c, true
}
