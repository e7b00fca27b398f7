package builder

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vbb-change-positions/pkg/positions/models"
)

//go:embed aliases.yaml
var defaultAliasesYAML []byte

// Aliases maps a line label to the label the same service carries in the
// opposite direction. The mapping is symmetric.
type Aliases map[string]string

type aliasFile struct {
	Pairs [][]string `yaml:"pairs"`
}

// DefaultAliases returns the built-in alias table.
func DefaultAliases() Aliases {
	a, err := ParseAliases(defaultAliasesYAML)
	if err != nil {
		panic("invalid embedded aliases.yaml: " + err.Error())
	}
	return a
}

// LoadAliases reads an alias table from a YAML file.
func LoadAliases(path string) (Aliases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading aliases file: %w", err)
	}
	return ParseAliases(data)
}

// ParseAliases decodes a YAML document with a list of label pairs.
func ParseAliases(data []byte) (Aliases, error) {
	var f aliasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding aliases: %w", err)
	}

	a := make(Aliases, 2*len(f.Pairs))
	for i, pair := range f.Pairs {
		if len(pair) != 2 || pair[0] == "" || pair[1] == "" || pair[0] == pair[1] {
			return nil, fmt.Errorf("alias pair %d: expected two distinct labels, got %v", i, pair)
		}
		if err := a.add(pair[0], pair[1]); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a Aliases) add(x, y string) error {
	if prev, ok := a[x]; ok && prev != y {
		return fmt.Errorf("line %s already aliased to %s", x, prev)
	}
	if prev, ok := a[y]; ok && prev != x {
		return fmt.Errorf("line %s already aliased to %s", y, prev)
	}
	a[x] = y
	a[y] = x
	return nil
}

// Reverse replaces every label that has an alias by that alias.
// Applying it twice yields the original set.
func (a Aliases) Reverse(set models.LineSet) models.LineSet {
	out := make(models.LineSet, len(set))
	for label := range set {
		if alias, ok := a[label]; ok {
			label = alias
		}
		out[label] = struct{}{}
	}
	return out
}
