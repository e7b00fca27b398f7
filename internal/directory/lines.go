package directory

import (
	"sort"

	"github.com/vbb-change-positions/pkg/positions/models"
)

// choosableProducts are the only products offered when selecting lines.
var choosableProducts = map[string]bool{
	models.ProductSubway:   true,
	models.ProductSuburban: true,
}

// ChoosableLines keeps subway and suburban lines, drops duplicate names
// (first one wins) and sorts the result by name.
func ChoosableLines(lines []models.Line) []models.Line {
	seen := make(map[string]bool, len(lines))
	result := make([]models.Line, 0, len(lines))
	for _, l := range lines {
		if !choosableProducts[l.Product] || seen[l.Name] {
			continue
		}
		seen[l.Name] = true
		result = append(result, l)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
