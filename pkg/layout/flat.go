package layout

import (
	"strings"

	"github.com/matzehuels/gridpark/pkg/errors"
	"github.com/matzehuels/gridpark/pkg/tile"
)

// ParseFlat rebuilds a Layout from its flat code, e.g. "GPG_GPG_GPG".
// Letters are matched case-insensitively against the tile catalog.
func ParseFlat(code string) (*Layout, error) {
	if err := errors.ValidateFlatCode(code); err != nil {
		return nil, err
	}

	lines := strings.Split(code, "_")
	grid := make([][]tile.Kind, len(lines))
	for r, line := range lines {
		row := make([]tile.Kind, 0, len(line))
		for _, ch := range line {
			k, err := tile.ParseCode(ch)
			if err != nil {
				return nil, err
			}
			row = append(row, k)
		}
		grid[r] = row
	}
	return New(grid)
}
