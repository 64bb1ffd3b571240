package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/gridpark/pkg/errors"
	"github.com/matzehuels/gridpark/pkg/tile"
)

// Totals holds the catalog attributes summed over every cell of a layout.
type Totals struct {
	CostUpfront   int `json:"cost_upfront"`
	CostYearly    int `json:"cost_yearly"`
	CO2Upfront    int `json:"co2_cost_upfront"`
	CO2Yearly     int `json:"co2_cost_yearly"`
	CO2Absorption int `json:"co2_absorption_yearly"`
}

// add returns t with one cell's attributes folded in.
func (t Totals) add(a tile.Attributes) Totals {
	return Totals{
		CostUpfront:   t.CostUpfront + a.CostUpfront,
		CostYearly:    t.CostYearly + a.CostYearly,
		CO2Upfront:    t.CO2Upfront + a.CO2Upfront,
		CO2Yearly:     t.CO2Yearly + a.CO2Yearly,
		CO2Absorption: t.CO2Absorption + a.CO2Absorption,
	}
}

// NetCO2Yearly is yearly absorption minus yearly emissions.
func (t Totals) NetCO2Yearly() int {
	return t.CO2Absorption - t.CO2Yearly
}

// Layout is an evaluated grid of tile kinds. It is safe for concurrent reads.
type Layout struct {
	grid   [][]tile.Kind
	rows   int
	cols   int
	totals Totals
	pretty string
	flat   string
}

// New validates grid and builds a Layout from a private copy of it.
//
// It returns a MALFORMED_GRID error if grid is empty or its rows differ in
// length, and an UNKNOWN_TILE_KIND error if any cell is outside the catalog.
func New(grid [][]tile.Kind) (*Layout, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedGrid, "grid must have at least one row and one column")
	}
	rows, cols := len(grid), len(grid[0])

	cells := make([][]tile.Kind, rows)
	prettyRows := make([]string, rows)
	flatRows := make([]string, rows)
	var totals Totals

	for r, row := range grid {
		if len(row) != cols {
			return nil, errors.New(errors.ErrCodeMalformedGrid, "row %d has %d cells, want %d", r, len(row), cols)
		}
		cells[r] = make([]tile.Kind, cols)
		copy(cells[r], row)

		var pretty, flat strings.Builder
		for c, k := range row {
			a, err := tile.Lookup(k)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeUnknownTileKind, err, "cell (%d,%d)", r, c)
			}
			totals = totals.add(a)
			pretty.WriteString(a.Glyph)
			flat.WriteRune(a.Code)
		}
		prettyRows[r] = pretty.String()
		flatRows[r] = flat.String()
	}

	return &Layout{
		grid:   cells,
		rows:   rows,
		cols:   cols,
		totals: totals,
		pretty: strings.Join(prettyRows, "\n"),
		flat:   strings.Join(flatRows, "_"),
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and fixed grids.
func MustNew(grid [][]tile.Kind) *Layout {
	l, err := New(grid)
	if err != nil {
		panic(err)
	}
	return l
}

// Rows returns the number of rows.
func (l *Layout) Rows() int { return l.rows }

// Cols returns the number of columns.
func (l *Layout) Cols() int { return l.cols }

// Size returns the side length used by scoring, which is the row count.
// Layouts produced by the enumerate package are always square.
func (l *Layout) Size() int { return l.rows }

// At returns the kind at (row, col). It panics if the coordinate is out of range.
func (l *Layout) At(row, col int) tile.Kind { return l.grid[row][col] }

// InBounds reports whether (row, col) lies within the grid.
func (l *Layout) InBounds(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}

// Grid returns a copy of the underlying grid.
func (l *Layout) Grid() [][]tile.Kind {
	out := make([][]tile.Kind, l.rows)
	for r := range l.grid {
		out[r] = make([]tile.Kind, l.cols)
		copy(out[r], l.grid[r])
	}
	return out
}

// Totals returns the summed catalog attributes.
func (l *Layout) Totals() Totals { return l.totals }

// Pretty returns the glyph rendering, one line per row.
func (l *Layout) Pretty() string { return l.pretty }

// FlatCode returns the letter encoding, rows joined by "_".
func (l *Layout) FlatCode() string { return l.flat }

// String returns the flat code.
func (l *Layout) String() string { return l.flat }

// PrettyWidth returns the terminal display width of the widest Pretty row.
func (l *Layout) PrettyWidth() int {
	width := 0
	for _, line := range strings.Split(l.pretty, "\n") {
		width = max(width, runewidth.StringWidth(line))
	}
	return width
}

// Count returns the number of cells of the given kind.
func (l *Layout) Count(kind tile.Kind) int {
	n := 0
	for _, row := range l.grid {
		for _, k := range row {
			if k == kind {
				n++
			}
		}
	}
	return n
}
