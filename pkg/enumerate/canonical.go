package enumerate

import (
	"strings"

	"github.com/matzehuels/gridpark/pkg/layout"
	"github.com/matzehuels/gridpark/pkg/tile"
)

// Signature identifies a grid up to rotation and reflection.
type Signature string

// Transform is one element of the dihedral group of the square.
type Transform struct {
	Name string

	// swap reports whether the image has the source's columns as rows.
	swap bool
	// at maps an image coordinate (i, j) to a source coordinate for a source
	// of rows×cols cells.
	at func(i, j, rows, cols int) (int, int)
}

// Transforms lists the eight symmetries of the square. Rotations are clockwise.
var Transforms = []Transform{
	{Name: "identity", at: func(i, j, _, _ int) (int, int) { return i, j }},
	{Name: "flip-vertical", at: func(i, j, rows, _ int) (int, int) { return rows - 1 - i, j }},
	{Name: "flip-horizontal", at: func(i, j, _, cols int) (int, int) { return i, cols - 1 - j }},
	{Name: "rotate-90", swap: true, at: func(i, j, rows, _ int) (int, int) { return rows - 1 - j, i }},
	{Name: "rotate-90-flip-vertical", swap: true, at: func(i, j, rows, cols int) (int, int) { return rows - 1 - j, cols - 1 - i }},
	{Name: "rotate-90-flip-horizontal", swap: true, at: func(i, j, _, _ int) (int, int) { return j, i }},
	{Name: "rotate-180", at: func(i, j, rows, cols int) (int, int) { return rows - 1 - i, cols - 1 - j }},
	{Name: "rotate-270", swap: true, at: func(i, j, _, cols int) (int, int) { return j, cols - 1 - i }},
}

// Apply returns the image of grid under t. grid must be rectangular.
func (t Transform) Apply(grid [][]tile.Kind) [][]tile.Kind {
	rows, cols := len(grid), 0
	if rows > 0 {
		cols = len(grid[0])
	}
	outRows, outCols := rows, cols
	if t.swap {
		outRows, outCols = cols, rows
	}
	out := make([][]tile.Kind, outRows)
	for i := range out {
		out[i] = make([]tile.Kind, outCols)
		for j := range out[i] {
			r, c := t.at(i, j, rows, cols)
			out[i][j] = grid[r][c]
		}
	}
	return out
}

// Canonical returns the symmetry-invariant signature of grid: the
// lexicographically smallest of its eight images, compared row by row and
// cell by cell on kind names.
func Canonical(grid [][]tile.Kind) Signature {
	var best [][]string
	for _, t := range Transforms {
		img := tokens(t.Apply(grid))
		if best == nil || compareTokens(img, best) < 0 {
			best = img
		}
	}
	return encode(best)
}

// CanonicalLayout is Canonical applied to a layout's grid.
func CanonicalLayout(l *layout.Layout) Signature {
	return Canonical(l.Grid())
}

func tokens(grid [][]tile.Kind) [][]string {
	out := make([][]string, len(grid))
	for r, row := range grid {
		out[r] = make([]string, len(row))
		for c, k := range row {
			out[r][c] = k.String()
		}
	}
	return out
}

// compareTokens orders grids lexicographically: rows first, then cells within
// a row, with a proper prefix sorting first.
func compareTokens(a, b [][]string) int {
	for r := 0; r < len(a) && r < len(b); r++ {
		ra, rb := a[r], b[r]
		for c := 0; c < len(ra) && c < len(rb); c++ {
			if cmp := strings.Compare(ra[c], rb[c]); cmp != 0 {
				return cmp
			}
		}
		if len(ra) != len(rb) {
			return len(ra) - len(rb)
		}
	}
	return len(a) - len(b)
}

// encode joins tokens with separators that never occur in kind names.
func encode(grid [][]string) Signature {
	rows := make([]string, len(grid))
	for r, row := range grid {
		rows[r] = strings.Join(row, ",")
	}
	return Signature(strings.Join(rows, "/"))
}
