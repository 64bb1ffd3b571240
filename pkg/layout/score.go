package layout

import "github.com/matzehuels/gridpark/pkg/tile"

// moore holds the 8 offsets of a cell's Moore neighborhood.
var moore = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// greeneryWeight is the per-cell greenery multiplier; kinds not listed weigh 0.
var greeneryWeight = map[tile.Kind]float64{
	tile.Tree:  5,
	tile.Grass: 1,
}

// Bench score contributions.
const (
	benchEdgeAndPath = 1.5
	benchEdgeOrPath  = 1.0
	benchIsolated    = 0.5
)

// Scores bundles every derived metric of a layout.
type Scores struct {
	Greenery       float64 `json:"greenery"`
	Accessibility  float64 `json:"accessibility"`
	BenchScore     float64 `json:"bench_score"`
	VerticalPath   int     `json:"vertical_path"`
	HorizontalPath int     `json:"horizontal_path"`
}

// Evaluate computes all scores of l.
func Evaluate(l *Layout) Scores {
	return Scores{
		Greenery:       l.Greenery(),
		Accessibility:  l.Accessibility(),
		BenchScore:     l.BenchScore(),
		VerticalPath:   l.VerticalPathLength(),
		HorizontalPath: l.HorizontalPathLength(),
	}
}

// CountNeighbors counts the in-bounds Moore neighbors of (row, col) that hold
// kind. Offsets falling outside the grid count as nothing.
func (l *Layout) CountNeighbors(row, col int, kind tile.Kind) int {
	n := 0
	for _, d := range moore {
		nr, nc := row+d[0], col+d[1]
		if l.InBounds(nr, nc) && l.grid[nr][nc] == kind {
			n++
		}
	}
	return n
}

// Greenery scores how much greenery visitors can enjoy. Every tree adds 5 and
// every grass tile adds 1, and each adds its weight again for every path or
// bench among its Moore neighbors. The grid edge earns no bonus.
func (l *Layout) Greenery() float64 {
	score := 0.0
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			w := greeneryWeight[l.grid[r][c]]
			if w == 0 {
				continue
			}
			visitors := l.CountNeighbors(r, c, tile.Path) + l.CountNeighbors(r, c, tile.Bench)
			score += w + float64(visitors)*w
		}
	}
	return score
}

// Accessibility scores how easy the park is to cross and use:
//
//	size²·(size/vertical) + size²·(size/horizontal) + paths + grass/size + size·BenchScore
//
// where a missing corridor contributes 0 instead of size/0. The result is
// unit-less and unbounded; it is not normalized to [0, 1].
func (l *Layout) Accessibility() float64 {
	size := float64(l.Size())
	area := size * size

	component := func(length int) float64 {
		if length > 0 {
			return size / float64(length)
		}
		return 0
	}

	return component(l.VerticalPathLength())*area +
		component(l.HorizontalPathLength())*area +
		float64(l.Count(tile.Path)) +
		float64(l.Count(tile.Grass))/size +
		size*l.BenchScore()
}

// BenchScore rates every bench by placement: 1.5 when it is both on the grid
// edge and next to a path (Moore neighborhood), 1.0 when only one holds, and
// 0.5 otherwise.
func (l *Layout) BenchScore() float64 {
	score := 0.0
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			if l.grid[r][c] != tile.Bench {
				continue
			}
			onEdge := r == 0 || r == l.rows-1 || c == 0 || c == l.cols-1
			nearPath := l.CountNeighbors(r, c, tile.Path) > 0
			switch {
			case onEdge && nearPath:
				score += benchEdgeAndPath
			case onEdge || nearPath:
				score += benchEdgeOrPath
			default:
				score += benchIsolated
			}
		}
	}
	return score
}
