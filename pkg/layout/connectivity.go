package layout

import "github.com/matzehuels/gridpark/pkg/tile"

// orthogonal holds the 4-connected moves used by corridor search.
var orthogonal = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

type step struct {
	row, col int
	length   int
}

// VerticalPathLength returns the number of path tiles on the shortest
// 4-connected corridor from any path tile in the top row to the bottom row,
// counting the starting tile. It returns 0 if no such corridor exists.
func (l *Layout) VerticalPathLength() int {
	var seeds []step
	for c := 0; c < l.cols; c++ {
		if l.grid[0][c] == tile.Path {
			seeds = append(seeds, step{row: 0, col: c, length: 1})
		}
	}
	last := l.rows - 1
	return l.crossing(seeds, func(r, _ int) bool { return r == last })
}

// HorizontalPathLength is VerticalPathLength from the left column to the
// right column.
func (l *Layout) HorizontalPathLength() int {
	var seeds []step
	for r := 0; r < l.rows; r++ {
		if l.grid[r][0] == tile.Path {
			seeds = append(seeds, step{row: r, col: 0, length: 1})
		}
	}
	last := l.cols - 1
	return l.crossing(seeds, func(_, c int) bool { return c == last })
}

// crossing runs a BFS over path tiles from all seeds at once and returns the
// length of the first dequeued step satisfying reached, or 0.
//
// A tile is marked seen when it is enqueued, so each tile is expanded at most
// once and the first goal dequeued is a shortest crossing over all seeds.
//
// Time:   O(R·C).
// Memory: O(R·C) for the seen flags and the queue.
func (l *Layout) crossing(seeds []step, reached func(row, col int) bool) int {
	if len(seeds) == 0 {
		return 0
	}
	seen := make([]bool, l.rows*l.cols)
	queue := make([]step, 0, len(seeds))
	for _, s := range seeds {
		seen[s.row*l.cols+s.col] = true
		queue = append(queue, s)
	}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if reached(cur.row, cur.col) {
			return cur.length
		}
		for _, d := range orthogonal {
			nr, nc := cur.row+d[0], cur.col+d[1]
			if !l.InBounds(nr, nc) || l.grid[nr][nc] != tile.Path {
				continue
			}
			idx := nr*l.cols + nc
			if seen[idx] {
				continue
			}
			seen[idx] = true
			queue = append(queue, step{row: nr, col: nc, length: cur.length + 1})
		}
	}
	return 0
}
