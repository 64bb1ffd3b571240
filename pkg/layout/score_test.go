package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/gridpark/pkg/tile"
)

func TestCountNeighbors(t *testing.T) {
	l := mustParse(t, "PGP_GTG_PBP")

	assert.Equal(t, 4, l.CountNeighbors(1, 1, tile.Path))
	assert.Equal(t, 1, l.CountNeighbors(1, 1, tile.Bench))
	assert.Equal(t, 3, l.CountNeighbors(1, 1, tile.Grass))

	// Corner: only 3 in-bounds neighbors exist.
	assert.Equal(t, 2, l.CountNeighbors(0, 0, tile.Grass))
	assert.Equal(t, 1, l.CountNeighbors(0, 0, tile.Tree))
	assert.Equal(t, 0, l.CountNeighbors(0, 0, tile.Path))
}

func TestGreenery(t *testing.T) {
	tests := []struct {
		name string
		code string
		want float64
	}{
		{"all grass 2x2", "GG_GG", 4},
		{"single path", "P", 0},
		{"single tree", "T", 5},
		{"middle column", "GPG_GPG_GPG", 20},
		{"tree ringed by paths", "PPP_PTP_PPP", 45},
		{"bench and path", "BP_GG", 6},
		{"tree next to tree", "TT", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, mustParse(t, tt.code).Greenery(), 1e-9)
		})
	}
}

func TestBenchScore(t *testing.T) {
	tests := []struct {
		name string
		code string
		want float64
	}{
		{"corner next to path", "BP_GG", 1.5},
		{"corner no path", "BG_GG", 1.0},
		{"center next to path", "GGG_GBP_GGG", 1.0},
		{"center isolated", "GGG_GBG_GGG", 0.5},
		{"diagonal path counts", "PGG_GBG_GGG", 1.0},
		{"no benches", "GPG_GPG_GPG", 0},
		{"two benches", "BPB", 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, mustParse(t, tt.code).BenchScore(), 1e-9)
		})
	}
}

func TestAccessibility(t *testing.T) {
	tests := []struct {
		name string
		code string
		want float64
	}{
		// 1*1 + 1*1 + 1 path
		{"single path", "P", 3},
		// grass/size only
		{"all grass 2x2", "GG_GG", 2},
		// 9*(3/3) + 3 paths + 6/3 grass
		{"middle column", "GPG_GPG_GPG", 14},
		// 9 + 9 + 5 paths + 4/3 grass
		{"cross", "GPG_PPP_GPG", 23 + 4.0/3},
		// 4*(2/2)*2 + 4 paths
		{"all path 2x2", "PP_PP", 12},
		// bench 1.5*2 + 1 path + 2/2 grass
		{"bench and path", "BP_GG", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, mustParse(t, tt.code).Accessibility(), 1e-9)
		})
	}
}

func TestEvaluate(t *testing.T) {
	s := Evaluate(mustParse(t, "GPG_GPG_GPG"))
	assert.Equal(t, Scores{
		Greenery:       20,
		Accessibility:  14,
		BenchScore:     0,
		VerticalPath:   3,
		HorizontalPath: 0,
	}, s)
}
