package enumerate

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/gridpark/pkg/layout"
	"github.com/matzehuels/gridpark/pkg/tile"
)

func randomGrid(rng *rand.Rand, rows, cols int) [][]tile.Kind {
	kinds := tile.All()
	grid := make([][]tile.Kind, rows)
	for r := range grid {
		grid[r] = make([]tile.Kind, cols)
		for c := range grid[r] {
			grid[r][c] = kinds[rng.IntN(len(kinds))]
		}
	}
	return grid
}

func flat(t *testing.T, grid [][]tile.Kind) string {
	t.Helper()
	l, err := layout.New(grid)
	require.NoError(t, err)
	return l.FlatCode()
}

func TestTransformsImages(t *testing.T) {
	l, err := layout.ParseFlat("GT_PB")
	require.NoError(t, err)
	grid := l.Grid()

	want := map[string]string{
		"identity":                  "GT_PB",
		"flip-vertical":             "PB_GT",
		"flip-horizontal":           "TG_BP",
		"rotate-90":                 "PG_BT",
		"rotate-90-flip-vertical":   "BT_PG",
		"rotate-90-flip-horizontal": "GP_TB",
		"rotate-180":                "BP_TG",
		"rotate-270":                "TB_GP",
	}
	require.Len(t, Transforms, 8)
	images := map[string]bool{}
	for _, tr := range Transforms {
		got := flat(t, tr.Apply(grid))
		assert.Equal(t, want[tr.Name], got, tr.Name)
		images[got] = true
	}
	assert.Len(t, images, 8, "an asymmetric grid has 8 distinct images")
}

func TestTransformsRectangular(t *testing.T) {
	l, err := layout.ParseFlat("GTP_BGG")
	require.NoError(t, err)
	for _, tr := range Transforms {
		img := tr.Apply(l.Grid())
		if tr.swap {
			assert.Len(t, img, 3, tr.Name)
			assert.Len(t, img[0], 2, tr.Name)
		} else {
			assert.Len(t, img, 2, tr.Name)
			assert.Len(t, img[0], 3, tr.Name)
		}
	}
}

func TestCanonicalInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		size := 1 + rng.IntN(5)
		grid := randomGrid(rng, size, size)
		sig := Canonical(grid)
		for _, tr := range Transforms {
			require.Equal(t, sig, Canonical(tr.Apply(grid)), "transform %s of %s", tr.Name, flat(t, grid))
		}
	}
}

func TestCanonicalInvariantUnderComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	grid := randomGrid(rng, 4, 4)
	sig := Canonical(grid)
	for _, a := range Transforms {
		for _, b := range Transforms {
			assert.Equal(t, sig, Canonical(b.Apply(a.Apply(grid))), "%s then %s", a.Name, b.Name)
		}
	}
}

func TestCanonicalDistinguishes(t *testing.T) {
	a, _ := layout.ParseFlat("GG_GT")
	b, _ := layout.ParseFlat("GG_TT")
	c, _ := layout.ParseFlat("GT_TG")
	assert.NotEqual(t, CanonicalLayout(a), CanonicalLayout(b))
	assert.NotEqual(t, CanonicalLayout(b), CanonicalLayout(c))
	assert.NotEqual(t, CanonicalLayout(a), CanonicalLayout(c))
}

func TestCanonicalPicksSmallestImage(t *testing.T) {
	// "bench" < "grass" < "path" < "tree": the bench must end up top-left.
	l, _ := layout.ParseFlat("GG_GB")
	assert.Equal(t, Signature("bench,grass/grass,grass"), CanonicalLayout(l))
}

func TestCompareTokens(t *testing.T) {
	assert.Zero(t, compareTokens([][]string{{"a"}}, [][]string{{"a"}}))
	assert.Negative(t, compareTokens([][]string{{"a", "b"}}, [][]string{{"a", "c"}}))
	assert.Positive(t, compareTokens([][]string{{"b"}}, [][]string{{"a", "z"}}))
	assert.Negative(t, compareTokens([][]string{{"a"}}, [][]string{{"a", "a"}}))
	assert.Negative(t, compareTokens([][]string{{"a"}}, [][]string{{"a"}, {"a"}}))
}
