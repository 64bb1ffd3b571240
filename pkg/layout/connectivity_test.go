package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathLength(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		vertical   int
		horizontal int
	}{
		{"single path cell", "P", 1, 1},
		{"single grass cell", "G", 0, 0},
		{"all grass 2x2", "GG_GG", 0, 0},
		{"all path 2x2", "PP_PP", 2, 2},
		{"middle column", "GPG_GPG_GPG", 3, 0},
		{"middle row", "GGG_PPP_GGG", 0, 3},
		{"cross", "GPG_PPP_GPG", 3, 3},
		{"diagonal does not connect", "PG_GP", 0, 0},
		{"winding", "PGG_PPG_GPP", 4, 4},
		{"dead end then corridor", "PGP_PGP_GGP", 3, 0},
		{"two corridors", "PGGP_PGGP_PGGP_PGGP", 4, 0},
		{"single row", "PGP", 1, 0},
		{"single column", "P_P_G", 0, 1},
		{"shortest of detour and straight", "PPPP_PGGP_PGGP_PPPP", 4, 4},
		{"bench blocks corridor", "GPG_GBG_GPG", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustParse(t, tt.code)
			assert.Equal(t, tt.vertical, l.VerticalPathLength(), "vertical")
			assert.Equal(t, tt.horizontal, l.HorizontalPathLength(), "horizontal")
		})
	}
}

func TestPathLengthLongSnake(t *testing.T) {
	// 5x5 serpentine corridor; the crossing starts at the top-right seed.
	l := mustParse(t, "PPPPP_GGGGP_PPPPP_PGGGG_PPPPP")
	assert.Equal(t, 9, l.VerticalPathLength())
	// Row 0 is already all path.
	assert.Equal(t, 5, l.HorizontalPathLength())
}
