package enumerate

import (
	"context"
	"iter"
	"math/big"
	"slices"

	"github.com/matzehuels/gridpark/pkg/errors"
	"github.com/matzehuels/gridpark/pkg/layout"
	"github.com/matzehuels/gridpark/pkg/tile"
)

// Seq is a lazy, restartable sequence of layouts.
type Seq = iter.Seq[*layout.Layout]

// All returns a lazy sequence over every size×size layout drawn from kinds.
// The kinds slice is copied; its order defines the enumeration order.
func All(kinds []tile.Kind, size int) (iter.Seq[*layout.Layout], error) {
	alphabet, err := validate(kinds, size)
	if err != nil {
		return nil, err
	}
	return func(yield func(*layout.Layout) bool) {
		for grid := range grids(alphabet, size) {
			// Kinds are validated and the grid is square, so New cannot fail.
			if !yield(layout.MustNew(grid)) {
				return
			}
		}
	}, nil
}

// Unique is like All but yields only the first layout of each symmetry class.
func Unique(kinds []tile.Kind, size int) (iter.Seq[*layout.Layout], error) {
	return UniqueContext(context.Background(), kinds, size)
}

// UniqueContext is like Unique but ends the sequence once ctx is done, even
// while skipping duplicates. Callers check ctx.Err() to tell a cancelled run
// from an exhausted one.
func UniqueContext(ctx context.Context, kinds []tile.Kind, size int) (iter.Seq[*layout.Layout], error) {
	alphabet, err := validate(kinds, size)
	if err != nil {
		return nil, err
	}
	return func(yield func(*layout.Layout) bool) {
		seen := make(map[Signature]struct{})
		for grid := range grids(alphabet, size) {
			if ctx.Err() != nil {
				return
			}
			sig := Canonical(grid)
			if _, dup := seen[sig]; dup {
				continue
			}
			seen[sig] = struct{}{}
			if !yield(layout.MustNew(grid)) {
				return
			}
		}
	}, nil
}

// Limit stops seq after n layouts. n <= 0 means no limit.
func Limit(seq iter.Seq[*layout.Layout], n int) iter.Seq[*layout.Layout] {
	if n <= 0 {
		return seq
	}
	return func(yield func(*layout.Layout) bool) {
		i := 0
		for l := range seq {
			if !yield(l) {
				return
			}
			if i++; i >= n {
				return
			}
		}
	}
}

// Count returns len(kinds)^(size²), the number of layouts All yields.
func Count(kinds []tile.Kind, size int) (*big.Int, error) {
	if _, err := validate(kinds, size); err != nil {
		return nil, err
	}
	base := big.NewInt(int64(len(kinds)))
	exp := big.NewInt(int64(size) * int64(size))
	return new(big.Int).Exp(base, exp, nil), nil
}

// grids walks the product as an odometer over alphabet indices. Every yielded
// grid is freshly allocated.
func grids(alphabet []tile.Kind, size int) iter.Seq[[][]tile.Kind] {
	return func(yield func([][]tile.Kind) bool) {
		cells := size * size
		digits := make([]int, cells)
		for {
			grid := make([][]tile.Kind, size)
			for r := range grid {
				row := make([]tile.Kind, size)
				for c := range row {
					row[c] = alphabet[digits[r*size+c]]
				}
				grid[r] = row
			}
			if !yield(grid) {
				return
			}

			i := cells - 1
			for ; i >= 0; i-- {
				digits[i]++
				if digits[i] < len(alphabet) {
					break
				}
				digits[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

func validate(kinds []tile.Kind, size int) ([]tile.Kind, error) {
	if err := errors.ValidateGridSize(size); err != nil {
		return nil, err
	}
	if len(kinds) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "at least one tile kind is required")
	}
	seen := make(map[tile.Kind]bool, len(kinds))
	for _, k := range kinds {
		if _, err := tile.Lookup(k); err != nil {
			return nil, err
		}
		if seen[k] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate tile kind %s", k)
		}
		seen[k] = true
	}
	return slices.Clone(kinds), nil
}
