package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpark/pkg/enumerate"
	"github.com/matzehuels/gridpark/pkg/pipeline"
	"github.com/matzehuels/gridpark/pkg/tile"
)

// countCommand creates the count command for sizing layout spaces.
func (c *CLI) countCommand() *cobra.Command {
	var (
		size   int
		tiles  string
		unique bool
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count the layouts of a grid size",
		Long: `Count the layouts of a grid size.

The total is |tiles|^(size²) and is computed exactly. With --unique the
symmetry classes are counted by enumerating every layout, which takes as
long as the enumeration itself; interrupt with Ctrl-C.`,
		Example: `  gridpark count --size 5
  gridpark count --size 3 --tiles G,T --unique`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCount(cmd.Context(), size, tiles, unique)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", pipeline.DefaultSize, "grid side length")
	cmd.Flags().StringVarP(&tiles, "tiles", "t", pipeline.DefaultTiles, "tile kinds (codes or names)")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "also count symmetry classes")

	return cmd
}

func (c *CLI) runCount(ctx context.Context, size int, tiles string, unique bool) error {
	kinds, err := tile.ParseKinds(tiles)
	if err != nil {
		return err
	}
	total, err := enumerate.Count(kinds, size)
	if err != nil {
		return err
	}

	printKeyValue("Grid", fmt.Sprintf("%d×%d", size, size))
	printKeyValue("Tiles", tile.Codes(kinds))
	printKeyValue("Layouts", humanize.BigComma(total))
	if !unique {
		return nil
	}

	if total.Cmp(big.NewInt(1_000_000)) > 0 {
		printWarning("Counting symmetry classes visits all %s layouts", humanize.BigComma(total))
	}
	spinner := newSpinnerWithContext(ctx, "Counting symmetry classes...")
	spinner.Start()
	n, err := countUnique(ctx, kinds, size)
	spinner.Stop()
	if err != nil {
		return err
	}
	printKeyValue("Unique", humanize.Comma(int64(n)))
	return nil
}

// countUnique drains enumerate.UniqueContext, stopping early if ctx is cancelled.
func countUnique(ctx context.Context, kinds []tile.Kind, size int) (int, error) {
	seq, err := enumerate.UniqueContext(ctx, kinds, size)
	if err != nil {
		return 0, err
	}
	n := 0
	for range seq {
		n++
	}
	return n, ctx.Err()
}
