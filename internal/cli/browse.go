package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpark/pkg/pipeline"
)

// browseCommand creates the browse command for interactive layout inspection.
func (c *CLI) browseCommand() *cobra.Command {
	opts := pipeline.Options{
		Size:   pipeline.DefaultSize,
		Tiles:  pipeline.DefaultTiles,
		Unique: true,
		Limit:  defaultBrowseLimit,
	}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse scored layouts interactively",
		Long: `Browse scored layouts interactively.

Loads up to --limit layouts (one per symmetry class unless --unique=false),
scores them and shows them in a sortable table. Pressing enter prints the
selected layout's full evaluation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := c.loadOptions(cmd, opts)
			if err != nil {
				return err
			}
			return c.runBrowse(cmd.Context(), merged)
		},
	}

	cmd.Flags().IntVarP(&opts.Size, "size", "n", opts.Size, "grid side length")
	cmd.Flags().StringVarP(&opts.Tiles, "tiles", "t", opts.Tiles, "tile kinds in enumeration order (codes or names)")
	cmd.Flags().BoolVarP(&opts.Unique, "unique", "u", opts.Unique, "keep one layout per symmetry class")
	cmd.Flags().IntVar(&opts.Limit, "limit", opts.Limit, "maximum layouts to load")

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, opts pipeline.Options) error {
	evals, err := loadEvaluations(ctx, &opts)
	if err != nil {
		return err
	}
	if len(evals) == 0 {
		printDetail("No layouts to browse")
		return nil
	}
	loggerFromContext(ctx).Debug("loaded layouts", "count", len(evals), "size", opts.Size)

	p := tea.NewProgram(NewLayoutBrowserModel(evals), tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("browser: %w", err)
	}

	fm, ok := finalModel.(LayoutBrowserModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}
	printEvaluation(fm.Selected)
	printNewline()
	printNextStep("Symmetries", "gridpark evaluate --symmetries "+fm.Selected.FlatCode)
	return nil
}

// loadEvaluations scores the layouts opts describes, honouring Limit.
func loadEvaluations(ctx context.Context, opts *pipeline.Options) ([]*pipeline.Evaluation, error) {
	seq, err := opts.Sequence(ctx)
	if err != nil {
		return nil, err
	}
	var evals []*pipeline.Evaluation
	for l := range seq {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		evals = append(evals, pipeline.EvaluateLayout(l))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return evals, nil
}
