package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpark/pkg/enumerate"
	pkgio "github.com/matzehuels/gridpark/pkg/io"
	"github.com/matzehuels/gridpark/pkg/layout"
	"github.com/matzehuels/gridpark/pkg/pipeline"
)

// evaluateCommand creates the evaluate command for scoring single layouts.
func (c *CLI) evaluateCommand() *cobra.Command {
	var (
		asJSON     bool
		symmetries bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate CODE [CODE...]",
		Short: "Score layouts given as flat codes",
		Long: `Score one or more layouts given as flat codes.

A flat code lists each row's tile letters, rows separated by underscores:
G grass, T tree, P path, B bench. For example GPG_GPG_GPG is a 3×3 park
with a path down the middle.`,
		Example: `  gridpark evaluate GPG_GPG_GPG
  gridpark evaluate --json BP_GG TT_TT
  gridpark evaluate --symmetries GT_PB`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			evals := make([]*pipeline.Evaluation, 0, len(args))
			for _, code := range args {
				ev, err := pipeline.Evaluate(code)
				if err != nil {
					return fmt.Errorf("evaluate %s: %w", code, err)
				}
				evals = append(evals, ev)
			}

			if asJSON {
				return writeEvaluationsJSON(cmd.OutOrStdout(), evals)
			}
			for i, ev := range evals {
				if i > 0 {
					printNewline()
				}
				printEvaluation(ev)
				if symmetries {
					printSymmetries(ev.FlatCode)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print evaluations as JSON")
	cmd.Flags().BoolVar(&symmetries, "symmetries", false, "also list the layout's rotations and reflections")

	return cmd
}

// writeEvaluationsJSON writes a single object for one layout, an array otherwise.
func writeEvaluationsJSON(w io.Writer, evals []*pipeline.Evaluation) error {
	if len(evals) == 1 {
		return pkgio.WriteJSON(evals[0], w)
	}
	return pkgio.WriteJSON(evals, w)
}

// symmetryCodes returns the flat code of every dihedral image of l, keyed
// by transform name, in enumerate.Transforms order.
func symmetryCodes(l *layout.Layout) [][2]string {
	out := make([][2]string, 0, len(enumerate.Transforms))
	for _, t := range enumerate.Transforms {
		img := layout.MustNew(t.Apply(l.Grid()))
		out = append(out, [2]string{t.Name, img.FlatCode()})
	}
	return out
}

func printSymmetries(code string) {
	l, err := layout.ParseFlat(code)
	if err != nil {
		return
	}
	printNewline()
	printInfo("Symmetry class %s", StyleHighlight.Render(string(enumerate.CanonicalLayout(l))))
	for _, pair := range symmetryCodes(l) {
		printDetail("%-26s %s", pair[0], pair[1])
	}
}
