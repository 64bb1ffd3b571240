package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpark/pkg/observability"
	"github.com/matzehuels/gridpark/pkg/pipeline"
)

// enumerateCommand creates the enumerate command for exporting layout spaces.
func (c *CLI) enumerateCommand() *cobra.Command {
	var formatsStr string
	opts := pipeline.Options{
		Size:      pipeline.DefaultSize,
		Tiles:     pipeline.DefaultTiles,
		OutputDir: pipeline.DefaultOutputDir,
	}

	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Export every layout of a grid size",
		Long: `Export every layout of a grid size.

Layouts are generated lazily in row-major order, the last cell varying
fastest. With --unique only the first layout of each rotation/reflection
class is kept. Output files are named after the size, e.g. layouts3.csv or
unique_layouts3_cost.yaml; with --batch-size they are numbered per batch
(layouts3_0001.csv, ...).

Formats:
  csv      one row per layout (pretty, costs, CO2), zstd with --compress
  cost     YAML resource-side design problem
  quality  YAML functionality-side design problem (accessibility, greenery)
  poset    chain of flat codes in poset syntax
  dot      the chain as Graphviz DOT
  svg      the chain rendered with Graphviz
  summary  JSON run summary`,
		Example: `  gridpark enumerate --size 2 --tiles G,T --unique --format csv,cost,quality
  gridpark enumerate --size 4 --batch-size 100000 --compress -o out/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			merged, err := c.loadOptions(cmd, opts)
			if err != nil {
				return err
			}
			return c.runEnumerate(cmd.Context(), merged)
		},
	}

	cmd.Flags().IntVarP(&opts.Size, "size", "n", opts.Size, "grid side length")
	cmd.Flags().StringVarP(&opts.Tiles, "tiles", "t", opts.Tiles, "tile kinds in enumeration order (codes or names)")
	cmd.Flags().BoolVarP(&opts.Unique, "unique", "u", false, "keep one layout per symmetry class")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "stop after this many layouts (0 = all)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", pipeline.FormatCSV, "output formats: csv, cost, quality, poset, dot, svg, summary")
	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", opts.OutputDir, "output directory")
	cmd.Flags().IntVar(&opts.BatchSize, "batch-size", pipeline.DefaultBatchSize, "layouts per output batch (0 = single batch)")
	cmd.Flags().BoolVar(&opts.Compress, "compress", false, "zstd-compress CSV output")
	cmd.Flags().BoolVar(&opts.Scores, "scores", false, "add greenery and accessibility columns to CSV")

	return cmd
}

// runEnumerate executes the pipeline behind a spinner that follows batch progress.
func (c *CLI) runEnumerate(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Enumerating %d×%d layouts of %s...", opts.Size, opts.Size, opts.Tiles))
	spinner.Start()

	progress := &spinnerProgress{spinner: spinner}
	prev := observability.Pipeline()
	observability.SetPipelineHooks(progress)
	defer observability.SetPipelineHooks(prev)

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Enumeration failed")
		if result != nil && len(result.Files) > 0 {
			printWarning("Partial output kept")
			for _, f := range result.Files {
				printFile(f)
			}
		}
		if errors.Is(err, context.Canceled) {
			return context.Canceled
		}
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Exported %s layouts", humanize.Comma(int64(result.Stats.Layouts))))

	printSuccess("Enumeration complete")
	for _, f := range result.Files {
		printFile(f)
	}
	printRunStats(result.Stats)
	printNewline()
	if len(result.Files) > 0 {
		printNextStep("Browse", fmt.Sprintf("gridpark browse --size %d --tiles %s", opts.Size, opts.Tiles))
	}
	return nil
}

// spinnerProgress mirrors batch completion onto the spinner message.
type spinnerProgress struct {
	observability.NoopPipelineHooks
	spinner *Spinner
	total   int
}

func (p *spinnerProgress) OnBatchComplete(_ context.Context, batch, layouts int, _ time.Duration, err error) {
	if err != nil {
		return
	}
	p.total += layouts
	p.spinner.SetMessage(fmt.Sprintf("Exported %s layouts (batch %d)...", humanize.Comma(int64(p.total)), batch))
}
