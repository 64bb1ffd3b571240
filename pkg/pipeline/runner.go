package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/gridpark/pkg/enumerate"
	"github.com/matzehuels/gridpark/pkg/layout"
	"github.com/matzehuels/gridpark/pkg/observability"
	"github.com/matzehuels/gridpark/pkg/tile"
)

// Runner executes enumeration runs.
//
// The Runner is stateless except for the logger - it doesn't store run
// results. Multiple goroutines can safely use the same Runner with
// different options as long as their output files do not collide.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, the default charmbracelet logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete enumerate → score → export pipeline.
//
// On cancellation Execute returns the partial Result together with an error
// wrapping ctx.Err(); batches flushed before the cancellation are listed in
// Result.Files.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	seq, err := opts.Sequence(ctx)
	if err != nil {
		return nil, err
	}
	space, err := enumerate.Count(opts.Kinds(), opts.Size)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	result := &Result{
		RunID: uuid.NewString(),
		Stats: Stats{Space: space},
	}
	logger := opts.Logger.With("run", result.RunID[:8])
	tiles := tile.Codes(opts.Kinds())

	logger.Info("enumerating layouts",
		"size", opts.Size,
		"tiles", tiles,
		"unique", opts.Unique,
		"space", space)

	hooks := observability.Pipeline()
	hooks.OnEnumerateStart(ctx, opts.Size, tiles, opts.Unique)
	started := time.Now()

	err = r.run(ctx, &opts, seq, result, logger)
	if err == nil && opts.wants(FormatSummary) {
		err = writeSummary(ctx, &opts, result, started)
	}
	result.Stats.Total = time.Since(started)
	hooks.OnEnumerateComplete(ctx, result.Stats.Layouts, result.Stats.Total, err)

	if err != nil {
		logger.Warn("run stopped",
			"layouts", result.Stats.Layouts,
			"batches", result.Stats.Batches,
			"err", err)
		return result, err
	}

	logger.Info("exported layouts",
		"layouts", result.Stats.Layouts,
		"batches", result.Stats.Batches,
		"files", len(result.Files),
		"duration", result.Stats.Total)
	return result, nil
}

func (r *Runner) run(ctx context.Context, opts *Options, seq enumerate.Seq, res *Result, logger *log.Logger) error {
	var batch []*layout.Layout
	pulled := time.Now()

	flush := func() error {
		res.Stats.Enumerate += time.Since(pulled)
		res.Stats.Batches++
		n := res.Stats.Batches

		start := time.Now()
		files, err := writeBatch(ctx, opts, batchName(opts, n), batch)
		d := time.Since(start)
		res.Files = append(res.Files, files...)
		res.Stats.Export += d
		observability.Pipeline().OnBatchComplete(ctx, n, len(batch), d, err)
		if err != nil {
			return fmt.Errorf("batch %d: %w", n, err)
		}

		res.Stats.Layouts += len(batch)
		logger.Debug("flushed batch",
			"batch", n,
			"layouts", len(batch),
			"duration", d)
		batch = batch[:0]
		pulled = time.Now()
		return nil
	}

	stopped := func() error {
		if err := ctx.Err(); err != nil {
			res.Stats.Incomplete = true
			return fmt.Errorf("enumerate: %w", err)
		}
		return nil
	}

	for l := range seq {
		if err := stopped(); err != nil {
			return err
		}
		batch = append(batch, l)
		if opts.BatchSize > 0 && len(batch) == opts.BatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	// A unique sequence ends quietly on cancellation.
	if err := stopped(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return flush()
	}
	res.Stats.Enumerate += time.Since(pulled)
	return nil
}

// batchName returns the file stem of batch n (1-based). Unbatched runs use
// the bare base name.
func batchName(opts *Options, n int) string {
	if opts.BatchSize > 0 {
		return fmt.Sprintf("%s_%04d", opts.BaseName(), n)
	}
	return opts.BaseName()
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
