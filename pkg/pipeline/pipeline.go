// Package pipeline provides the enumerate → score → export pipeline for gridpark.
//
// This package implements the complete run that the CLI and the HTTP service
// share. By centralizing this logic, every entry point validates options,
// names output files, batches and reports progress the same way.
//
// # Architecture
//
// A run has three steps:
//
//  1. Enumerate: pull layouts lazily from pkg/enumerate (all, or one per
//     symmetry class), optionally bounded by Limit
//  2. Score: totals are computed by layout.New; greenery and accessibility
//     are evaluated by the sinks that need them
//  3. Export: every BatchSize layouts, write one file per requested format
//
// Cancelling the context stops the run between two layouts. Batches already
// flushed stay on disk and are listed in the partial Result.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Size:    3,
//	    Tiles:   "G,T",
//	    Unique:  true,
//	    Formats: []string{"csv", "cost", "quality"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Layouts, result.Files)
//
// Evaluate a single layout:
//
//	ev, err := pipeline.Evaluate("GPG_GPG_GPG")
package pipeline

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpark/pkg/enumerate"
	"github.com/matzehuels/gridpark/pkg/errors"
	"github.com/matzehuels/gridpark/pkg/tile"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, config files and server
// =============================================================================

const (
	// DefaultSize is the default grid side length.
	DefaultSize = 3

	// DefaultTiles is the default tile alphabet, in enumeration order.
	DefaultTiles = "G,T,P,B"

	// DefaultOutputDir is where output files go when no directory is given.
	DefaultOutputDir = "."

	// DefaultBatchSize of zero writes every layout into a single batch.
	DefaultBatchSize = 0
)

// Format constants for output formats.
const (
	FormatCSV     = "csv"
	FormatCost    = "cost"
	FormatQuality = "quality"
	FormatPoset   = "poset"
	FormatDOT     = "dot"
	FormatSVG     = "svg"
	FormatSummary = "summary"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatCSV:     true,
	FormatCost:    true,
	FormatQuality: true,
	FormatPoset:   true,
	FormatDOT:     true,
	FormatSVG:     true,
	FormatSummary: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for an enumeration run.
// This struct supports JSON serialization and TOML config files.
type Options struct {
	// Enumeration options
	Size   int    `json:"size" toml:"size"`
	Tiles  string `json:"tiles,omitempty" toml:"tiles"` // comma-separated codes or names, in order
	Unique bool   `json:"unique,omitempty" toml:"unique"`
	Limit  int    `json:"limit,omitempty" toml:"limit"` // 0 = no limit

	// Export options
	Formats   []string `json:"formats,omitempty" toml:"formats"`
	OutputDir string   `json:"output_dir,omitempty" toml:"output_dir"`
	BatchSize int      `json:"batch_size,omitempty" toml:"batch_size"`
	Compress  bool     `json:"compress,omitempty" toml:"compress"` // zstd for CSV output
	Scores    bool     `json:"scores,omitempty" toml:"scores"`     // add score columns to CSV

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// kinds is Tiles parsed, set by ValidateAndSetDefaults.
	kinds []tile.Kind
	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and in the summary file.
	RunID string

	// Files lists every file written, in write order.
	Files []string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Layouts    int           // layouts exported
	Batches    int           // batches flushed
	Space      *big.Int      // size of the full Cartesian product
	Enumerate  time.Duration // time spent pulling and building layouts
	Export     time.Duration // time spent writing files
	Total      time.Duration
	Incomplete bool // run was cancelled before the sequence was exhausted
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: csv, cost, quality, poset, dot, svg, summary)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := errors.ValidateGridSize(o.Size); err != nil {
		return err
	}
	if o.Limit < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "limit must not be negative, got %d", o.Limit)
	}
	if o.BatchSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "batch size must not be negative, got %d", o.BatchSize)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidatePath(o.OutputDir); err != nil {
		return err
	}

	kinds, err := tile.ParseKinds(o.Tiles)
	if err != nil {
		return err
	}
	// Surface duplicate or unknown kinds here rather than mid-run.
	if _, err := enumerate.Count(kinds, o.Size); err != nil {
		return err
	}
	o.kinds = kinds
	o.validated = true
	return nil
}

// SetDefaults fills zero-valued fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Tiles == "" {
		o.Tiles = DefaultTiles
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatCSV}
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Kinds returns the parsed tile alphabet. It is nil until
// ValidateAndSetDefaults succeeds.
func (o *Options) Kinds() []tile.Kind {
	return o.kinds
}

// BaseName returns the file name stem shared by all outputs of a run,
// e.g. "layouts3" or "unique_layouts3".
func (o *Options) BaseName() string {
	if o.Unique {
		return fmt.Sprintf("unique_layouts%d", o.Size)
	}
	return fmt.Sprintf("layouts%d", o.Size)
}

// Sequence returns the layout sequence the options describe. A unique
// sequence ends early once ctx is done.
func (o *Options) Sequence(ctx context.Context) (enumerate.Seq, error) {
	if err := o.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	var (
		seq enumerate.Seq
		err error
	)
	if o.Unique {
		seq, err = enumerate.UniqueContext(ctx, o.kinds, o.Size)
	} else {
		seq, err = enumerate.All(o.kinds, o.Size)
	}
	if err != nil {
		return nil, err
	}
	return enumerate.Limit(seq, o.Limit), nil
}
