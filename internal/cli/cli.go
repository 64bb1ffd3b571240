// Package cli implements the gridpark command-line interface.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/gridpark/pkg/buildinfo"
	"github.com/matzehuels/gridpark/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "gridpark"

	// defaultBrowseLimit caps how many layouts the browser loads.
	defaultBrowseLimit = 500
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is bound to the persistent --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "gridpark scores and enumerates park grid layouts",
		Long: `gridpark evaluates square park layouts built from grass, trees, paths and
benches. It reports cost, CO2, greenery and accessibility for single layouts
and exports every layout of a grid size (optionally one per symmetry class)
as CSV, YAML design problems, poset chains and Graphviz drawings.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "",
		"TOML run config (default: $"+pipeline.ConfigEnv+")")

	// Register all subcommands
	root.AddCommand(c.evaluateCommand())
	root.AddCommand(c.enumerateCommand())
	root.AddCommand(c.countCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadOptions returns the run config file merged under the flags the user
// actually set on cmd. flagOpts holds the flag-bound values.
func (c *CLI) loadOptions(cmd *cobra.Command, flagOpts pipeline.Options) (pipeline.Options, error) {
	cfg, err := pipeline.LoadConfig(pipeline.ConfigPath(c.configPath))
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := mergeFlags(cfg, flagOpts, cmd.Flags())
	opts.Logger = c.Logger
	return opts, nil
}

// configKeys maps flag names to the TOML keys they override.
var configKeys = map[string]string{
	"size":       "size",
	"tiles":      "tiles",
	"unique":     "unique",
	"limit":      "limit",
	"format":     "formats",
	"output":     "output_dir",
	"batch-size": "batch_size",
	"compress":   "compress",
	"scores":     "scores",
}

// mergeFlags layers src over cfg: an explicitly set flag wins, a key the
// config defines (zero values included) comes next, and the flag default
// fills the rest.
func mergeFlags(cfg *pipeline.Config, src pipeline.Options, flags *pflag.FlagSet) pipeline.Options {
	var dst pipeline.Options
	if cfg != nil {
		dst = cfg.Options
	}
	fromFlag := func(name string) bool {
		if f := flags.Lookup(name); f != nil && f.Changed {
			return true
		}
		return !cfg.IsDefined(configKeys[name])
	}

	if fromFlag("size") {
		dst.Size = src.Size
	}
	if fromFlag("tiles") {
		dst.Tiles = src.Tiles
	}
	if fromFlag("unique") {
		dst.Unique = src.Unique
	}
	if fromFlag("limit") {
		dst.Limit = src.Limit
	}
	if fromFlag("format") {
		dst.Formats = src.Formats
	}
	if fromFlag("output") {
		dst.OutputDir = src.OutputDir
	}
	if fromFlag("batch-size") {
		dst.BatchSize = src.BatchSize
	}
	if fromFlag("compress") {
		dst.Compress = src.Compress
	}
	if fromFlag("scores") {
		dst.Scores = src.Scores
	}
	return dst
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatCSV}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
