// Package pkg provides the core libraries for gridpark park layout analysis.
//
// # Overview
//
// gridpark models a park as a square grid of tiles (grass, tree, path,
// bench). Every layout has resource totals (money and CO2, upfront and
// yearly) and functionality scores (greenery, accessibility). The pkg
// directory is organized into three areas:
//
//  1. Domain: [tile], [layout], [enumerate]
//  2. Orchestration: [pipeline], [io]
//  3. Service: [server], [observability], [cache]
//
// # Architecture
//
// The typical data flow through gridpark:
//
//	tile catalog
//	     ↓
//	[enumerate] (lazy layout sequence, optional symmetry reduction)
//	     ↓
//	[layout] (totals, scores, path connectivity)
//	     ↓
//	[pipeline] (batches, hooks, run stats)
//	     ↓
//	[io] (CSV, YAML design problems, poset, DOT, SVG)
//
// # Quick Start
//
// Score one layout:
//
//	ev, err := pipeline.Evaluate("GPG_GPG_GPG")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(ev.Totals.CostUpfront, ev.Scores.Greenery)
//
// Export every symmetry class of the 3×3 grass/tree space:
//
//	opts := pipeline.Options{
//	    Size:    3,
//	    Tiles:   "G,T",
//	    Unique:  true,
//	    Formats: []string{pipeline.FormatCSV, pipeline.FormatCost},
//	}
//	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
//
// # Main Packages
//
// [tile] - The tile catalog: per-unit costs, CO2 values, glyphs and codes.
//
// [layout] - Immutable grids with aggregated totals, greenery, accessibility,
// bench scores and crossing path lengths. Parses and prints flat codes such
// as GT_PB.
//
// [enumerate] - Lazy enumeration of all layouts of a size as an iterator,
// plus canonical forms under the eight symmetries of the square.
//
// [pipeline] - Run options (flags or TOML), the batched runner with hooks and
// stats, and per-layout evaluation shared by CLI, browser and server.
//
// [io] - Output sinks: CSV (optionally zstd), cost and quality YAML design
// problems, poset chains and their Graphviz renderings.
//
// [server] - chi HTTP service for evaluation and counts, with /metrics.
//
// [observability] - Hook registry with Prometheus-backed implementations.
//
// [cache] - In-process memoization for symmetry-class counts.
//
// [errors] - Coded errors and input validation.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/enumerate/...  # Specific package
//	go test -run Example         # Examples only
//
// [tile]: https://pkg.go.dev/github.com/matzehuels/gridpark/pkg/tile
// [layout]: https://pkg.go.dev/github.com/matzehuels/gridpark/pkg/layout
// [enumerate]: https://pkg.go.dev/github.com/matzehuels/gridpark/pkg/enumerate
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gridpark/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/gridpark/pkg/io
// [server]: https://pkg.go.dev/github.com/matzehuels/gridpark/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridpark/pkg/observability
// [cache]: https://pkg.go.dev/github.com/matzehuels/gridpark/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridpark/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/gridpark/pkg/buildinfo
package pkg
