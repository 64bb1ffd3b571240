// Package layout evaluates park layouts built from tile kinds.
//
// A [Layout] is an immutable value constructed from a rectangular grid of
// [tile.Kind]. Construction validates the grid, takes a private copy and folds
// the catalog attributes of every cell into a [Totals] record. It also derives
// two textual projections:
//
//   - [Layout.Pretty]: rows of glyphs joined by newlines, for humans
//   - [Layout.FlatCode]: rows of letter codes joined by underscores, the
//     layout's identity string (used as a key by exporters)
//
// [ParseFlat] is the inverse of FlatCode.
//
// # Connectivity
//
// [Layout.VerticalPathLength] and [Layout.HorizontalPathLength] return the
// length, in cells, of the shortest 4-connected corridor of path tiles crossing
// the grid top-to-bottom or left-to-right. The search is a multi-source BFS
// seeded from every path tile on the starting edge. A missing corridor is a
// normal outcome reported as 0, never an error.
//
// # Scoring
//
// [Layout.Greenery], [Layout.Accessibility] and [Layout.BenchScore] derive
// unit-less, unnormalized quality metrics from the grid; [Evaluate] bundles
// them. All scoring is a pure function of the grid.
//
// Coordinates are (row, col), 0-indexed from the top-left corner.
package layout
