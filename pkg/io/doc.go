// Package io writes scored park layouts to the formats downstream tools read.
//
// # Overview
//
// Every sink consumes [layout.Layout] values and never mutates them. Sinks are
// plain writers: the caller owns file creation, naming and batching (see
// pkg/pipeline), so each function here can be used against any io.Writer.
//
// # CSV
//
// [CSVWriter] emits one row per layout with the header
//
//	pretty,cost_upfront,cost_yearly,co2_cost_upfront,co2_cost_yearly,co2_absorption_yearly
//
// optionally followed by greenery and accessibility columns. With
// [CSVOptions.Compress] the stream is zstd-compressed; by convention such files
// carry a .csv.zst extension.
//
// # YAML documents
//
// [CostDocument] and [QualityDocument] build the two design-problem documents
// consumed by the co-design solver. Keys keep their insertion order, so
// implementations appear in the order the layouts were supplied:
//
//	F:
//	  - '`layout'
//	R:
//	  - Nat
//	  - ...
//	implementations:
//	  GG_GT:
//	    f_max:
//	      - '`layout: GG_GT'
//	    r_min:
//	      - 1 Nat
//	      - 0 Nat
//	      - 0 Nat
//	      - 700 $
//	      - 150 Nat
//	      - -109 Int
//
// Use [WriteYAML] to encode either document.
//
// # Poset
//
// [WritePoset] writes the layouts as a single chain in poset syntax:
//
//	poset {
//		GG_GG <= GG_GT <= GG_TT
//	}
//
// [PosetDOT] renders the same chain as Graphviz DOT and [RenderPosetSVG] turns
// that into SVG in-process.
//
// # JSON
//
// [WriteJSON] and [ExportJSON] write indented JSON, used for run summaries.
package io
