package io

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridpark/pkg/layout"
)

// WritePoset writes layouts as one totally ordered chain, in the given order.
func WritePoset(w io.Writer, layouts []*layout.Layout) error {
	codes := make([]string, len(layouts))
	for i, l := range layouts {
		codes[i] = l.FlatCode()
	}
	if _, err := fmt.Fprintf(w, "poset {\n\t%s\n}\n", strings.Join(codes, " <= ")); err != nil {
		return fmt.Errorf("write poset: %w", err)
	}
	return nil
}

// PosetDOT converts the chain written by [WritePoset] to Graphviz DOT. Each
// node is labelled with the layout's glyph rendering; edges point from the
// smaller element to the larger one.
func PosetDOT(layouts []*layout.Layout) string {
	var buf bytes.Buffer
	buf.WriteString("digraph poset {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\"];\n")
	buf.WriteString("\n")

	for _, l := range layouts {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", l.FlatCode(), l.FlatCode()+"\n"+l.Pretty())
	}

	buf.WriteString("\n")
	for i := 1; i < len(layouts); i++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n", layouts[i-1].FlatCode(), layouts[i].FlatCode())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderPosetSVG renders a DOT graph, typically from [PosetDOT], to SVG.
func RenderPosetSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
