package io

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gridpark/pkg/layout"
	"github.com/matzehuels/gridpark/pkg/tile"
)

const layoutType = "`layout"

// CostDocument builds the resource-side design problem: every layout provides
// itself and requires its tree, path and bench counts, its yearly cost, its
// upfront CO2 and its net yearly CO2 (absorption minus emission).
func CostDocument(layouts []*layout.Layout) *yaml.Node {
	impls := mappingNode()
	for _, l := range layouts {
		t := l.Totals()
		appendPair(impls, l.FlatCode(), mappingNode(
			"f_max", sequenceNode(layoutType+": "+l.FlatCode()),
			"r_min", sequenceNode(
				fmt.Sprintf("%d Nat", l.Count(tile.Tree)),
				fmt.Sprintf("%d Nat", l.Count(tile.Path)),
				fmt.Sprintf("%d Nat", l.Count(tile.Bench)),
				fmt.Sprintf("%d $", t.CostYearly),
				fmt.Sprintf("%d Nat", t.CO2Upfront),
				fmt.Sprintf("%d Int", t.NetCO2Yearly()),
			),
		))
	}
	return document(
		"F", sequenceNode(layoutType),
		"R", sequenceNode("Nat", "Nat", "Nat", "$", "Nat", "Int"),
		"implementations", impls,
	)
}

// QualityDocument builds the functionality-side design problem: every layout
// provides its accessibility and greenery scores and requires itself.
func QualityDocument(layouts []*layout.Layout) *yaml.Node {
	impls := mappingNode()
	for _, l := range layouts {
		appendPair(impls, l.FlatCode(), mappingNode(
			"f_max", sequenceNode(
				formatScore(l.Accessibility())+" dimensionless",
				formatScore(l.Greenery())+" dimensionless",
			),
			"r_min", sequenceNode(layoutType+": "+l.FlatCode()),
		))
	}
	return document(
		"F", sequenceNode("dimensionless", "dimensionless"),
		"R", sequenceNode(layoutType),
		"implementations", impls,
	)
}

// WriteYAML encodes doc to w with two-space indentation.
func WriteYAML(doc *yaml.Node, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

func document(kv ...any) *yaml.Node {
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mappingNode(kv...)}}
}

// mappingNode builds an ordered mapping from alternating keys and values.
// Values are either *yaml.Node or string.
func mappingNode(kv ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(kv); i += 2 {
		appendPair(n, kv[i].(string), kv[i+1])
	}
	return n
}

func appendPair(m *yaml.Node, key string, value any) {
	var v *yaml.Node
	switch x := value.(type) {
	case *yaml.Node:
		v = x
	case string:
		v = scalarNode(x)
	default:
		panic(fmt.Sprintf("io: unsupported yaml value %T", value))
	}
	m.Content = append(m.Content, scalarNode(key), v)
}

func sequenceNode(items ...string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, s := range items {
		n.Content = append(n.Content, scalarNode(s))
	}
	return n
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
