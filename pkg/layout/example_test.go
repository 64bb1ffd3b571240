package layout_test

import (
	"fmt"

	"github.com/matzehuels/gridpark/pkg/layout"
)

func ExampleParseFlat() {
	l, err := layout.ParseFlat("GPG_GPG_GPG")
	if err != nil {
		panic(err)
	}
	fmt.Println(l.FlatCode())
	fmt.Println("vertical:", l.VerticalPathLength())
	fmt.Println("horizontal:", l.HorizontalPathLength())
	fmt.Println("cost:", l.Totals().CostUpfront)
	// Output:
	// GPG_GPG_GPG
	// vertical: 3
	// horizontal: 0
	// cost: 1200
}

func ExampleEvaluate() {
	l, _ := layout.ParseFlat("BP_GG")
	s := layout.Evaluate(l)
	fmt.Printf("greenery=%g accessibility=%g benches=%g\n", s.Greenery, s.Accessibility, s.BenchScore)
	// Output:
	// greenery=6 accessibility=5 benches=1.5
}
