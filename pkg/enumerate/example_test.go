package enumerate_test

import (
	"fmt"

	"github.com/matzehuels/gridpark/pkg/enumerate"
	"github.com/matzehuels/gridpark/pkg/tile"
)

func ExampleUnique() {
	kinds := []tile.Kind{tile.Grass, tile.Tree}
	seq, err := enumerate.Unique(kinds, 2)
	if err != nil {
		panic(err)
	}
	for l := range seq {
		fmt.Println(l.FlatCode())
	}
	// Output:
	// GG_GG
	// GG_GT
	// GG_TT
	// GT_TG
	// GT_TT
	// TT_TT
}

func ExampleCount() {
	n, _ := enumerate.Count(tile.All(), 3)
	fmt.Println(n)
	// Output:
	// 262144
}
