package parser_test

import (
	"fmt"

	"github.com/leapstack-labs/descent/pkg/parser"
	"github.com/leapstack-labs/descent/pkg/token"
)

// A tiny grammar over lines of "<name> <count> <weight>".
func Example() {
	p := parser.New([]byte(`
# inventory
bolts 120 2.5
nuts  80  1.25
`))
	for p.Err() == nil && p.Have(token.Text) {
		name := p.Text()
		count := p.Int()
		weight := p.Float()
		fmt.Printf("%s: %d x %.2fkg\n", name, count, weight)
	}
	p.Expect(token.EOF)
	if err := p.Err(); err != nil {
		fmt.Println("parse failed:", err)
	}
	// Output:
	// bolts: 120 x 2.50kg
	// nuts: 80 x 1.25kg
}

func ExampleParser_Match() {
	p := parser.New([]byte("12 worms"))

	if p.Match(token.EOF) {
		fmt.Println("empty input")
		return
	}
	n := p.Int()
	unit := p.Text()
	fmt.Println(n, unit)
	// Output:
	// 12 worms
}
