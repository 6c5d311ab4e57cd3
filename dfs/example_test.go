package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/airgraph/builder"
	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/dfs"
)

// ExampleSimplePaths lists the two cheapest ways from Austin to New York.
func ExampleSimplePaths() {
	airports := []core.Airport{{Code: "AUS"}, {Code: "DFW"}, {Code: "JFK"}, {Code: "LAX"}, {Code: "ORD"}}
	g, _ := builder.FromRouteList(airports, []builder.RouteSpec{
		{From: "AUS", To: "DFW", Weight: 300},
		{From: "AUS", To: "ORD", Weight: 500},
		{From: "DFW", To: "JFK", Weight: 400},
		{From: "ORD", To: "JFK", Weight: 350},
		{From: "ORD", To: "LAX", Weight: 600},
		{From: "JFK", To: "LAX", Weight: 550},
	})

	its, err := dfs.SimplePaths(g, "AUS", "JFK", dfs.WithLimit(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, it := range its {
		fmt.Printf("%s (%d)\n", strings.Join(it.Path, " -> "), it.Cost)
	}
	// Output:
	// AUS -> DFW -> JFK (700)
	// AUS -> ORD -> JFK (850)
}

// ExampleFindCycle reports the square AUS-DFW-JFK-ORD.
func ExampleFindCycle() {
	airports := []core.Airport{{Code: "AUS"}, {Code: "DFW"}, {Code: "JFK"}, {Code: "ORD"}}
	g, _ := builder.FromRouteList(airports, []builder.RouteSpec{
		{From: "AUS", To: "DFW", Weight: 300},
		{From: "AUS", To: "ORD", Weight: 500},
		{From: "DFW", To: "JFK", Weight: 400},
		{From: "ORD", To: "JFK", Weight: 350},
	})

	cycle, _ := dfs.FindCycle(g)
	fmt.Println(cycle)
	// Output: [AUS DFW JFK ORD AUS]
}
