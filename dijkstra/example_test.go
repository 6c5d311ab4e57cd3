// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/airgraph/builder"
	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/dijkstra"
)

// ExampleShortestPath routes Austin to New York over the four-airport square.
func ExampleShortestPath() {
	airports := []core.Airport{
		{Code: "AUS", Name: "Austin Bergstrom International Airport"},
		{Code: "DFW", Name: "Dallas/Fort Worth International Airport"},
		{Code: "ORD", Name: "O'Hare International Airport"},
		{Code: "JFK", Name: "John F. Kennedy International Airport"},
	}
	g, err := builder.FromRouteList(airports, []builder.RouteSpec{
		{From: "AUS", To: "DFW", Weight: 300},
		{From: "AUS", To: "ORD", Weight: 500},
		{From: "DFW", To: "JFK", Weight: 400},
		{From: "ORD", To: "JFK", Weight: 350},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.ShortestPath(g, "AUS", "JFK")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s (cost %d)\n", strings.Join(res.Path, " -> "), res.Cost)
	// Output: AUS -> DFW -> JFK (cost 700)
}

// ExampleDijkstra prints every distance from a single source.
func ExampleDijkstra() {
	g, _ := builder.FromRouteList(
		[]core.Airport{{Code: "A"}, {Code: "B"}, {Code: "C"}},
		[]builder.RouteSpec{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2}, {From: "A", To: "C", Weight: 5}},
	)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}
