// Package airgraph is an in-memory toolkit for airport networks: build a
// weighted route graph from static tables, ask for the cheapest itinerary,
// span the network with a minimum forest, and replay a path one leg at a time.
//
// What is in the box?
//
//	core/         - Graph, Airport, Route; thread-safe, freezable, deterministic enumeration
//	builder/      - cost tables ("-" means no route), route lists, square matrices, and back
//	dijkstra/     - single-source distances, ShortestPath with a fixed tie-break, PathCost
//	prim_kruskal/ - minimum spanning forest, Prim and Kruskal agreeing route for route
//	bfs/          - hop-count traversal and connected components
//	dfs/          - depth-first traversal, cycle witnesses, ranked simple itineraries
//	animate/      - immutable, restartable step sequences over a chosen path
//	geo/          - great-circle distances and a nearest-airport R-tree index
//	dataset/      - YAML/JSON network files and the embedded sample networks
//	cmd/airgraph  - command line front end over all of the above
//
// Quick start:
//
//	ds, _ := dataset.Sample("routes")
//	g, _ := ds.Graph()
//	res, _ := dijkstra.ShortestPath(g, "AUS", "JFK")
//	seq, _ := animate.FromResult(g, res)
//	for step := range seq.All() {
//		fmt.Println(step.Index, step.Prefix, step.RunningCost)
//	}
//
// Every enumeration (codes, neighbours, routes, forests, itineraries) comes
// back in a documented order, so two runs over the same input print the same
// thing.
package airgraph
