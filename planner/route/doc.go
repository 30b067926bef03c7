// Package route implements shortest-path search and charging simulation for
// the EV Route Planner.
//
// The package has two halves, composed by Planner.FindRoute:
//
// Shortest path:
//
// ShortestPath runs Dijkstra's algorithm over a graph.Network using a binary
// min-heap frontier with lazy deletion: a city is finalized the first time it
// is popped, and stale heap entries are skipped. Correct because all road
// distances are non-negative.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a binary heap
//   - Space: O(V + E) for the distance/predecessor maps and the frontier
//
// Ties in accumulated distance are broken by city name so that repeated
// queries over the same network always return the same path.
//
// Charging simulation:
//
// SimulateCharging walks the path once, carrying the remaining battery. When
// the next leg exceeds the remaining charge, the vehicle recharges to full at
// the current city and the stop is recorded at that city's price. If the
// final leg still leaves the battery negative, a corrective top-up for the
// shortfall is recorded at the destination. This greedy policy always tops up
// to full; it is not a cost-optimal charging schedule and is intentionally
// left that way.
//
// Usage:
//
//	p := route.NewPlanner(net)
//	r, err := p.FindRoute("Mumbai", "Goa", 400)
//	if errors.Is(err, route.ErrNoRoute) {
//		// disconnected cities: user-visible message, not fatal
//	}
package route
