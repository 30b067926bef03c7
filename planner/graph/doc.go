// Package graph provides the road-network model for the EV Route Planner.
//
// The graph package implements:
//   - An immutable, undirected, positively-weighted city network
//   - Per-city charging prices
//   - Neighbor lookup for shortest-path search
//   - Read-only queries used by map/visualization front ends
//
// Core Types:
//
// Network is the central type: a fixed set of cities, the roads connecting
// them (with distances in kilometers), and a charging price per energy unit
// for every city. A Network is fully constructed up front by NewNetwork and
// never mutated afterwards, so it is safe to share across goroutines without
// locking.
//
// Usage:
//
//	net, err := graph.NewNetwork("maharashtra", roads, prices)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	adj, err := net.Neighbors("Mumbai")  // map of neighbor -> distance
//	cities := net.Cities()               // sorted city names
//	roads := net.Roads()                 // full edge list for drawing
//
// Validation:
//
// NewNetwork rejects networks with non-positive road distances, non-positive
// charging prices, self-loop roads, or road endpoints that have no charging
// price entry.
package graph
