package graph

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownCity indicates a lookup for a city that is not part of the
	// network. Callers are expected to source city names from Cities(), so
	// hitting this error usually means a caller-side bug.
	ErrUnknownCity = errors.New("graph: unknown city")

	// ErrInvalidNetwork indicates that the supplied roads or prices violate
	// the network invariants (positive distances, positive prices, no
	// self-loops, priced endpoints).
	ErrInvalidNetwork = errors.New("graph: invalid network")
)

// Network is an immutable undirected weighted graph of cities plus a
// charging price per city. All accessors are safe for concurrent use.
type Network struct {
	name      string
	adjacency map[string]map[string]float64
	prices    map[string]float64
	roads     []Road
	cities    []string
}

// NewNetwork builds a network from a road list and a city -> price mapping.
// Every city in prices becomes a node, even if no road touches it. Parallel
// roads between the same pair are allowed; the adjacency map keeps the last
// one, while Roads() preserves all of them for drawing.
func NewNetwork(name string, roads []Road, prices map[string]float64) (*Network, error) {
	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: no cities", ErrInvalidNetwork)
	}

	for city, price := range prices {
		if city == "" {
			return nil, fmt.Errorf("%w: empty city name", ErrInvalidNetwork)
		}
		if price <= 0 {
			return nil, fmt.Errorf("%w: city %s has non-positive charging price %v", ErrInvalidNetwork, city, price)
		}
	}

	adjacency := make(map[string]map[string]float64, len(prices))
	for city := range prices {
		adjacency[city] = make(map[string]float64)
	}

	for _, road := range roads {
		if road.From == road.To {
			return nil, fmt.Errorf("%w: self-loop road at %s", ErrInvalidNetwork, road.From)
		}
		if road.Distance <= 0 {
			return nil, fmt.Errorf("%w: road %s-%s has non-positive distance %v", ErrInvalidNetwork, road.From, road.To, road.Distance)
		}
		for _, endpoint := range []string{road.From, road.To} {
			if _, ok := prices[endpoint]; !ok {
				return nil, fmt.Errorf("%w: road endpoint %s has no charging price", ErrInvalidNetwork, endpoint)
			}
		}
		adjacency[road.From][road.To] = road.Distance
		adjacency[road.To][road.From] = road.Distance
	}

	cities := make([]string, 0, len(prices))
	for city := range prices {
		cities = append(cities, city)
	}
	sort.Strings(cities)

	pricesCopy := make(map[string]float64, len(prices))
	for city, price := range prices {
		pricesCopy[city] = price
	}

	return &Network{
		name:      name,
		adjacency: adjacency,
		prices:    pricesCopy,
		roads:     append([]Road(nil), roads...),
		cities:    cities,
	}, nil
}

// Name returns the network's identifier.
func (n *Network) Name() string {
	return n.name
}

// HasCity reports whether the city exists in the network.
func (n *Network) HasCity(city string) bool {
	_, ok := n.prices[city]
	return ok
}

// Neighbors returns the cities adjacent to the given city and the road
// distance to each. The returned map is a copy; the network stays immutable.
func (n *Network) Neighbors(city string) (map[string]float64, error) {
	adj, ok := n.adjacency[city]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}

	out := make(map[string]float64, len(adj))
	for neighbor, distance := range adj {
		out[neighbor] = distance
	}
	return out, nil
}

// Distance returns the road distance between two adjacent cities.
func (n *Network) Distance(from, to string) (float64, error) {
	adj, ok := n.adjacency[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCity, from)
	}
	distance, ok := adj[to]
	if !ok {
		return 0, fmt.Errorf("graph: no road between %s and %s", from, to)
	}
	return distance, nil
}

// Price returns the charging price per energy unit at the given city.
func (n *Network) Price(city string) (float64, error) {
	price, ok := n.prices[city]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}
	return price, nil
}

// Cities returns all city names in lexicographic order. Front ends use this
// to populate selection inputs.
func (n *Network) Cities() []string {
	return append([]string(nil), n.cities...)
}

// CityList returns every city paired with its charging price, ordered by
// name. Used by the drawing queries to annotate nodes.
func (n *Network) CityList() []City {
	out := make([]City, 0, len(n.cities))
	for _, name := range n.cities {
		out = append(out, City{Name: name, Price: n.prices[name]})
	}
	return out
}

// Roads returns the full edge list with distances, in construction order.
func (n *Network) Roads() []Road {
	return append([]Road(nil), n.roads...)
}

// CityCount returns the number of cities in the network.
func (n *Network) CityCount() int {
	return len(n.cities)
}

// RoadCount returns the number of roads in the network.
func (n *Network) RoadCount() int {
	return len(n.roads)
}
