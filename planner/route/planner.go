package route

import (
	"errors"
	"fmt"

	"github.com/evroute/ev-route-planner/planner/graph"
)

var (
	// ErrNoRoute indicates that the start and end cities are disconnected.
	// Recoverable: surfaced to the user as a message, never fatal.
	ErrNoRoute = errors.New("route: no route between cities")

	// ErrNilNetwork indicates that a nil *graph.Network was supplied.
	ErrNilNetwork = errors.New("route: network is nil")
)

// Route is the outcome of a planning query: the shortest path, its total
// distance, the total charging cost, and the ordered charging plan.
type Route struct {
	Path         []string       `json:"path"`
	Distance     float64        `json:"distance"`
	Cost         float64        `json:"cost"`
	ChargingPlan []ChargingStop `json:"charging_plan"`
}

// PathRoads returns the path's edge subset, used by front ends to highlight
// the route on the drawn network.
func (r *Route) PathRoads() []graph.Road {
	if len(r.Path) < 2 {
		return nil
	}
	roads := make([]graph.Road, 0, len(r.Path)-1)
	for i := 0; i < len(r.Path)-1; i++ {
		roads = append(roads, graph.Road{From: r.Path[i], To: r.Path[i+1]})
	}
	return roads
}

// Descriptions renders the charging plan as human-readable lines.
func (r *Route) Descriptions() []string {
	out := make([]string, 0, len(r.ChargingPlan))
	for _, stop := range r.ChargingPlan {
		out = append(out, stop.Description())
	}
	return out
}

// Planner computes shortest routes with charging plans over a single
// read-only network. Queries are independent; a Planner is safe for
// concurrent use.
type Planner struct {
	net *graph.Network
}

// NewPlanner creates a planner bound to the given network.
func NewPlanner(net *graph.Network) *Planner {
	return &Planner{net: net}
}

// Network returns the network the planner operates on.
func (p *Planner) Network() *graph.Network {
	return p.net
}

// FindRoute computes the shortest path from start to end and simulates the
// charging decisions for a vehicle with the given battery capacity.
//
// Input validation (positive capacity, start != end) is the caller's
// responsibility; FindRoute only rejects cities that are not in the network.
// Returns ErrNoRoute when the cities are disconnected.
func (p *Planner) FindRoute(start, end string, capacity float64) (*Route, error) {
	distance, path, err := ShortestPath(p.net, start, end)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoRoute, start, end)
	}

	cost, plan, err := SimulateCharging(p.net, path, capacity)
	if err != nil {
		return nil, err
	}

	return &Route{
		Path:         path,
		Distance:     distance,
		Cost:         cost,
		ChargingPlan: plan,
	}, nil
}
