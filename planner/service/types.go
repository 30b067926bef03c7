package service

import (
	"time"

	"github.com/evroute/ev-route-planner/planner/graph"
)

// RouteRequest is a route planning query. Network may be empty to use the
// default dataset.
type RouteRequest struct {
	Network  string  `json:"network,omitempty"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Capacity float64 `json:"capacity"`
}

// ChargingStopInfo is the presentation view of a recharge event.
type ChargingStopInfo struct {
	City        string  `json:"city"`
	Energy      float64 `json:"energy"`
	Price       float64 `json:"price_per_unit"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
}

// RouteInfo is the full result of a route query: the path, its totals, the
// charging plan, and the edge subset front ends highlight when drawing.
type RouteInfo struct {
	ID            string             `json:"id"`
	Network       string             `json:"network"`
	Currency      string             `json:"currency,omitempty"`
	Start         string             `json:"start"`
	End           string             `json:"end"`
	Capacity      float64            `json:"capacity"`
	Path          []string           `json:"path"`
	PathRoads     []graph.Road       `json:"path_roads"`
	TotalDistance float64            `json:"total_distance"`
	TotalCost     float64            `json:"total_cost"`
	ChargingPlan  []ChargingStopInfo `json:"charging_plan"`
	ComputedAt    time.Time          `json:"computed_at"`
}

// Descriptions returns the charging plan as display lines.
func (r *RouteInfo) Descriptions() []string {
	out := make([]string, 0, len(r.ChargingPlan))
	for _, stop := range r.ChargingPlan {
		out = append(out, stop.Description)
	}
	return out
}

// NetworkInfo is the read-only drawing view of a network: every city with
// its charging price plus the full edge list with distances.
type NetworkInfo struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Currency    string       `json:"currency"`
	Cities      []graph.City `json:"cities"`
	Roads       []graph.Road `json:"roads"`
}
