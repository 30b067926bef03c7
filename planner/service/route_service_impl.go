package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evroute/ev-route-planner/planner/config"
	"github.com/evroute/ev-route-planner/planner/graph"
	"github.com/evroute/ev-route-planner/planner/route"
)

// routeServiceImpl implements the RouteService interface.
type routeServiceImpl struct {
	networks NetworkManager
	queries  QueryRecorder
}

// NewRouteService creates a new route service instance.
func NewRouteService(networks NetworkManager, queries QueryRecorder) RouteService {
	return &routeServiceImpl{
		networks: networks,
		queries:  queries,
	}
}

// FindRoute validates the request, runs the planning core against the
// selected network, and records the result in the query history.
func (s *routeServiceImpl) FindRoute(ctx context.Context, req RouteRequest) (*RouteInfo, error) {
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCapacity, req.Capacity)
	}
	if req.Start == req.End {
		return nil, ErrSameCity
	}

	cfg, err := s.networks.LoadConfig(req.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to load network %q: %w", req.Network, err)
	}

	net, err := s.networks.Network(req.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to build network %q: %w", req.Network, err)
	}

	planned, err := route.NewPlanner(net).FindRoute(req.Start, req.End, req.Capacity)
	if err != nil {
		return nil, err
	}

	info := &RouteInfo{
		Network:       cfg.Name,
		Currency:      cfg.Currency,
		Start:         req.Start,
		End:           req.End,
		Capacity:      req.Capacity,
		Path:          planned.Path,
		PathRoads:     pathRoads(net, planned.Path),
		TotalDistance: planned.Distance,
		TotalCost:     planned.Cost,
		ChargingPlan:  chargingPlanInfo(cfg.Currency, planned.ChargingPlan),
		ComputedAt:    time.Now(),
	}

	return s.queries.Add(info), nil
}

// ListNetworks returns summaries of every available dataset.
func (s *routeServiceImpl) ListNetworks(ctx context.Context) ([]*config.NetworkSummary, error) {
	return s.networks.ListNetworks()
}

// GetNetwork returns the drawing view of a network.
func (s *routeServiceImpl) GetNetwork(ctx context.Context, name string) (*NetworkInfo, error) {
	cfg, err := s.networks.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load network %q: %w", name, err)
	}

	net, err := s.networks.Network(name)
	if err != nil {
		return nil, fmt.Errorf("failed to build network %q: %w", name, err)
	}

	return &NetworkInfo{
		Name:        cfg.Name,
		Description: cfg.Description,
		Currency:    cfg.Currency,
		Cities:      net.CityList(),
		Roads:       net.Roads(),
	}, nil
}

// ListCities returns the network's cities with prices, ordered by name.
// Front ends use this to populate start/destination selection inputs.
func (s *routeServiceImpl) ListCities(ctx context.Context, network string) ([]graph.City, error) {
	net, err := s.networks.Network(network)
	if err != nil {
		return nil, fmt.Errorf("failed to build network %q: %w", network, err)
	}
	return net.CityList(), nil
}

// ListQueries returns the recent query history, newest first.
func (s *routeServiceImpl) ListQueries(ctx context.Context) ([]*RouteInfo, error) {
	return s.queries.List(), nil
}

// GetQuery returns a single recorded query by ID.
func (s *routeServiceImpl) GetQuery(ctx context.Context, id string) (*RouteInfo, error) {
	return s.queries.Get(id)
}

// pathRoads resolves the path's edge subset with distances filled in.
func pathRoads(net *graph.Network, path []string) []graph.Road {
	if len(path) < 2 {
		return nil
	}
	roads := make([]graph.Road, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		distance, err := net.Distance(path[i], path[i+1])
		if err != nil {
			// The path came from this network, so every leg must exist.
			continue
		}
		roads = append(roads, graph.Road{From: path[i], To: path[i+1], Distance: distance})
	}
	return roads
}

// chargingPlanInfo converts core charging stops into their presentation
// form, with per-stop cost and the display line front ends print.
func chargingPlanInfo(currency string, plan []route.ChargingStop) []ChargingStopInfo {
	out := make([]ChargingStopInfo, 0, len(plan))
	for _, stop := range plan {
		out = append(out, ChargingStopInfo{
			City:        stop.City,
			Energy:      stop.Energy,
			Price:       stop.Price,
			Cost:        stop.Cost(),
			Description: fmt.Sprintf("%s: %.1f units @ %s%.2f/unit", stop.City, stop.Energy, currency, stop.Price),
		})
	}
	return out
}
