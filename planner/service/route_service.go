package service

import (
	"context"
	"errors"
	"time"

	"github.com/evroute/ev-route-planner/planner/config"
	"github.com/evroute/ev-route-planner/planner/graph"
)

var (
	// ErrInvalidCapacity indicates a non-positive battery capacity.
	ErrInvalidCapacity = errors.New("service: battery capacity must be a positive number")

	// ErrSameCity indicates that start and destination are identical.
	ErrSameCity = errors.New("service: start and destination cities cannot be the same")
)

// RouteService defines all route planning operations.
type RouteService interface {
	// Route queries
	FindRoute(ctx context.Context, req RouteRequest) (*RouteInfo, error)

	// Network queries (read-only, for selection inputs and drawing)
	ListNetworks(ctx context.Context) ([]*config.NetworkSummary, error)
	GetNetwork(ctx context.Context, name string) (*NetworkInfo, error)
	ListCities(ctx context.Context, network string) ([]graph.City, error)

	// Query history
	ListQueries(ctx context.Context) ([]*RouteInfo, error)
	GetQuery(ctx context.Context, id string) (*RouteInfo, error)
}

// NetworkManager supplies network datasets and the graphs built from them.
type NetworkManager interface {
	LoadConfig(name string) (*config.NetworkConfig, error)
	Network(name string) (*graph.Network, error)
	ListNetworks() ([]*config.NetworkSummary, error)
	GetDefault() *config.NetworkConfig
}

// QueryRecorder stores recent route queries in memory.
type QueryRecorder interface {
	Add(info *RouteInfo) *RouteInfo
	Get(id string) (*RouteInfo, error)
	List() []*RouteInfo
	CleanupExpired(maxAge time.Duration) int
}
