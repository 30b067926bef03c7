package config

import (
	"fmt"

	"github.com/evroute/ev-route-planner/planner/graph"
)

// DefaultNetworkName is the identifier of the built-in dataset.
const DefaultNetworkName = "maharashtra"

// NetworkConfig is the JSON schema for a road-network dataset.
type NetworkConfig struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Currency    string       `json:"currency"`
	Cities      []graph.City `json:"cities"`
	Roads       []graph.Road `json:"roads"`
}

// NetworkSummary describes an available dataset for listing endpoints.
type NetworkSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	CityCount   int    `json:"city_count"`
	RoadCount   int    `json:"road_count"`
}

// Summary returns the listing view of the dataset.
func (c *NetworkConfig) Summary() *NetworkSummary {
	return &NetworkSummary{
		Name:        c.Name,
		Description: c.Description,
		Currency:    c.Currency,
		CityCount:   len(c.Cities),
		RoadCount:   len(c.Roads),
	}
}

// ValidateNetworkConfig validates a dataset for structural correctness.
// Graph-level invariants (positive distances and prices, priced endpoints)
// are re-checked by graph.NewNetwork; the checks here give config authors
// precise file-level errors first.
func ValidateNetworkConfig(cfg *NetworkConfig) error {
	if cfg == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if cfg.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if len(cfg.Cities) == 0 {
		return fmt.Errorf("config validation: at least one city is required")
	}

	seen := make(map[string]bool, len(cfg.Cities))
	for i, city := range cfg.Cities {
		if city.Name == "" {
			return fmt.Errorf("config validation: city %d has an empty name", i+1)
		}
		if seen[city.Name] {
			return fmt.Errorf("config validation: duplicate city %s", city.Name)
		}
		seen[city.Name] = true
		if city.Price <= 0 {
			return fmt.Errorf("config validation: city %s must have a positive charging price, got %v", city.Name, city.Price)
		}
	}

	for i, road := range cfg.Roads {
		if road.From == "" || road.To == "" {
			return fmt.Errorf("config validation: road %d is missing an endpoint", i+1)
		}
		if road.From == road.To {
			return fmt.Errorf("config validation: road %d connects %s to itself", i+1, road.From)
		}
		if !seen[road.From] {
			return fmt.Errorf("config validation: road %d references unknown city %s", i+1, road.From)
		}
		if !seen[road.To] {
			return fmt.Errorf("config validation: road %d references unknown city %s", i+1, road.To)
		}
		if road.Distance <= 0 {
			return fmt.Errorf("config validation: road %s-%s must have a positive distance, got %v", road.From, road.To, road.Distance)
		}
	}

	return nil
}

// BuildNetwork constructs the immutable graph for the dataset.
func (c *NetworkConfig) BuildNetwork() (*graph.Network, error) {
	if err := ValidateNetworkConfig(c); err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(c.Cities))
	for _, city := range c.Cities {
		prices[city.Name] = city.Price
	}

	return graph.NewNetwork(c.Name, c.Roads, prices)
}

// DefaultConfig returns the built-in seven-city dataset. Distances are road
// kilometers; prices are per energy unit.
func DefaultConfig() *NetworkConfig {
	return &NetworkConfig{
		Name:        DefaultNetworkName,
		Description: "Mumbai/Goa/Hyderabad intercity network with charging prices",
		Currency:    "₹",
		Cities: []graph.City{
			{Name: "Mumbai", Price: 1.8},
			{Name: "Nashik", Price: 1.5},
			{Name: "Pune", Price: 1.2},
			{Name: "Satara", Price: 1.5},
			{Name: "Kolhapur", Price: 1.8},
			{Name: "Goa", Price: 2.0},
			{Name: "Hyderabad", Price: 2.2},
		},
		Roads: []graph.Road{
			{From: "Mumbai", To: "Nashik", Distance: 180},
			{From: "Mumbai", To: "Goa", Distance: 580},
			{From: "Nashik", To: "Pune", Distance: 300},
			{From: "Pune", To: "Satara", Distance: 120},
			{From: "Satara", To: "Kolhapur", Distance: 180},
			{From: "Kolhapur", To: "Goa", Distance: 200},
			{From: "Goa", To: "Hyderabad", Distance: 610},
			{From: "Hyderabad", To: "Kolhapur", Distance: 300},
		},
	}
}
