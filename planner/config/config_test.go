package config

import (
	"strings"
	"testing"

	"github.com/evroute/ev-route-planner/planner/graph"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != DefaultNetworkName {
		t.Errorf("Expected name %s, got %s", DefaultNetworkName, cfg.Name)
	}
	if cfg.Currency != "₹" {
		t.Errorf("Expected currency ₹, got %s", cfg.Currency)
	}
	if len(cfg.Cities) != 7 {
		t.Errorf("Expected 7 cities, got %d", len(cfg.Cities))
	}
	if len(cfg.Roads) != 8 {
		t.Errorf("Expected 8 roads, got %d", len(cfg.Roads))
	}

	if err := ValidateNetworkConfig(cfg); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestValidateNetworkConfig(t *testing.T) {
	valid := func() *NetworkConfig {
		return &NetworkConfig{
			Name: "test",
			Cities: []graph.City{
				{Name: "A", Price: 1.5},
				{Name: "B", Price: 2.0},
			},
			Roads: []graph.Road{
				{From: "A", To: "B", Distance: 100},
			},
		}
	}

	if err := ValidateNetworkConfig(valid()); err != nil {
		t.Errorf("Expected valid config to pass, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*NetworkConfig)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(c *NetworkConfig) { c.Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "no cities",
			mutate:  func(c *NetworkConfig) { c.Cities = nil },
			wantErr: "at least one city",
		},
		{
			name:    "empty city name",
			mutate:  func(c *NetworkConfig) { c.Cities[0].Name = "" },
			wantErr: "empty name",
		},
		{
			name:    "duplicate city",
			mutate:  func(c *NetworkConfig) { c.Cities[1].Name = "A" },
			wantErr: "duplicate city",
		},
		{
			name:    "non-positive price",
			mutate:  func(c *NetworkConfig) { c.Cities[0].Price = 0 },
			wantErr: "positive charging price",
		},
		{
			name:    "road missing endpoint",
			mutate:  func(c *NetworkConfig) { c.Roads[0].To = "" },
			wantErr: "missing an endpoint",
		},
		{
			name:    "self loop",
			mutate:  func(c *NetworkConfig) { c.Roads[0].To = "A" },
			wantErr: "to itself",
		},
		{
			name:    "unknown endpoint",
			mutate:  func(c *NetworkConfig) { c.Roads[0].To = "Z" },
			wantErr: "unknown city",
		},
		{
			name:    "non-positive distance",
			mutate:  func(c *NetworkConfig) { c.Roads[0].Distance = -10 },
			wantErr: "positive distance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateNetworkConfig(cfg)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	if err := ValidateNetworkConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestBuildNetwork(t *testing.T) {
	net, err := DefaultConfig().BuildNetwork()
	if err != nil {
		t.Fatalf("BuildNetwork failed: %v", err)
	}

	if net.CityCount() != 7 {
		t.Errorf("Expected 7 cities, got %d", net.CityCount())
	}
	if net.RoadCount() != 8 {
		t.Errorf("Expected 8 roads, got %d", net.RoadCount())
	}

	d, err := net.Distance("Mumbai", "Goa")
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if d != 580 {
		t.Errorf("Expected Mumbai-Goa distance 580, got %v", d)
	}

	p, err := net.Price("Hyderabad")
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	if p != 2.2 {
		t.Errorf("Expected Hyderabad price 2.2, got %v", p)
	}
}

func TestSummary(t *testing.T) {
	summary := DefaultConfig().Summary()

	if summary.Name != DefaultNetworkName {
		t.Errorf("Expected name %s, got %s", DefaultNetworkName, summary.Name)
	}
	if summary.CityCount != 7 {
		t.Errorf("Expected 7 cities, got %d", summary.CityCount)
	}
	if summary.RoadCount != 8 {
		t.Errorf("Expected 8 roads, got %d", summary.RoadCount)
	}
}
