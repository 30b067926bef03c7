// Command analyze prints quick, human-readable heuristics about network
// datasets in the project's configs directory. It summarizes city and road
// counts, distance and price ranges, and highlights the legs that force a
// recharge for a few representative battery capacities.
package main

import (
	"fmt"
	"os"

	"github.com/evroute/ev-route-planner/planner/config"
)

// capacities are the representative battery sizes used when highlighting
// legs that cannot be driven on a single charge.
var capacities = []float64{200, 400, 600}

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		configDir = ""
	}

	manager, err := config.NewManager(configDir)
	if err != nil {
		fmt.Printf("Error creating config manager: %v\n", err)
		os.Exit(1)
	}

	summaries, err := manager.ListNetworks()
	if err != nil {
		fmt.Printf("Error listing networks: %v\n", err)
		os.Exit(1)
	}

	for _, summary := range summaries {
		fmt.Printf("\n=== Analyzing %s ===\n", summary.Name)
		analyzeNetwork(manager, summary.Name)
	}
}

func analyzeNetwork(manager *config.Manager, name string) {
	cfg, err := manager.LoadConfig(name)
	if err != nil {
		fmt.Printf("Error loading dataset: %v\n", err)
		return
	}

	fmt.Printf("Description: %s\n", cfg.Description)
	fmt.Printf("Cities: %d, Roads: %d\n", len(cfg.Cities), len(cfg.Roads))

	if len(cfg.Roads) == 0 {
		fmt.Println("No roads to analyze")
		return
	}

	minLeg, maxLeg, total := cfg.Roads[0].Distance, cfg.Roads[0].Distance, 0.0
	for _, road := range cfg.Roads {
		if road.Distance < minLeg {
			minLeg = road.Distance
		}
		if road.Distance > maxLeg {
			maxLeg = road.Distance
		}
		total += road.Distance
	}
	fmt.Printf("Leg distances: %g - %g km (total %g km)\n", minLeg, maxLeg, total)

	minPrice, maxPrice := cfg.Cities[0].Price, cfg.Cities[0].Price
	for _, city := range cfg.Cities {
		if city.Price < minPrice {
			minPrice = city.Price
		}
		if city.Price > maxPrice {
			maxPrice = city.Price
		}
	}
	fmt.Printf("Charging prices: %s%.2f - %s%.2f per unit\n", cfg.Currency, minPrice, cfg.Currency, maxPrice)

	for _, capacity := range capacities {
		var forcing []string
		for _, road := range cfg.Roads {
			if road.Distance > capacity {
				forcing = append(forcing, fmt.Sprintf("%s-%s (%g km)", road.From, road.To, road.Distance))
			}
		}
		if len(forcing) == 0 {
			fmt.Printf("Capacity %g: every leg fits on a single charge\n", capacity)
			continue
		}
		fmt.Printf("Capacity %g: %d legs exceed one charge:\n", capacity, len(forcing))
		for _, leg := range forcing {
			fmt.Printf("  - %s\n", leg)
		}
	}
}
