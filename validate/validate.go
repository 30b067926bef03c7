// Command validate provides a small CLI that validates network dataset JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Positive road distances and charging prices
//   - Road endpoints referencing known cities, no self-loops
//   - Duplicate roads between the same city pair (reported as warnings)
//   - Connectivity: every city is reachable from every other city
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evroute/ev-route-planner/planner/config"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateFile loads and validates a single dataset JSON file.
// It performs structural checks, duplicate-road detection, and a
// connectivity analysis over the road list.
func validateFile(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var cfg config.NetworkConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := config.ValidateNetworkConfig(&cfg); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	// Duplicate roads between the same unordered pair are legal but usually
	// a data entry mistake; the planner keeps only the last one.
	seen := map[string]bool{}
	for _, road := range cfg.Roads {
		a, b := road.From, road.To
		if a > b {
			a, b = b, a
		}
		key := a + "|" + b
		if seen[key] {
			result.Errors = append(result.Errors, fmt.Sprintf("Warning: duplicate road %s-%s", a, b))
		}
		seen[key] = true
	}

	// Connectivity validation - every city should be reachable
	unreachable := findUnreachable(&cfg)
	if len(unreachable) > 0 {
		result.Valid = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("Connectivity failure: %d/%d cities unreachable from %s", len(unreachable), len(cfg.Cities), cfg.Cities[0].Name))
		for _, city := range unreachable {
			result.Errors = append(result.Errors, fmt.Sprintf("Unreachable: %s", city))
		}
	}

	// Add informational data
	if result.Valid {
		minPrice, maxPrice := cfg.Cities[0].Price, cfg.Cities[0].Price
		for _, city := range cfg.Cities {
			if city.Price < minPrice {
				minPrice = city.Price
			}
			if city.Price > maxPrice {
				maxPrice = city.Price
			}
		}

		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", cfg.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Cities: %d", len(cfg.Cities)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Roads: %d", len(cfg.Roads)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Prices: %.2f - %.2f per unit", minPrice, maxPrice))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Connectivity: all %d cities reachable", len(cfg.Cities)))
	}

	return result
}

// findUnreachable runs a breadth-first search over the road list from the
// first city and returns the cities it never reaches.
func findUnreachable(cfg *config.NetworkConfig) []string {
	if len(cfg.Cities) == 0 {
		return nil
	}

	adjacency := make(map[string][]string, len(cfg.Cities))
	for _, road := range cfg.Roads {
		adjacency[road.From] = append(adjacency[road.From], road.To)
		adjacency[road.To] = append(adjacency[road.To], road.From)
	}

	visited := map[string]bool{}
	queue := []string{cfg.Cities[0].Name}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, neighbor := range adjacency[current] {
			if !visited[neighbor] {
				queue = append(queue, neighbor)
			}
		}
	}

	var unreachable []string
	for _, city := range cfg.Cities {
		if !visited[city.Name] {
			unreachable = append(unreachable, city.Name)
		}
	}
	return unreachable
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateFile(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All network datasets are valid!")
	} else {
		fmt.Println("❌ Some network datasets have errors")
		os.Exit(1)
	}
}
