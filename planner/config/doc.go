// Package config provides road-network configuration management for the EV
// Route Planner.
//
// The config package handles:
//   - Loading network datasets from JSON files
//   - Dataset validation (distances, prices, connectivity inputs)
//   - The built-in default dataset
//   - Dataset discovery and listing
//
// Configuration Format:
//
// Network datasets are stored as JSON files in the configs directory. Each
// dataset defines:
//   - The city list with a charging price per energy unit
//   - The road list with distances in kilometers
//   - A display currency symbol for front ends
//
// The default dataset is compiled in: the seven-city Mumbai/Goa/Hyderabad
// network. It is always available, even without a configs directory.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	net, err := manager.Network("maharashtra")
//	cfg := manager.GetDefault()
//	summaries, err := manager.ListNetworks()
//
// Networks built from a dataset are cached by the manager, so repeated
// queries against the same dataset share one immutable graph.Network.
package config
