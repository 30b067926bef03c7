// Package service provides the business logic layer for the EV Route Planner.
//
// The service package implements:
//   - Route query orchestration (shortest path + charging simulation)
//   - Input validation ahead of the planning core
//   - Network dataset selection and listing
//   - Recent-query history tracking
//
// Core Interfaces:
//
// RouteService is the main service interface consumed by every front end
// (HTTP, WebSocket, MCP, CLI). NetworkManager supplies datasets and the
// graphs built from them. QueryRecorder keeps the bounded in-memory log of
// recent queries.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP/CLI)
// and the planning core. Each query is an independent, read-only computation
// over an immutable network, so queries from concurrent requests need no
// coordination beyond the recorder's own locking.
//
// Usage:
//
//	networks, _ := config.NewManager("configs")
//	recorder := history.NewRecorder(100)
//	svc := service.NewRouteService(networks, recorder)
//
//	info, err := svc.FindRoute(ctx, service.RouteRequest{
//		Start:    "Mumbai",
//		End:      "Goa",
//		Capacity: 400,
//	})
//
// Validation:
//
// FindRoute rejects non-positive capacities (ErrInvalidCapacity) and
// identical start/end cities (ErrSameCity) before the planning core runs.
// Unknown cities surface graph.ErrUnknownCity; disconnected cities surface
// route.ErrNoRoute.
package service
