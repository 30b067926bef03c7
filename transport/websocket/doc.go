// Package websocket provides WebSocket transport for the EV Route Planner.
//
// The websocket package implements:
//   - Real-time delivery of computed routes to map viewers
//   - Network-aware WebSocket connections
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded. Every route computed through the HTTP API is
// broadcast to the viewers subscribed to that route's network:
//
//	{"network": "maharashtra", "event": "route_computed", "route": {...}}
//
// Network Integration:
//
// Clients specify which network they are viewing via query parameter
// (?network=maharashtra) when establishing the connection. Route updates are
// broadcast only to clients viewing the same network, so a map front end can
// redraw the highlighted route whenever anyone queries it.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	hub.BroadcastRoute("maharashtra", routeInfo)
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive broadcasts
// simultaneously without blocking each other.
package websocket
