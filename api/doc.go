// Package api provides HTTP REST API handlers for the EV Route Planner.
//
// The api package implements:
//   - The route planning endpoint
//   - Read-only network endpoints for selection inputs and map drawing
//   - Recent query history endpoints
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Route planning:
//   - POST /api/routes - Compute shortest route and charging plan
//
// Networks:
//   - GET /api/networks - List available network datasets
//   - GET /api/networks/{name} - Cities with prices plus the full edge list
//   - GET /api/networks/{name}/cities - City list for dropdowns
//
// Query history:
//   - GET /api/queries - Recent route queries, newest first
//   - GET /api/queries/{id} - A single recorded query
//
// Health:
//   - GET /api/health - Liveness probe
//
// Request/Response Format:
//
// All endpoints accept and return JSON. The route request body:
//
//	{
//	  "network": "maharashtra",   // optional, default dataset when omitted
//	  "start": "Mumbai",
//	  "end": "Goa",
//	  "capacity": 400
//	}
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "route: no route between cities: Mumbai -> Atlantis"
//	}
//
// Invalid input (non-positive capacity, identical cities, unknown city)
// yields 400; disconnected cities, unknown datasets, and unknown query IDs
// yield 404.
package api
