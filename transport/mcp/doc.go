// Package mcp provides a Model Context Protocol server for the EV Route
// Planner.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for route planning operations
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - find_route: Compute the shortest route and charging plan between cities
//   - list_networks: List available network datasets
//   - list_cities: List a network's cities with charging prices
//   - get_network: Get a network's full city and road data
//   - recent_queries: List recently computed routes
//   - get_query: Re-display a recorded route by ID
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Architecture:
//
// The Client is a thin proxy: every tool call is translated into a request
// against the REST API, and the JSON response is rendered as the same text a
// human sees in the CLI front end. This keeps the REST API the single source
// of behavior.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
