package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/evroute/ev-route-planner/planner/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	// Create a test server that returns a known response
	expectedResponse := map[string]interface{}{
		"status": "ok",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api/health", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", response["status"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api/health", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/health", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_ErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "battery capacity must be a positive number",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("POST", "/api/routes", service.RouteRequest{}, nil)
	if err == nil {
		t.Fatal("Expected error for HTTP 400 response")
	}

	if !strings.Contains(err.Error(), "positive number") {
		t.Errorf("Expected API error message to be surfaced, got: %v", err)
	}
}

func TestClient_handleFindRoute(t *testing.T) {
	// Mock server that responds to the route endpoint
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/routes" {
			t.Errorf("Expected POST /api/routes, got %s %s", r.Method, r.URL.Path)
		}

		var req service.RouteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Start != "Mumbai" || req.End != "Goa" || req.Capacity != 400 {
			t.Errorf("Unexpected request: %+v", req)
		}

		resp := service.RouteInfo{
			ID:            "query-123",
			Network:       "maharashtra",
			Currency:      "₹",
			Start:         req.Start,
			End:           req.End,
			Capacity:      req.Capacity,
			Path:          []string{"Mumbai", "Goa"},
			TotalDistance: 580,
			TotalCost:     360,
			ChargingPlan: []service.ChargingStopInfo{
				{City: "Mumbai", Energy: 0, Price: 1.8, Cost: 0, Description: "Mumbai: 0.0 units @ ₹1.80/unit"},
				{City: "Goa", Energy: 180, Price: 2.0, Cost: 360, Description: "Goa: 180.0 units @ ₹2.00/unit"},
			},
			ComputedAt: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "find_route",
			Arguments: map[string]interface{}{
				"start":    "Mumbai",
				"end":      "Goa",
				"capacity": 400.0,
			},
		},
	}

	result, err := client.handleFindRoute(ctx, request)
	if err != nil {
		t.Fatalf("handleFindRoute failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedFields := []string{
		"Optimal Route: Mumbai -> Goa",
		"Total Distance: 580 km",
		"Total Charging Cost: ₹360.00",
		"Charging Plan:",
		"Goa: 180.0 units @ ₹2.00/unit",
	}
	for _, field := range expectedFields {
		if !strings.Contains(resultStr.Text, field) {
			t.Errorf("Expected '%s' in result, got: %s", field, resultStr.Text)
		}
	}
}

func TestClient_handleListNetworks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" || r.URL.Path != "/api/networks" {
			t.Errorf("Expected GET /api/networks, got %s %s", r.Method, r.URL.Path)
		}

		resp := map[string]interface{}{
			"count": 1,
			"networks": []map[string]interface{}{
				{"name": "maharashtra", "description": "test dataset", "city_count": 7, "road_count": 8},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "list_networks",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleListNetworks(context.Background(), request)
	if err != nil {
		t.Fatalf("handleListNetworks failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "maharashtra") {
		t.Errorf("Expected network name in result, got: %s", resultStr.Text)
	}
	if !strings.Contains(resultStr.Text, "7 cities, 8 roads") {
		t.Errorf("Expected counts in result, got: %s", resultStr.Text)
	}
}

func TestFormatRouteInfo_NoCharging(t *testing.T) {
	info := &service.RouteInfo{
		Currency:      "₹",
		Path:          []string{"Pune", "Satara", "Kolhapur"},
		TotalDistance: 300,
		TotalCost:     0,
	}

	result := formatRouteInfo(info)

	if !strings.Contains(result, "Optimal Route: Pune -> Satara -> Kolhapur") {
		t.Errorf("Expected path in result, got: %s", result)
	}
	if !strings.Contains(result, "Battery capacity sufficient, no charging needed!") {
		t.Errorf("Expected no-charging message, got: %s", result)
	}
}

func TestFormatNetworkInfo(t *testing.T) {
	info := &service.NetworkInfo{
		Name:        "maharashtra",
		Description: "test dataset",
		Currency:    "₹",
	}

	result := formatNetworkInfo(info)

	expectedFields := []string{
		"Network: maharashtra",
		"test dataset",
		"Cities:",
		"Roads:",
	}
	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected '%s' in result, got: %s", field, result)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	// Verifies the client can be created and initialized without errors
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
