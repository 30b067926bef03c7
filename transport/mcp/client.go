package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/evroute/ev-route-planner/planner/config"
	"github.com/evroute/ev-route-planner/planner/graph"
	"github.com/evroute/ev-route-planner/planner/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// GetMCPServer returns the underlying MCP server
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"EV Route Planner",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`EV Route Planner - MCP Interface

This is a thin client that proxies all requests to the REST API server.

PURPOSE:
Plan the shortest route between two cities on a fixed road network and
simulate where an electric vehicle with a given battery capacity has to
recharge, under a greedy charge-to-full policy.

AVAILABLE TOOLS:
- find_route: Compute shortest route, total distance, charging plan, and cost
- list_networks: List available road-network datasets
- list_cities: List a network's cities with their charging prices
- get_network: Get a network's full city and road data
- recent_queries: List recently computed routes
- get_query: Re-display a recorded route by ID

Start and destination must be different cities from list_cities, and the
battery capacity must be a positive number.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "find_route",
		Description: "Compute the shortest route between two cities with a charging plan and cost",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"start": map[string]interface{}{
					"type":        "string",
					"description": "Start city name",
				},
				"end": map[string]interface{}{
					"type":        "string",
					"description": "Destination city name",
				},
				"capacity": map[string]interface{}{
					"type":        "number",
					"description": "Battery capacity in energy units (positive)",
				},
				"network": map[string]interface{}{
					"type":        "string",
					"description": "Network dataset name (optional, default dataset when omitted)",
				},
			},
			Required: []string{"start", "end", "capacity"},
		},
	}, c.handleFindRoute)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_networks",
		Description: "List all available road-network datasets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListNetworks)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_cities",
		Description: "List a network's cities with their charging prices",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"network": map[string]interface{}{
					"type":        "string",
					"description": "Network dataset name (optional)",
				},
			},
		},
	}, c.handleListCities)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_network",
		Description: "Get a network's full city and road data, including distances",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"network": map[string]interface{}{
					"type":        "string",
					"description": "Network dataset name (optional)",
				},
			},
		},
	}, c.handleGetNetwork)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "recent_queries",
		Description: "List recently computed routes, newest first",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of queries to return (optional)",
				},
			},
		},
	}, c.handleRecentQueries)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_query",
		Description: "Re-display a recorded route query by ID",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the recorded query",
				},
			},
			Required: []string{"query_id"},
		},
	}, c.handleGetQuery)
}

// apiCall makes an HTTP request to the REST API
func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleFindRoute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	start, _ := args["start"].(string)
	end, _ := args["end"].(string)
	capacity, _ := args["capacity"].(float64)
	network, _ := args["network"].(string)

	body := service.RouteRequest{
		Network:  network,
		Start:    start,
		End:      end,
		Capacity: capacity,
	}

	var info service.RouteInfo
	if err := c.apiCall("POST", "/api/routes", body, &info); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatRouteInfo(&info)), nil
}

func (c *Client) handleListNetworks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                     `json:"count"`
		Networks []config.NetworkSummary `json:"networks"`
	}

	if err := c.apiCall("GET", "/api/networks", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Available Networks (%d):\n\n", response.Count)
	for _, n := range response.Networks {
		result += fmt.Sprintf("- %s: %s (%d cities, %d roads)\n",
			n.Name, n.Description, n.CityCount, n.RoadCount)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListCities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	network, _ := args["network"].(string)
	if network == "" {
		network = config.DefaultNetworkName
	}

	var response struct {
		Count  int          `json:"count"`
		Cities []graph.City `json:"cities"`
	}

	path := fmt.Sprintf("/api/networks/%s/cities", url.PathEscape(network))
	if err := c.apiCall("GET", path, nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Cities in %s (%d):\n\n", network, response.Count)
	for _, city := range response.Cities {
		result += fmt.Sprintf("- %s (charging price %.2f/unit)\n", city.Name, city.Price)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetNetwork(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	network, _ := args["network"].(string)
	if network == "" {
		network = config.DefaultNetworkName
	}

	var info service.NetworkInfo
	path := fmt.Sprintf("/api/networks/%s", url.PathEscape(network))
	if err := c.apiCall("GET", path, nil, &info); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatNetworkInfo(&info)), nil
}

func (c *Client) handleRecentQueries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})

	path := "/api/queries"
	if limit, ok := args["limit"].(float64); ok && limit > 0 {
		path = fmt.Sprintf("/api/queries?limit=%d", int(limit))
	}

	var response struct {
		Count   int                 `json:"count"`
		Queries []service.RouteInfo `json:"queries"`
	}

	if err := c.apiCall("GET", path, nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Recent Queries (%d):\n\n", response.Count)
	for _, q := range response.Queries {
		result += fmt.Sprintf("- %s: %s -> %s (capacity %g, cost %s%.2f) at %s\n",
			q.ID, q.Start, q.End, q.Capacity, q.Currency, q.TotalCost,
			q.ComputedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	queryID, _ := args["query_id"].(string)

	var info service.RouteInfo
	path := fmt.Sprintf("/api/queries/%s", url.PathEscape(queryID))
	if err := c.apiCall("GET", path, nil, &info); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatRouteInfo(&info)), nil
}

// Formatters

// formatRouteInfo renders a route result the way the CLI shows it.
func formatRouteInfo(info *service.RouteInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Optimal Route: %s\n", strings.Join(info.Path, " -> "))
	fmt.Fprintf(&b, "Total Distance: %g km\n", info.TotalDistance)
	fmt.Fprintf(&b, "Total Charging Cost: %s%.2f\n", info.Currency, info.TotalCost)

	if len(info.ChargingPlan) > 0 {
		b.WriteString("\nCharging Plan:\n")
		for _, stop := range info.ChargingPlan {
			fmt.Fprintf(&b, " - %s\n", stop.Description)
		}
	} else {
		b.WriteString("\nBattery capacity sufficient, no charging needed!\n")
	}

	return b.String()
}

// formatNetworkInfo renders the full network for agents that want to reason
// about the map.
func formatNetworkInfo(info *service.NetworkInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Network: %s\n%s\n\n", info.Name, info.Description)

	b.WriteString("Cities:\n")
	for _, city := range info.Cities {
		fmt.Fprintf(&b, " - %s (charging price %s%.2f/unit)\n", city.Name, info.Currency, city.Price)
	}

	b.WriteString("\nRoads:\n")
	for _, road := range info.Roads {
		fmt.Fprintf(&b, " - %s <-> %s: %g km\n", road.From, road.To, road.Distance)
	}

	return b.String()
}
