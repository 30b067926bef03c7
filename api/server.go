package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/evroute/ev-route-planner/planner/config"
	"github.com/evroute/ev-route-planner/planner/graph"
	"github.com/evroute/ev-route-planner/planner/history"
	"github.com/evroute/ev-route-planner/planner/route"
	"github.com/evroute/ev-route-planner/planner/service"
	"github.com/evroute/ev-route-planner/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.RouteService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server
func NewServer(routeService service.RouteService, hub *websocket.Hub) *Server {
	s := &Server{
		service: routeService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Route planning
	api.HandleFunc("/routes", s.handleFindRoute).Methods("POST")

	// Networks
	api.HandleFunc("/networks", s.handleListNetworks).Methods("GET")
	api.HandleFunc("/networks/{name}", s.handleGetNetwork).Methods("GET")
	api.HandleFunc("/networks/{name}/cities", s.handleListCities).Methods("GET")

	// Query history
	api.HandleFunc("/queries", s.handleListQueries).Methods("GET")
	api.HandleFunc("/queries/{id}", s.handleGetQuery).Methods("GET")

	// Health
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)

	// Static files (if needed)
	s.router.PathPrefix("/").Handler(http.FileServer(http.Dir("./static/")))
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusForError maps service and planner errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCapacity),
		errors.Is(err, service.ErrSameCity),
		errors.Is(err, graph.ErrUnknownCity):
		return http.StatusBadRequest
	case errors.Is(err, route.ErrNoRoute),
		errors.Is(err, config.ErrNetworkNotFound),
		errors.Is(err, history.ErrQueryNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Route planning handlers

func (s *Server) handleFindRoute(w http.ResponseWriter, r *http.Request) {
	var req service.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	info, err := s.service.FindRoute(r.Context(), req)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	// Broadcast to WebSocket viewers of this network
	if s.hub != nil {
		s.hub.BroadcastRoute(info.Network, info)
	}

	// Compact server log for observability
	fmt.Printf("[ROUTE] network=%s %s->%s cap=%g dist=%g cost=%.2f stops=%d\n",
		info.Network, info.Start, info.End, info.Capacity, info.TotalDistance, info.TotalCost, len(info.ChargingPlan))

	respondJSON(w, http.StatusOK, info)
}

// Network handlers

func (s *Server) handleListNetworks(w http.ResponseWriter, r *http.Request) {
	networks, err := s.service.ListNetworks(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(networks),
		"networks": networks,
	})
}

func (s *Server) handleGetNetwork(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	info, err := s.service.GetNetwork(r.Context(), vars["name"])
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, info)
}

func (s *Server) handleListCities(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cities, err := s.service.ListCities(r.Context(), vars["name"])
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(cities),
		"cities": cities,
	})
}

// Query history handlers

func (s *Server) handleListQueries(w http.ResponseWriter, r *http.Request) {
	queries, err := s.service.ListQueries(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Optional limit on the number of queries returned
	limit := len(queries)
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(queries) {
			limit = l
		}
	}
	queries = queries[:limit]

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(queries),
		"queries": queries,
	})
}

func (s *Server) handleGetQuery(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	info, err := s.service.GetQuery(r.Context(), vars["id"])
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, info)
}

// Health handler

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// WebSocket handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		respondError(w, http.StatusServiceUnavailable, "WebSocket not available")
		return
	}

	network := r.URL.Query().Get("network")
	if network == "" {
		network = config.DefaultNetworkName
	}

	s.hub.ServeWS(w, r, network)
}
