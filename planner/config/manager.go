package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/evroute/ev-route-planner/planner/graph"
)

var (
	ErrNetworkNotFound = errors.New("network configuration not found")
	ErrInvalidNetwork  = errors.New("invalid network configuration")
)

// Manager loads and caches network datasets and the graphs built from them.
type Manager struct {
	configDir     string
	defaultConfig *NetworkConfig
	configs       map[string]*NetworkConfig
	networks      map[string]*graph.Network
	mu            sync.RWMutex
}

// NewManager creates a configuration manager. configDir may be empty, in
// which case only the built-in default dataset is available.
func NewManager(configDir string) (*Manager, error) {
	if configDir != "" {
		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			return nil, fmt.Errorf("config directory does not exist: %s", configDir)
		}
	}

	return &Manager{
		configDir:     configDir,
		defaultConfig: DefaultConfig(),
		configs:       make(map[string]*NetworkConfig),
		networks:      make(map[string]*graph.Network),
	}, nil
}

// GetDefault returns the built-in dataset.
func (m *Manager) GetDefault() *NetworkConfig {
	return m.defaultConfig
}

// LoadConfig loads a dataset by name. The empty name, "default", and the
// built-in dataset's own name all resolve to the default.
func (m *Manager) LoadConfig(name string) (*NetworkConfig, error) {
	if name == "" || name == "default" || name == m.defaultConfig.Name {
		return m.defaultConfig, nil
	}

	m.mu.RLock()
	if cfg, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return cfg, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock.
	if cfg, exists := m.configs[name]; exists {
		return cfg, nil
	}

	if m.configDir == "" {
		return nil, ErrNetworkNotFound
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := os.ReadFile(filepath.Join(m.configDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNetworkNotFound
		}
		return nil, fmt.Errorf("failed to read network config: %w", err)
	}

	var cfg NetworkConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse network config: %w", err)
	}

	if err := ValidateNetworkConfig(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}

	m.configs[name] = &cfg
	return &cfg, nil
}

// Network returns the immutable graph built from the named dataset, building
// and caching it on first use.
func (m *Manager) Network(name string) (*graph.Network, error) {
	cfg, err := m.LoadConfig(name)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	if net, exists := m.networks[cfg.Name]; exists {
		m.mu.RUnlock()
		return net, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if net, exists := m.networks[cfg.Name]; exists {
		return net, nil
	}

	net, err := cfg.BuildNetwork()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}

	m.networks[cfg.Name] = net
	return net, nil
}

// ListNetworks returns summaries of every available dataset: the built-in
// default plus all *.json files in the configs directory, ordered by name.
func (m *Manager) ListNetworks() ([]*NetworkSummary, error) {
	summaries := map[string]*NetworkSummary{
		m.defaultConfig.Name: m.defaultConfig.Summary(),
	}

	if m.configDir != "" {
		entries, err := os.ReadDir(m.configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read config directory: %w", err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}

			name := strings.TrimSuffix(entry.Name(), ".json")
			cfg, err := m.LoadConfig(name)
			if err != nil {
				// Unparseable files are skipped rather than failing the
				// whole listing; the validate command reports them.
				continue
			}
			summaries[cfg.Name] = cfg.Summary()
		}
	}

	names := make([]string, 0, len(summaries))
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*NetworkSummary, 0, len(names))
	for _, name := range names {
		out = append(out, summaries[name])
	}
	return out, nil
}
