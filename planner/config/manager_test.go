package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTestConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
}

const miniNetworkJSON = `{
	"name": "mini",
	"description": "two city test network",
	"currency": "$",
	"cities": [
		{"name": "X", "price": 1.0},
		{"name": "Y", "price": 2.0}
	],
	"roads": [
		{"from": "X", "to": "Y", "distance": 50}
	]
}`

func TestNewManager(t *testing.T) {
	m, err := NewManager("")
	if err != nil {
		t.Fatalf("NewManager with empty dir failed: %v", err)
	}
	if m.GetDefault().Name != DefaultNetworkName {
		t.Errorf("Expected default %s, got %s", DefaultNetworkName, m.GetDefault().Name)
	}

	if _, err := NewManager("/nonexistent/path"); err == nil {
		t.Error("Expected error for missing config directory")
	}
}

func TestLoadConfigDefault(t *testing.T) {
	m, _ := NewManager("")

	for _, name := range []string{"", "default", DefaultNetworkName} {
		cfg, err := m.LoadConfig(name)
		if err != nil {
			t.Fatalf("LoadConfig(%q) failed: %v", name, err)
		}
		if cfg.Name != DefaultNetworkName {
			t.Errorf("LoadConfig(%q): expected %s, got %s", name, DefaultNetworkName, cfg.Name)
		}
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "mini.json", miniNetworkJSON)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	cfg, err := m.LoadConfig("mini")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "mini" {
		t.Errorf("Expected name mini, got %s", cfg.Name)
	}
	if cfg.Currency != "$" {
		t.Errorf("Expected currency $, got %s", cfg.Currency)
	}

	// Second load comes from the cache and returns the same pointer.
	again, err := m.LoadConfig("mini")
	if err != nil {
		t.Fatalf("Cached LoadConfig failed: %v", err)
	}
	if cfg != again {
		t.Error("Expected cached config to be returned")
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	m, _ := NewManager("")

	_, err := m.LoadConfig("nope")
	if !errors.Is(err, ErrNetworkNotFound) {
		t.Errorf("Expected ErrNetworkNotFound, got %v", err)
	}

	dir := t.TempDir()
	m, _ = NewManager(dir)
	_, err = m.LoadConfig("nope")
	if !errors.Is(err, ErrNetworkNotFound) {
		t.Errorf("Expected ErrNetworkNotFound, got %v", err)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "broken.json", `{"name": "broken", "cities": []}`)
	writeTestConfig(t, dir, "garbage.json", `not json at all`)

	m, _ := NewManager(dir)

	if _, err := m.LoadConfig("broken"); !errors.Is(err, ErrInvalidNetwork) {
		t.Errorf("Expected ErrInvalidNetwork, got %v", err)
	}
	if _, err := m.LoadConfig("garbage"); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestNetwork(t *testing.T) {
	m, _ := NewManager("")

	net, err := m.Network("")
	if err != nil {
		t.Fatalf("Network failed: %v", err)
	}
	if net.CityCount() != 7 {
		t.Errorf("Expected 7 cities, got %d", net.CityCount())
	}

	// Graph construction is cached.
	again, err := m.Network("default")
	if err != nil {
		t.Fatalf("Cached Network failed: %v", err)
	}
	if net != again {
		t.Error("Expected cached network to be returned")
	}
}

func TestListNetworks(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "mini.json", miniNetworkJSON)
	writeTestConfig(t, dir, "garbage.json", `not json`)
	writeTestConfig(t, dir, "notes.txt", `ignored`)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	summaries, err := m.ListNetworks()
	if err != nil {
		t.Fatalf("ListNetworks failed: %v", err)
	}

	// Sorted by name: the built-in default plus the valid file. The
	// unparseable file is skipped.
	if len(summaries) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Name != DefaultNetworkName {
		t.Errorf("Expected %s first, got %s", DefaultNetworkName, summaries[0].Name)
	}
	if summaries[1].Name != "mini" {
		t.Errorf("Expected mini second, got %s", summaries[1].Name)
	}
	if summaries[1].CityCount != 2 || summaries[1].RoadCount != 1 {
		t.Errorf("Unexpected mini summary: %+v", summaries[1])
	}
}
