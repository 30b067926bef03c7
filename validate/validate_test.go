package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evroute/ev-route-planner/planner/config"
)

const validDataset = `{
	"name": "test",
	"description": "two city test network",
	"currency": "$",
	"cities": [
		{"name": "A", "price": 1.5},
		{"name": "B", "price": 2.0}
	],
	"roads": [
		{"from": "A", "to": "B", "distance": 100}
	]
}`

func writeTempDataset(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_dataset_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}
	tmpfile.Close()

	return tmpfile.Name()
}

func TestValidateFile_ValidDataset(t *testing.T) {
	path := writeTempDataset(t, validDataset)

	result := validateFile(path)
	if !result.Valid {
		t.Errorf("Expected valid dataset, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}
}

func TestValidateFile_InvalidJSON(t *testing.T) {
	path := writeTempDataset(t, `{"name": "test", invalid json}`)

	result := validateFile(path)
	if result.Valid {
		t.Error("Expected invalid result due to bad JSON")
	}

	found := false
	for _, err := range result.Errors {
		if strings.Contains(err, "Invalid JSON") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateFile_MissingFile(t *testing.T) {
	result := validateFile("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}

	found := false
	for _, err := range result.Errors {
		if strings.Contains(err, "Failed to read file") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateFile_NonPositivePrice(t *testing.T) {
	dataset := `{
		"name": "test",
		"cities": [
			{"name": "A", "price": 0},
			{"name": "B", "price": 2.0}
		],
		"roads": [
			{"from": "A", "to": "B", "distance": 100}
		]
	}`
	path := writeTempDataset(t, dataset)

	result := validateFile(path)
	if result.Valid {
		t.Error("Expected invalid result due to non-positive price")
	}

	found := false
	for _, err := range result.Errors {
		if strings.Contains(err, "positive charging price") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected price error, got: %v", result.Errors)
	}
}

func TestValidateFile_Disconnected(t *testing.T) {
	dataset := `{
		"name": "test",
		"cities": [
			{"name": "A", "price": 1.0},
			{"name": "B", "price": 1.0},
			{"name": "C", "price": 1.0}
		],
		"roads": [
			{"from": "A", "to": "B", "distance": 100}
		]
	}`
	path := writeTempDataset(t, dataset)

	result := validateFile(path)
	if result.Valid {
		t.Error("Expected invalid result due to unreachable city")
	}

	foundFailure := false
	foundCity := false
	for _, err := range result.Errors {
		if strings.Contains(err, "Connectivity failure") {
			foundFailure = true
		}
		if strings.Contains(err, "Unreachable: C") {
			foundCity = true
		}
	}
	if !foundFailure {
		t.Error("Expected 'Connectivity failure' error")
	}
	if !foundCity {
		t.Error("Expected C to be reported as unreachable")
	}
}

func TestValidateFile_DuplicateRoadWarning(t *testing.T) {
	dataset := `{
		"name": "test",
		"cities": [
			{"name": "A", "price": 1.0},
			{"name": "B", "price": 1.0}
		],
		"roads": [
			{"from": "A", "to": "B", "distance": 100},
			{"from": "B", "to": "A", "distance": 120}
		]
	}`
	path := writeTempDataset(t, dataset)

	result := validateFile(path)
	// Duplicates are a warning, not a failure.
	if !result.Valid {
		t.Errorf("Expected valid result, got errors: %v", result.Errors)
	}

	found := false
	for _, err := range result.Errors {
		if strings.Contains(err, "duplicate road A-B") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected duplicate road warning, got: %v", result.Errors)
	}
}

func TestFindUnreachable(t *testing.T) {
	var cfg config.NetworkConfig
	if err := json.Unmarshal([]byte(validDataset), &cfg); err != nil {
		t.Fatalf("Failed to parse dataset: %v", err)
	}

	if unreachable := findUnreachable(&cfg); len(unreachable) != 0 {
		t.Errorf("Expected all cities reachable, got %v", unreachable)
	}

	// Cut the only road: B becomes unreachable from A.
	cfg.Roads = nil
	unreachable := findUnreachable(&cfg)
	if len(unreachable) != 1 || unreachable[0] != "B" {
		t.Errorf("Expected [B] unreachable, got %v", unreachable)
	}

	if unreachable := findUnreachable(&config.NetworkConfig{}); unreachable != nil {
		t.Errorf("Expected nil for empty dataset, got %v", unreachable)
	}
}
