package models

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveDir is where save slots live. Overridden from config at startup.
var SaveDir = ".saves"

// Save writes the full aggregate into a slot directory as state.yaml.
// The write goes through a temp file so a failed save never truncates an
// existing slot.
func (g *GameState) Save(slot string) error {
	dir := filepath.Join(SaveDir, slot)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	g.SchemaVersion = CurrentSchemaVersion
	data, err := yaml.Marshal(g)
	if err != nil {
		return err
	}

	tmp := filepath.Join(dir, "state.yaml.tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(dir, "state.yaml"))
}

// LoadGame reads a slot back into memory. Unknown schema versions are
// rejected rather than guessed at.
func LoadGame(slot string) (*GameState, error) {
	data, err := os.ReadFile(filepath.Join(SaveDir, slot, "state.yaml"))
	if err != nil {
		return nil, err
	}

	var state GameState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.SchemaVersion != CurrentSchemaVersion {
		return nil, fmt.Errorf("save %q has schema version %d, want %d", slot, state.SchemaVersion, CurrentSchemaVersion)
	}
	return &state, nil
}

// ListSlots returns the names of directories that contain a valid save.
func ListSlots() ([]string, error) {
	if _, err := os.Stat(SaveDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(SaveDir)
	if err != nil {
		return nil, err
	}

	var slots []string
	for _, entry := range entries {
		if entry.IsDir() {
			statePath := filepath.Join(SaveDir, entry.Name(), "state.yaml")
			if _, err := os.Stat(statePath); err == nil {
				slots = append(slots, entry.Name())
			}
		}
	}
	return slots, nil
}
