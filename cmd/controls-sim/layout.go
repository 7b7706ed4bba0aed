package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"controls-go/services/panel"
	"controls-go/types"
)

// loadLayout returns the YAML layout at path, or the embedded layout for
// board when path is empty.
func loadLayout(board, path string) (types.PanelConfig, error) {
	if path == "" {
		return panel.EmbeddedLayout(board)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.PanelConfig{}, err
	}
	return parseLayoutYAML(raw)
}

func parseLayoutYAML(raw []byte) (types.PanelConfig, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return types.PanelConfig{}, fmt.Errorf("layout: %w", err)
	}
	return panel.DecodeLayout(tree)
}
