// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a definitions file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// definitionsFile is the on-disk layout. Entries replace the authored
// table with the same ID; archetypes not listed keep their defaults.
type definitionsFile struct {
	Enemies []EnemyDefinition `json:"enemies" yaml:"enemies"`
	Towers  []TowerDefinition `json:"towers" yaml:"towers"`
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported definitions file extension %q", filepath.Ext(path))
}

// LoadDefinitions reads a definitions file and overlays it on the default library.
func LoadDefinitions(path string) (*Library, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}

	lib, err := DecodeDefinitions(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("Loaded %d enemy and %d tower definitions from %s", len(lib.Enemies), len(lib.Towers), path)
	return lib, nil
}

// DecodeDefinitions decodes a definitions document and overlays it on the
// default library.
func DecodeDefinitions(data []byte, format Format) (*Library, error) {
	var file definitionsFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown definitions format %q", format)
	}

	lib := DefaultLibrary()
	for _, def := range file.Enemies {
		a, err := ParseEnemyArchetype(def.ID)
		if err != nil {
			return nil, err
		}
		if def.Visuals == (Visuals{}) {
			def.Visuals = lib.Enemies[a].Visuals
		}
		lib.Enemies[a] = def
	}
	for _, def := range file.Towers {
		a, err := ParseTowerArchetype(def.ID)
		if err != nil {
			return nil, err
		}
		if def.Visuals == (Visuals{}) {
			def.Visuals = lib.Towers[a].Visuals
		}
		lib.Towers[a] = def
	}

	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}
