package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawUnitTable is the unit table as loaded from YAML.
type RawUnitTable struct {
	Units []RawUnit `yaml:"units"`
}

// RawUnit is one engineering unit entry.
type RawUnit struct {
	ID       int    `yaml:"id"`
	Unit     string `yaml:"unit"`
	UnitType string `yaml:"unit_type"`
}

// LoadUnitTable reads and validates a unit table YAML file.
func LoadUnitTable(path string) (*RawUnitTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseUnitTable(data)
}

// ParseUnitTable decodes a unit table and checks it for duplicate or
// incomplete entries.
func ParseUnitTable(data []byte) (*RawUnitTable, error) {
	var table RawUnitTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing unit table: %w", err)
	}
	if len(table.Units) == 0 {
		return nil, fmt.Errorf("unit table has no units")
	}

	seen := make(map[int]bool, len(table.Units))
	for i, u := range table.Units {
		if u.ID < 0 {
			return nil, fmt.Errorf("units[%d]: negative id %d", i, u.ID)
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("units[%d]: duplicate id %d", i, u.ID)
		}
		seen[u.ID] = true
		if strings.TrimSpace(u.Unit) == "" {
			return nil, fmt.Errorf("units[%d] (id %d): missing unit", i, u.ID)
		}
		if strings.TrimSpace(u.UnitType) == "" {
			return nil, fmt.Errorf("units[%d] (id %d): missing unit_type", i, u.ID)
		}
	}
	return &table, nil
}
