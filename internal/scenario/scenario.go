// Package scenario produces canonical initial-condition data for the
// gravity engine, either from a JSON scenario file or from a seeded
// randomizer.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/san-kum/orbital/internal/gravity"
)

// Load reads a JSON scenario file of the form
//
//	{
//	    "name_of_the_body": {
//	        "position": [x, y],
//	        "velocity": [vx, vy],
//	        "mass": m
//	    },
//	    ...
//	}
//
// Unknown per-body fields are ignored. Physical validation (mass,
// vector dimension) is the engine's job.
func Load(path string) (map[string]gravity.BodyData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	data := make(map[string]gravity.BodyData)
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return data, nil
}

// Save writes scenario data back out as indented JSON.
func Save(path string, data map[string]gravity.BodyData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}
