package config

import (
	"sort"

	"github.com/san-kum/orbital/internal/gravity"
)

// Preset bundles a ready-made scenario with the engine parameters it
// was tuned for.
type Preset struct {
	Config *Config
	Data   map[string]gravity.BodyData
}

var presets = map[string]*Preset{
	"binary": {
		Config: &Config{Dt: 0.5, TimeUnits: "secs", SpaceUnits: "m", MassUnits: "kg", Limit: 400, FrameRate: DefaultFrameRate},
		Data: map[string]gravity.BodyData{
			"primary":   {Position: []float64{-100, 0}, Velocity: []float64{0, -9.1}, Mass: 5e14},
			"secondary": {Position: []float64{100, 0}, Velocity: []float64{0, 9.1}, Mass: 5e14},
		},
	},
	"planet": {
		Config: &Config{Dt: 0.2, TimeUnits: "secs", SpaceUnits: "m", MassUnits: "kg", Limit: 600, FrameRate: DefaultFrameRate},
		Data: map[string]gravity.BodyData{
			"star":  {Position: []float64{0, 0}, Velocity: []float64{0, 0}, Mass: 4e16},
			"world": {Position: []float64{0, 1000}, Velocity: []float64{-51.7, 0}, Mass: 1e10},
		},
	},
	"three-body": {
		Config: &Config{Dt: 0.1, TimeUnits: "secs", SpaceUnits: "m", MassUnits: "kg", Limit: 800, FrameRate: DefaultFrameRate},
		Data: map[string]gravity.BodyData{
			"a": {Position: []float64{-200, 0}, Velocity: []float64{0, -8}, Mass: 4e14},
			"b": {Position: []float64{200, 0}, Velocity: []float64{0, 8}, Mass: 4e14},
			"c": {Position: []float64{0, 350}, Velocity: []float64{6, 0}, Mass: 1e13},
		},
	},
	"collapse": {
		Config: &Config{Dt: 0.05, TimeUnits: "secs", SpaceUnits: "m", MassUnits: "kg", Limit: 500, FrameRate: DefaultFrameRate},
		Data: map[string]gravity.BodyData{
			"north": {Position: []float64{0, 300}, Velocity: []float64{0, 0}, Mass: 2e14},
			"south": {Position: []float64{0, -300}, Velocity: []float64{0, 0}, Mass: 2e14},
			"east":  {Position: []float64{300, 0}, Velocity: []float64{0, 0}, Mass: 2e14},
			"west":  {Position: []float64{-300, 0}, Velocity: []float64{0, 0}, Mass: 2e14},
		},
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Preset {
	return presets[name]
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
