package config

import "sort"

// Preset is a named set of physical parameters. Zero fields leave the
// current value untouched.
type Preset struct {
	Description string
	Height      float64
	Gravity     float64
}

var Presets = map[string]*Preset{
	"earth": {
		Description: "standard drop, g = 9.8 m/s^2",
		Height:      DefaultHeight, Gravity: DefaultGravity,
	},
	"moon": {
		Description: "lunar surface, g = 1.62 m/s^2",
		Gravity:     1.62,
	},
	"mars": {
		Description: "martian surface, g = 3.71 m/s^2",
		Gravity:     3.71,
	},
	"jupiter": {
		Description: "jovian cloud tops, g = 24.79 m/s^2",
		Gravity:     24.79,
	},
	"tower": {
		Description: "300 m drop on earth",
		Height:      300, Gravity: DefaultGravity,
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
