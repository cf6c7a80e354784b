package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/reactor"
)

type Preset struct {
	Description string
	Request     reactor.Request
}

var Presets = map[string]Preset{
	"default": {
		Description: "reference operating point",
		Request:     reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280},
	},
	"hot": {
		Description: "hotter inlet, faster flow",
		Request:     reactor.Request{TIn: 330, Velocity: 2.0, TJacket: 280},
	},
	"dashboard": {
		Description: "dashboard start-up values",
		Request:     reactor.Request{TIn: 300, Velocity: 2.0, TJacket: 280},
	},
	"cold-jacket": {
		Description: "strong cooling",
		Request:     reactor.Request{TIn: 320, Velocity: 1.5, TJacket: 250},
	},
	"slow": {
		Description: "long residence time",
		Request:     reactor.Request{TIn: 310, Velocity: 0.5, TJacket: 280},
	},
}

func GetPreset(name string) (Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownPreset, name, ListPresets())
	}
	return p, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
