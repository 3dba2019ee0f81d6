package components

import (
	"sort"

	"github.com/matzehuels/housebox/pkg/errors"
)

// Preset bundles a decorative style with matching window and door types.
type Preset struct {
	Name        string
	Description string
	Style       Style
	WindowType  WindowType
	DoorType    DoorType
	Chimney     bool
}

var presets = map[string]Preset{
	"basic": {
		Description: "plain walls, rectangular openings",
		Style:       StyleBasic,
		WindowType:  WindowRectangular,
		DoorType:    DoorRectangular,
	},
	"farmhouse": {
		Description: "board-and-batten siding, dutch door",
		Style:       StyleFarmhouse,
		WindowType:  WindowRectangular,
		DoorType:    DoorDutch,
		Chimney:     true,
	},
	"colonial": {
		Description: "clapboard siding, colonial window sets",
		Style:       StyleColonial,
		WindowType:  WindowColonialSet,
		DoorType:    DoorRectangular,
		Chimney:     true,
	},
	"tudor": {
		Description: "half-timbering with arched openings",
		Style:       StyleTudor,
		WindowType:  WindowArched,
		DoorType:    DoorArched,
	},
	"victorian": {
		Description: "corner brackets, arched windows",
		Style:       StyleVictorian,
		WindowType:  WindowArched,
		DoorType:    DoorRectangular,
		Chimney:     true,
	},
	"craftsman": {
		Description: "column lines, multi-pane windows",
		Style:       StyleCraftsman,
		WindowType:  WindowMultiPane,
		DoorType:    DoorRectangular,
	},
	"german": {
		Description: "half-timbered fachwerkhaus",
		Style:       StyleFachwerkhaus,
		WindowType:  WindowRectangular,
		DoorType:    DoorArched,
	},
	"brick": {
		Description: "running-bond brickwork",
		Style:       StyleBrick,
		WindowType:  WindowDoubleHung,
		DoorType:    DoorRectangular,
		Chimney:     true,
	},
	"gingerbread": {
		Description: "scalloped trim and ornaments",
		Style:       StyleGingerbread,
		WindowType:  WindowArched,
		DoorType:    DoorArched,
	},
	"gothic": {
		Description: "pointed window pairs",
		Style:       StyleVictorian,
		WindowType:  WindowGothicPair,
		DoorType:    DoorArched,
	},
}

// PresetNames lists the preset names sorted alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPreset resolves a preset by name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset,
			"unknown preset %q, valid presets: %v", name, PresetNames())
	}
	p.Name = name
	return p, nil
}
