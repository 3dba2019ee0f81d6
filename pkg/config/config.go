// Package config loads housebox job files: TOML documents bundling the
// house parameters, material sheet, component configuration and output
// options of one generation run.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/housebox/pkg/components"
	"github.com/matzehuels/housebox/pkg/errors"
	"github.com/matzehuels/housebox/pkg/floors"
	"github.com/matzehuels/housebox/pkg/geometry"
	"github.com/matzehuels/housebox/pkg/layout"
)

// Job is one complete generation request.
type Job struct {
	House      House      `toml:"house"`
	Material   Material   `toml:"material"`
	Components Components `toml:"components"`
	Output     Output     `toml:"output"`
}

// House mirrors geometry.Params in mm and degrees.
type House struct {
	Length       float64 `toml:"length"`
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	GableAngle   float64 `toml:"gable_angle"`
	Thickness    float64 `toml:"thickness"`
	FingerLength float64 `toml:"finger_length"`
	Kerf         float64 `toml:"kerf"`
	FloorHeight  float64 `toml:"floor_height"` // nominal height per floor
}

// Material describes the sheet stock and packing mode.
type Material struct {
	SheetWidth  float64 `toml:"sheet_width"`
	SheetHeight float64 `toml:"sheet_height"`
	Spacing     float64 `toml:"spacing"`
	Rotated     bool    `toml:"rotated"`
}

// Components selects either a preset or an explicit component list. When
// Preset is set it provides the style and auto-placed components; explicit
// entries are added on top.
type Components struct {
	Preset     string    `toml:"preset"`
	Style      string    `toml:"style"`
	WindowType string    `toml:"window_type"` // overrides the preset's window type
	DoorType   string    `toml:"door_type"`   // overrides the preset's door type
	Chimney    bool      `toml:"chimney"`     // force a chimney even if the preset has none
	Windows    []Window  `toml:"windows"`
	Doors      []Door    `toml:"doors"`
	Chimneys   []Chimney `toml:"chimneys"`
}

// Window is one explicit window placement.
type Window struct {
	Type   string  `toml:"type"`
	Panel  string  `toml:"panel"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Door is one explicit door placement.
type Door struct {
	Type   string  `toml:"type"`
	Panel  string  `toml:"panel"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Chimney is one explicit chimney placement on a roof panel.
type Chimney struct {
	Panel  string  `toml:"panel"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Depth  float64 `toml:"depth"`
	Height float64 `toml:"height"`
}

// Output controls the SVG artifact.
type Output struct {
	File   string `toml:"file"`
	Labels bool   `toml:"labels"`
	Scores bool   `toml:"scores"`
}

// Default returns a job with the default house on default stock.
func Default() *Job {
	p := geometry.DefaultParams()
	return &Job{
		House: House{
			Length:       p.Length,
			Width:        p.Width,
			Height:       p.Height,
			GableAngle:   p.GableAngle,
			Thickness:    p.Thickness,
			FingerLength: p.FingerLength,
			Kerf:         p.Kerf,
			FloorHeight:  floors.DefaultNominalHeight,
		},
		Material: Material{
			SheetWidth:  layout.DefaultSheetWidth,
			SheetHeight: layout.DefaultSheetHeight,
		},
		Components: Components{Preset: "basic"},
		Output:     Output{File: "housebox.svg", Labels: true, Scores: true},
	}
}

// Load reads a TOML job file. Unknown keys are rejected so typos do not
// silently fall back to defaults. Missing sections keep the defaults.
func Load(path string) (*Job, error) {
	job := Default()
	meta, err := toml.DecodeFile(path, job)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return job, nil
}

// Params converts the house section to geometry parameters.
func (j *Job) Params() geometry.Params {
	return geometry.Params{
		Length:       j.House.Length,
		Width:        j.House.Width,
		Height:       j.House.Height,
		GableAngle:   j.House.GableAngle,
		Thickness:    j.House.Thickness,
		FingerLength: j.House.FingerLength,
		Kerf:         j.House.Kerf,
	}
}

// LayoutOptions converts the material section to packing options.
func (j *Job) LayoutOptions() layout.Options {
	return layout.Options{
		SheetWidth:  j.Material.SheetWidth,
		SheetHeight: j.Material.SheetHeight,
		Spacing:     j.Material.Spacing,
		Rotated:     j.Material.Rotated,
		GableAngle:  j.House.GableAngle,
	}
}

// ComponentSet builds the validated component set the job describes:
// preset auto-placement first, explicit entries on top.
func (j *Job) ComponentSet(d *geometry.Derived) (*components.Set, error) {
	c := j.Components

	style := components.StyleBasic
	winType := components.WindowRectangular
	doorType := components.DoorRectangular
	withChimney := c.Chimney
	auto := false
	if c.Preset != "" {
		p, err := components.LookupPreset(c.Preset)
		if err != nil {
			return nil, err
		}
		style = p.Style
		winType = p.WindowType
		doorType = p.DoorType
		withChimney = withChimney || p.Chimney
		auto = true
	}
	if c.Style != "" {
		s, err := components.ParseStyle(c.Style)
		if err != nil {
			return nil, err
		}
		style = s
	}
	if c.WindowType != "" {
		t, err := components.ParseWindowType(c.WindowType)
		if err != nil {
			return nil, err
		}
		winType = t
		auto = true
	}
	if c.DoorType != "" {
		t, err := components.ParseDoorType(c.DoorType)
		if err != nil {
			return nil, err
		}
		doorType = t
		auto = true
	}

	set := components.NewSet(d, style)
	if auto {
		if err := set.AddAuto(winType, doorType, withChimney); err != nil {
			return nil, err
		}
	}

	for _, w := range c.Windows {
		typ, err := components.ParseWindowType(w.Type)
		if err != nil {
			return nil, err
		}
		err = set.AddWindow(components.Window{Type: typ, Placement: components.Placement{
			Panel: geometry.PanelName(w.Panel), X: w.X, Y: w.Y, Width: w.Width, Height: w.Height,
		}})
		if err != nil {
			return nil, err
		}
	}
	for _, d2 := range c.Doors {
		typ, err := components.ParseDoorType(d2.Type)
		if err != nil {
			return nil, err
		}
		err = set.AddDoor(components.Door{Type: typ, Placement: components.Placement{
			Panel: geometry.PanelName(d2.Panel), X: d2.X, Y: d2.Y, Width: d2.Width, Height: d2.Height,
		}})
		if err != nil {
			return nil, err
		}
	}
	for _, ch := range c.Chimneys {
		err := set.AddChimney(components.Chimney{
			Panel: geometry.PanelName(ch.Panel),
			X:     ch.X, Y: ch.Y,
			Width: ch.Width, Depth: ch.Depth, Height: ch.Height,
		})
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}
