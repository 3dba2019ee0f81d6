package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/housebox/pkg/config"
	"github.com/matzehuels/housebox/pkg/pipeline"
)

// jobFlags binds the house, material and component flags shared by the
// generate and plan commands. Flags override the job file only when set
// on the command line.
type jobFlags struct {
	configPath string

	length, width, height float64
	angle, thickness      float64
	finger, kerf          float64
	floorHeight           float64

	sheetWidth, sheetHeight, spacing float64
	rotated                          bool

	preset, style, windowType, doorType string
	chimney                             bool
}

func (jf *jobFlags) register(cmd *cobra.Command) {
	d := config.Default()
	f := cmd.Flags()
	f.StringVarP(&jf.configPath, "config", "c", "", "TOML job file")

	f.Float64VarP(&jf.length, "length", "x", d.House.Length, "house length in mm (front to back)")
	f.Float64VarP(&jf.width, "width", "y", d.House.Width, "house width in mm (side to side)")
	f.Float64VarP(&jf.height, "height", "z", d.House.Height, "wall height in mm")
	f.Float64Var(&jf.angle, "angle", d.House.GableAngle, "gable roof angle in degrees")
	f.Float64VarP(&jf.thickness, "thickness", "t", d.House.Thickness, "material thickness in mm")
	f.Float64Var(&jf.finger, "finger", d.House.FingerLength, "finger joint tab length in mm")
	f.Float64Var(&jf.kerf, "kerf", d.House.Kerf, "laser kerf compensation in mm")
	f.Float64Var(&jf.floorHeight, "floor-height", d.House.FloorHeight, "nominal height per floor in mm")

	f.Float64Var(&jf.sheetWidth, "sheet-width", d.Material.SheetWidth, "material sheet width in mm (hard limit)")
	f.Float64Var(&jf.sheetHeight, "sheet-height", d.Material.SheetHeight, "material sheet height in mm (soft limit)")
	f.Float64Var(&jf.spacing, "spacing", d.Material.Spacing, "minimum spacing between panels in mm")
	f.BoolVar(&jf.rotated, "rotated", false, "use the roof-line-aligned rotated arrangement")

	f.StringVarP(&jf.preset, "preset", "p", "", "architectural preset (see 'housebox presets')")
	f.StringVar(&jf.style, "style", "", "decorative style override")
	f.StringVar(&jf.windowType, "window", "", "window type override")
	f.StringVar(&jf.doorType, "door", "", "door type override")
	f.BoolVar(&jf.chimney, "chimney", false, "add a chimney")
}

// job resolves the final job: defaults, then the --config file, then any
// explicitly set flags on top.
func (jf *jobFlags) job(f *pflag.FlagSet) (*config.Job, error) {
	job := config.Default()
	if jf.configPath != "" {
		loaded, err := config.Load(jf.configPath)
		if err != nil {
			return nil, err
		}
		job = loaded
	}

	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("length", func() { job.House.Length = jf.length })
	set("width", func() { job.House.Width = jf.width })
	set("height", func() { job.House.Height = jf.height })
	set("angle", func() { job.House.GableAngle = jf.angle })
	set("thickness", func() { job.House.Thickness = jf.thickness })
	set("finger", func() { job.House.FingerLength = jf.finger })
	set("kerf", func() { job.House.Kerf = jf.kerf })
	set("floor-height", func() { job.House.FloorHeight = jf.floorHeight })
	set("sheet-width", func() { job.Material.SheetWidth = jf.sheetWidth })
	set("sheet-height", func() { job.Material.SheetHeight = jf.sheetHeight })
	set("spacing", func() { job.Material.Spacing = jf.spacing })
	set("rotated", func() { job.Material.Rotated = jf.rotated })
	set("preset", func() { job.Components.Preset = jf.preset })
	set("style", func() { job.Components.Style = jf.style })
	set("window", func() { job.Components.WindowType = jf.windowType })
	set("door", func() { job.Components.DoorType = jf.doorType })
	set("chimney", func() { job.Components.Chimney = jf.chimney })
	return job, nil
}

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	var (
		jf       jobFlags
		output   string
		noLabels bool
		noScores bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the laser-cutting SVG for a house box",
		Long: `Generate the laser-cutting SVG for a house box.

The command derives the full panel geometry from the house parameters,
places windows, doors and chimneys from the chosen preset or job file,
packs the panels onto material sheets and writes one SVG with hairline
cut paths and a blue engrave layer.

Parameters come from defaults, an optional --config job file, and flags,
in that order of precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			job, err := jf.job(cmd.Flags())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				job.Output.File = output
			}
			if noLabels {
				job.Output.Labels = false
			}
			if noScores {
				job.Output.Scores = false
			}

			prog := newProgress(logger)
			out, err := os.Create(job.Output.File)
			if err != nil {
				return fmt.Errorf("create %s: %w", job.Output.File, err)
			}
			res, err := pipeline.Run(cmd.Context(), job, out)
			if err != nil {
				out.Close()
				os.Remove(job.Output.File)
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Generated %d panels onto %d sheet(s)", res.Summary.Panels, res.Summary.Sheets))

			printSuccess("House box ready for cutting")
			fmt.Println(summaryTable(res))
			printFile(job.Output.File)
			return nil
		},
	}

	jf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", config.Default().Output.File, "output SVG file")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit panel name labels")
	cmd.Flags().BoolVar(&noScores, "no-scores", false, "omit the engrave layer")
	return cmd
}
