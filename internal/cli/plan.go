package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/housebox/pkg/pipeline"
)

// newPlanCmd creates the plan command.
func newPlanCmd() *cobra.Command {
	var jf jobFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the cutting plan without writing an SVG",
		Long: `Compute the cutting plan without writing an SVG.

The command runs the full pipeline up to the packed sheet layout and
prints the cutting summary and per-panel placements. Useful for checking
material usage and component placement before committing to a cut.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := jf.job(cmd.Flags())
			if err != nil {
				return err
			}
			res, err := pipeline.Plan(cmd.Context(), job)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Cutting plan"))
			fmt.Println(summaryTable(res))
			if res.Summary.Floors.Attic {
				printDetail("%d floor(s) plus a %.0fmm attic",
					res.Summary.Floors.Count, res.Summary.Floors.AtticHeight)
			}
			fmt.Println(panelsTable(res.Layout))
			printNextStep("Write the SVG", "housebox generate")
			return nil
		},
	}

	jf.register(cmd)
	return cmd
}
