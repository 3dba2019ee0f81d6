package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/housebox/pkg/layout"
	"github.com/matzehuels/housebox/pkg/pipeline"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader.Padding(0, 1)
			}
			return styleTableCell
		}).
		Headers(headers...)
}

// summaryTable renders the cutting summary of a finished run.
func summaryTable(res *pipeline.Result) string {
	floors := strconv.Itoa(res.Summary.Floors.Count)
	if res.Summary.Floors.Attic {
		floors += " + attic"
	}
	t := newTable("Job", "Panels", "Components", "Floors", "Sheets", "Cut length")
	t.Row(
		res.JobID[:8],
		strconv.Itoa(res.Summary.Panels),
		strconv.Itoa(res.Summary.Components),
		floors,
		strconv.Itoa(res.Summary.Sheets),
		fmt.Sprintf("%.0f mm", res.Summary.CutLength),
	)
	return t.Render()
}

// panelsTable renders the per-panel placements of a packed layout.
func panelsTable(l *layout.Layout) string {
	t := newTable("Panel", "Size (mm)", "Sheet", "Position (mm)", "Rotation")
	for _, p := range l.Placements {
		rotation := "—"
		if p.Rotation != 0 {
			rotation = fmt.Sprintf("%.0f°", p.Rotation)
		}
		t.Row(
			p.Panel.Name,
			fmt.Sprintf("%.1f × %.1f", p.Width, p.Height),
			strconv.Itoa(p.Sheet+1),
			fmt.Sprintf("%.1f, %.1f", p.X, p.Y),
			rotation,
		)
	}
	return t.Render()
}
