package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/housebox/pkg/components"
)

// newPresetsCmd creates the presets command.
func newPresetsCmd() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the architectural presets",
		Long: `List the architectural presets.

Each preset bundles a decorative style with matching window and door
types. With --pick, choose one interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pick {
				return runPresetPicker()
			}
			fmt.Println(StyleTitle.Render("Architectural presets"))
			fmt.Println(presetsTable())
			printNextStep("Generate with a preset", "housebox generate --preset tudor")
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "pick a preset interactively")
	return cmd
}

func presetsTable() string {
	t := newTable("Name", "Style", "Windows", "Door", "Chimney", "Description")
	for _, name := range components.PresetNames() {
		p, err := components.LookupPreset(name)
		if err != nil {
			continue
		}
		chimney := "—"
		if p.Chimney {
			chimney = "yes"
		}
		t.Row(p.Name, string(p.Style), string(p.WindowType), string(p.DoorType), chimney, p.Description)
	}
	return t.Render()
}

// List styles for the picker.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

// presetListModel is the bubbletea model for interactive preset selection.
type presetListModel struct {
	names    []string
	cursor   int
	selected string
}

func newPresetListModel() presetListModel {
	return presetListModel{names: components.PresetNames()}
}

func (m presetListModel) Init() tea.Cmd {
	return nil
}

func (m presetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.names[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m presetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select preset"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.names {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		desc := ""
		if p, err := components.LookupPreset(name); err == nil {
			desc = "  " + StyleDim.Render(p.Description)
		}
		b.WriteString(cursor + style.Render(name) + desc + "\n")
	}
	return b.String()
}

func runPresetPicker() error {
	m, err := tea.NewProgram(newPresetListModel()).Run()
	if err != nil {
		return fmt.Errorf("preset picker: %w", err)
	}
	model, ok := m.(presetListModel)
	if !ok || model.selected == "" {
		printInfo("No preset selected")
		return nil
	}
	printSuccess("Selected %s", StyleHighlight.Render(model.selected))
	printNextStep("Generate with it", "housebox generate --preset "+model.selected)
	return nil
}
