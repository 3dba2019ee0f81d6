package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/housebox/pkg/config"
	"github.com/matzehuels/housebox/pkg/pipeline"
)

func TestLoggerContextRoundTrip(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, charmlog.DebugLevel)
	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("logger not recovered from context")
	}
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("missing logger should fall back to the default")
	}
}

func TestJobFlagOverrides(t *testing.T) {
	var jf jobFlags
	cmd := &cobra.Command{Use: "test"}
	jf.register(cmd)

	for flag, value := range map[string]string{
		"length":  "120",
		"angle":   "30",
		"preset":  "tudor",
		"rotated": "true",
	} {
		if err := cmd.Flags().Set(flag, value); err != nil {
			t.Fatalf("setting --%s: %v", flag, err)
		}
	}

	job, err := jf.job(cmd.Flags())
	if err != nil {
		t.Fatalf("job: %v", err)
	}
	if job.House.Length != 120 || job.House.GableAngle != 30 {
		t.Errorf("house = %+v", job.House)
	}
	if job.House.Width != config.Default().House.Width {
		t.Errorf("untouched width = %.1f, want default", job.House.Width)
	}
	if job.Components.Preset != "tudor" || !job.Material.Rotated {
		t.Errorf("preset = %q, rotated = %v", job.Components.Preset, job.Material.Rotated)
	}
}

func TestSummaryTables(t *testing.T) {
	res, err := pipeline.Plan(context.Background(), config.Default())
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	summary := summaryTable(res)
	for _, want := range []string{"Panels", "Sheets", "Cut length", res.JobID[:8]} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary table missing %q", want)
		}
	}
	panels := panelsTable(res.Layout)
	for _, want := range []string{"floor", "roof_panel_left", "gable_wall_front"} {
		if !strings.Contains(panels, want) {
			t.Errorf("panels table missing %q", want)
		}
	}
}

func TestPresetsTableListsAll(t *testing.T) {
	out := presetsTable()
	for _, want := range []string{"basic", "tudor", "victorian", "gingerbread"} {
		if !strings.Contains(out, want) {
			t.Errorf("presets table missing %q", want)
		}
	}
}

func TestPresetPickerModel(t *testing.T) {
	m := newPresetListModel()
	if len(m.names) == 0 {
		t.Fatal("picker has no presets")
	}

	down := tea.KeyMsg{Type: tea.KeyDown}
	next, _ := m.Update(down)
	m = next.(presetListModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	next, _ = m.Update(enter)
	m = next.(presetListModel)
	if m.selected != m.names[1] {
		t.Errorf("selected = %q, want %q", m.selected, m.names[1])
	}

	if !strings.Contains(m.View(), m.names[0]) {
		t.Error("view missing the first preset")
	}
}
