package floors

import (
	"math"
	"testing"

	"github.com/matzehuels/housebox/pkg/errors"
)

func TestDivide(t *testing.T) {
	tests := []struct {
		name       string
		height     float64
		wantCount  int
		wantAttic  bool
		wantGround float64
		wantAtticH float64
	}{
		{"single short floor", 50, 1, false, 50, 0},
		{"exact single", 80, 1, false, 80, 0},
		{"small leftover merges down", 90, 1, false, 90, 0},
		{"leftover exactly at threshold becomes attic", 100, 1, true, 80, 20},
		{"leftover above threshold becomes attic", 110, 1, true, 80, 30},
		{"exact triple", 240, 3, false, 80, 0},
		{"triple with merged leftover", 250, 3, false, 90, 0},
		{"triple with attic", 260, 3, true, 80, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Divide(tt.height, DefaultNominalHeight)
			if err != nil {
				t.Fatalf("Divide: %v", err)
			}
			if plan.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", plan.Count, tt.wantCount)
			}
			if plan.Attic != tt.wantAttic {
				t.Errorf("Attic = %v, want %v", plan.Attic, tt.wantAttic)
			}
			if len(plan.Heights) != tt.wantCount {
				t.Fatalf("len(Heights) = %d, want %d", len(plan.Heights), tt.wantCount)
			}
			if math.Abs(plan.Heights[0]-tt.wantGround) > 1e-9 {
				t.Errorf("ground floor = %.2f, want %.2f", plan.Heights[0], tt.wantGround)
			}
			if math.Abs(plan.AtticHeight-tt.wantAtticH) > 1e-9 {
				t.Errorf("AtticHeight = %.2f, want %.2f", plan.AtticHeight, tt.wantAtticH)
			}
			if math.Abs(plan.TotalHeight()-tt.height) > 1e-9 {
				t.Errorf("TotalHeight = %.2f, want %.2f", plan.TotalHeight(), tt.height)
			}
		})
	}
}

func TestDivideUpperFloorsStayNominal(t *testing.T) {
	// Leftover always merges into the ground floor, never the upper ones.
	plan, err := Divide(250, DefaultNominalHeight)
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	for i, h := range plan.Heights[1:] {
		if math.Abs(h-DefaultNominalHeight) > 1e-9 {
			t.Errorf("floor %d = %.2f, want %.2f", i+1, h, DefaultNominalHeight)
		}
	}
}

func TestDivideRejections(t *testing.T) {
	if _, err := Divide(0, 80); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("zero height: got %v", err)
	}
	if _, err := Divide(100, -1); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("negative nominal: got %v", err)
	}
}
