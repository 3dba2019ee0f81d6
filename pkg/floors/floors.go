// Package floors divides a wall height into storeys. This is threshold
// arithmetic layered next to the geometry: the panel dimensions never
// depend on the floor count, only interior fittings and decorative story
// lines consume the division.
package floors

import (
	"math"

	"github.com/matzehuels/housebox/pkg/errors"
)

// DefaultNominalHeight is the interior height of one standard storey in mm.
// A 240mm wall divides into three of these.
const DefaultNominalHeight = 80.0

// atticRatio is the fraction of the nominal height the leftover must reach
// to become an attic storey instead of merging into the ground floor.
const atticRatio = 0.25

// Plan is the storey division of one wall height.
type Plan struct {
	Count   int       // full storeys, at least 1
	Heights []float64 // per-storey interior heights, ground floor first
	Attic   bool      // leftover spun into a separate attic storey
	// AtticHeight is the attic's interior height; zero when Attic is false.
	AtticHeight float64
}

// TotalHeight returns the sum of all storey heights including the attic.
func (p Plan) TotalHeight() float64 {
	var total float64
	for _, h := range p.Heights {
		total += h
	}
	return total + p.AtticHeight
}

// Divide splits totalHeight into storeys of the given nominal height.
//
// The count is max(1, ⌊totalHeight/nominal⌋). Leftover height of at least
// 25% of the nominal becomes an attic storey; anything less merges into
// the ground floor. A leftover of exactly 25% counts as an attic: the
// comparison is ≥, so the boundary case always resolves the same way.
func Divide(totalHeight, nominal float64) (Plan, error) {
	if totalHeight <= 0 {
		return Plan{}, errors.New(errors.ErrCodeInvalidDimension,
			"wall height must be positive, got %.2f", totalHeight)
	}
	if nominal <= 0 {
		return Plan{}, errors.New(errors.ErrCodeInvalidDimension,
			"nominal floor height must be positive, got %.2f", nominal)
	}

	count := int(math.Floor(totalHeight / nominal))
	if count < 1 {
		return Plan{Count: 1, Heights: []float64{totalHeight}}, nil
	}

	plan := Plan{Count: count}
	for i := 0; i < count; i++ {
		plan.Heights = append(plan.Heights, nominal)
	}
	leftover := totalHeight - float64(count)*nominal
	switch {
	case leftover >= atticRatio*nominal:
		plan.Attic = true
		plan.AtticHeight = leftover
	case leftover > 0:
		plan.Heights[0] += leftover
	}
	return plan, nil
}
