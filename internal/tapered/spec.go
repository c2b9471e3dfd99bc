// Package tapered translates non-prismatic (tapered) sections between the
// canonical breakpoint form and the native segment list, resolving the
// named sub-sections each segment refers to.
package tapered

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/framesec/internal/native"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNonRelativeLength is returned when a segment length is absolute.
	ErrNonRelativeLength = errors.New("segment length is not relative")

	// ErrBadLengths is returned for negative, zero or non-finite lengths.
	ErrBadLengths = errors.New("segment lengths must be positive")
)

// DefaultTolerance separates the two breakpoints inserted at a
// discontinuity.
const DefaultTolerance = 1e-6

// Spec is the resolved breakpoint layout of a tapered section.
// SubSections[i] governs Positions[i]; InterpolationOrder[i] applies to the
// interval starting at Positions[i].
type Spec struct {
	Positions          []float64
	SubSections        []string
	InterpolationOrder []int
}

// Normalize turns segment lengths into cumulative relative positions:
// n lengths give n+1 positions from 0 to 1.
func Normalize(lengths []float64) ([]float64, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("no segments: %w", ErrBadLengths)
	}
	for i, l := range lengths {
		if !(l > 0) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("segment %d length %g: %w", i+1, l, ErrBadLengths)
		}
	}

	cum := make([]float64, len(lengths))
	floats.CumSum(cum, lengths)
	total := cum[len(cum)-1]

	positions := make([]float64, len(lengths)+1)
	for i, c := range cum {
		positions[i+1] = c / total
	}
	positions[len(positions)-1] = 1
	return positions, nil
}

// References lists the distinct sub-section names of segs in first-use
// order.
func References(segs []native.Segment) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range segs {
		for _, n := range []string{s.StartSection, s.EndSection} {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

// Build lays out the breakpoints of a segment list. The first breakpoint
// is the first segment's start section, followed by every segment's end
// section. Where a segment ends on a different section than the next one
// starts, an extra breakpoint carrying the next start section is placed
// tolerance after the shared position.
func Build(segs []native.Segment, tolerance float64) (Spec, error) {
	if len(segs) == 0 {
		return Spec{}, fmt.Errorf("no segments: %w", ErrBadLengths)
	}
	lengths := make([]float64, len(segs))
	for i, s := range segs {
		if s.LengthType != native.Relative {
			return Spec{}, fmt.Errorf("segment %d is %s: %w", i+1, s.LengthType, ErrNonRelativeLength)
		}
		lengths[i] = s.Length
	}
	positions, err := Normalize(lengths)
	if err != nil {
		return Spec{}, err
	}

	spec := Spec{
		Positions:   []float64{0},
		SubSections: []string{segs[0].StartSection},
	}
	for i, s := range segs {
		if i > 0 && segs[i-1].EndSection != s.StartSection {
			at := positions[i] + tolerance
			if at >= positions[i+1] {
				return Spec{}, fmt.Errorf("segment %d is shorter than the discontinuity tolerance %g: %w", i+1, tolerance, ErrBadLengths)
			}
			spec.Positions = append(spec.Positions, at)
			spec.SubSections = append(spec.SubSections, s.StartSection)
		}
		spec.Positions = append(spec.Positions, positions[i+1])
		spec.SubSections = append(spec.SubSections, s.EndSection)
	}

	spec.InterpolationOrder = make([]int, len(spec.Positions)-1)
	for i := range spec.InterpolationOrder {
		spec.InterpolationOrder[i] = 1
	}
	return spec, nil
}
