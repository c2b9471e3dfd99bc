package profile

import (
	"fmt"
	"math"
)

// Depth returns the overall depth of a profile, 0 for nil.
// For a tapered profile this is the largest depth of its breakpoints.
func Depth(p Profile) float64 {
	switch v := p.(type) {
	case ISection:
		return v.Height
	case FabricatedISection:
		return v.Height
	case Channel:
		return v.Height
	case Angle:
		return v.Height
	case TSection:
		return v.Height
	case Box:
		return v.Height
	case FabricatedBox:
		return v.Height
	case Tube:
		return v.Diameter
	case Rectangle:
		return v.Height
	case Circle:
		return v.Diameter
	case ZSection:
		return v.Height
	case FreeForm:
		_, _, lo, hi := bounds(v.Perimeter)
		return hi - lo
	case Tapered:
		var d float64
		for _, sub := range v.Profiles {
			d = math.Max(d, Depth(sub))
		}
		return d
	}
	return 0
}

// Width returns the overall width of a profile, 0 for nil.
func Width(p Profile) float64 {
	switch v := p.(type) {
	case ISection:
		return v.Width
	case FabricatedISection:
		return math.Max(v.TopFlangeWidth, v.BotFlangeWidth)
	case Channel:
		return v.FlangeWidth
	case Angle:
		return v.Width
	case TSection:
		return v.Width
	case Box:
		return v.Width
	case FabricatedBox:
		return v.Width
	case Tube:
		return v.Diameter
	case Rectangle:
		return v.Width
	case Circle:
		return v.Diameter
	case ZSection:
		return 2*v.FlangeWidth - v.WebThickness
	case FreeForm:
		lo, hi, _, _ := bounds(v.Perimeter)
		return hi - lo
	case Tapered:
		var w float64
		for _, sub := range v.Profiles {
			w = math.Max(w, Width(sub))
		}
		return w
	}
	return 0
}

func bounds(pts []Point) (minY, maxY, minZ, maxZ float64) {
	if len(pts) == 0 {
		return 0, 0, 0, 0
	}
	minY, maxY = pts[0].Y, pts[0].Y
	minZ, maxZ = pts[0].Z, pts[0].Z
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
		minZ = math.Min(minZ, p.Z)
		maxZ = math.Max(maxZ, p.Z)
	}
	return minY, maxY, minZ, maxZ
}

// Geometric reports whether p is a single, geometrically defined profile
// that can serve as a tapered breakpoint.
func Geometric(p Profile) bool {
	switch p.(type) {
	case nil, Tapered:
		return false
	}
	return true
}

// Validate checks that every scalar of p is finite and non-negative and,
// for tapered profiles, that the breakpoint lists are consistent.
func Validate(p Profile) error {
	if t, ok := p.(Tapered); ok {
		return validateTapered(t)
	}
	for name, v := range scalars(p) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s profile: %s must be a non-negative number, got %g", ShapeOf(p), name, v)
		}
	}
	return nil
}

func validateTapered(t Tapered) error {
	n := len(t.Positions)
	if n < 2 {
		return fmt.Errorf("tapered profile needs at least two positions, got %d", n)
	}
	if len(t.Profiles) != n {
		return fmt.Errorf("tapered profile has %d positions but %d profiles", n, len(t.Profiles))
	}
	if len(t.InterpolationOrder) != 0 && len(t.InterpolationOrder) != n-1 {
		return fmt.Errorf("tapered profile has %d intervals but %d interpolation orders", n-1, len(t.InterpolationOrder))
	}
	if t.Positions[0] != 0 || t.Positions[n-1] != 1 {
		return fmt.Errorf("tapered positions must run from 0 to 1, got %g..%g", t.Positions[0], t.Positions[n-1])
	}
	for i := 1; i < n; i++ {
		if t.Positions[i] <= t.Positions[i-1] {
			return fmt.Errorf("tapered positions must be strictly increasing at index %d", i)
		}
	}
	for i, sub := range t.Profiles {
		if !Geometric(sub) {
			return fmt.Errorf("tapered breakpoint %d is not a geometric profile", i)
		}
		if err := Validate(sub); err != nil {
			return fmt.Errorf("tapered breakpoint %d: %w", i, err)
		}
	}
	return nil
}

func scalars(p Profile) map[string]float64 {
	switch v := p.(type) {
	case ISection:
		return map[string]float64{"height": v.Height, "width": v.Width, "web thickness": v.WebThickness,
			"flange thickness": v.FlangeThickness, "root radius": v.RootRadius, "toe radius": v.ToeRadius}
	case FabricatedISection:
		return map[string]float64{"height": v.Height, "web thickness": v.WebThickness,
			"top flange width": v.TopFlangeWidth, "top flange thickness": v.TopFlangeThickness,
			"bottom flange width": v.BotFlangeWidth, "bottom flange thickness": v.BotFlangeThickness, "weld size": v.WeldSize}
	case Channel:
		return map[string]float64{"height": v.Height, "flange width": v.FlangeWidth, "web thickness": v.WebThickness,
			"flange thickness": v.FlangeThickness, "root radius": v.RootRadius, "toe radius": v.ToeRadius}
	case Angle:
		return map[string]float64{"height": v.Height, "width": v.Width, "web thickness": v.WebThickness,
			"flange thickness": v.FlangeThickness, "root radius": v.RootRadius, "toe radius": v.ToeRadius}
	case TSection:
		return map[string]float64{"height": v.Height, "width": v.Width, "web thickness": v.WebThickness,
			"flange thickness": v.FlangeThickness, "root radius": v.RootRadius, "toe radius": v.ToeRadius}
	case Box:
		return map[string]float64{"height": v.Height, "width": v.Width, "thickness": v.Thickness,
			"outer radius": v.OuterRadius, "inner radius": v.InnerRadius}
	case FabricatedBox:
		return map[string]float64{"height": v.Height, "width": v.Width, "web thickness": v.WebThickness,
			"top flange thickness": v.TopFlangeThickness, "bottom flange thickness": v.BotFlangeThickness, "weld size": v.WeldSize}
	case Tube:
		return map[string]float64{"diameter": v.Diameter, "thickness": v.Thickness}
	case Rectangle:
		return map[string]float64{"height": v.Height, "width": v.Width, "corner radius": v.CornerRadius}
	case Circle:
		return map[string]float64{"diameter": v.Diameter}
	case ZSection:
		return map[string]float64{"height": v.Height, "flange width": v.FlangeWidth, "web thickness": v.WebThickness,
			"flange thickness": v.FlangeThickness, "root radius": v.RootRadius, "toe radius": v.ToeRadius}
	}
	return nil
}
