package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/framesec/internal/profile"
)

// Breakpoint is one station of a tapered member
type Breakpoint struct {
	Position float64 // relative, 0..1
	Depth    float64
	Width    float64
	Shape    string
}

// ElevationData holds data for drawing a tapered section along its length
type ElevationData struct {
	Name        string
	Material    string
	Length      float64 // member length used for the horizontal axis
	Breakpoints []Breakpoint
}

// FromTapered extracts elevation data from a tapered profile. length
// scales the relative positions; 1 keeps them relative.
func FromTapered(name, material string, t profile.Tapered, length float64) ElevationData {
	data := ElevationData{Name: name, Material: material, Length: length}
	for i, p := range t.Profiles {
		if i >= len(t.Positions) {
			break
		}
		data.Breakpoints = append(data.Breakpoints, Breakpoint{
			Position: t.Positions[i],
			Depth:    profile.Depth(p),
			Width:    profile.Width(p),
			Shape:    profile.ShapeOf(p).String(),
		})
	}
	return data
}

// MaxDepth returns the largest breakpoint depth
func (d ElevationData) MaxDepth() float64 {
	var m float64
	for _, b := range d.Breakpoints {
		m = math.Max(m, b.Depth)
	}
	return m
}

// DrawASCIIElevation creates an ASCII elevation of a tapered member. Each
// column is one step along the member; the filled height follows the
// linearly interpolated depth, symmetric about the member axis.
func DrawASCIIElevation(data ElevationData) string {
	var sb strings.Builder

	const columns = 60
	const halfRows = 6

	maxDepth := data.MaxDepth()
	if maxDepth <= 0 || len(data.Breakpoints) < 2 {
		return "  (no geometric breakpoints to draw)\n"
	}

	depths := make([]float64, columns)
	for c := range depths {
		depths[c] = data.DepthAt(float64(c) / float64(columns-1))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  TAPERED ELEVATION: %s\n", data.Name))
	sb.WriteString("  ──────────────────\n")

	for row := halfRows; row >= -halfRows; row-- {
		sb.WriteString("  ")
		for c := 0; c < columns; c++ {
			half := depths[c] / maxDepth * float64(halfRows)
			switch {
			case row == 0:
				sb.WriteString("─")
			case math.Abs(float64(row)) <= half:
				sb.WriteString("█")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	marks := []rune(strings.Repeat(" ", columns))
	for _, b := range data.Breakpoints {
		col := int(math.Round(b.Position * float64(columns-1)))
		marks[col] = '^'
	}
	sb.WriteString("  " + string(marks) + "\n")

	for i, b := range data.Breakpoints {
		sb.WriteString(fmt.Sprintf("  %d  x = %.4f  depth = %.1f  width = %.1f  (%s)\n",
			i+1, b.Position*data.scale(), b.Depth, b.Width, b.Shape))
	}
	return sb.String()
}

// DepthAt interpolates the depth linearly at relative position x
func (d ElevationData) DepthAt(x float64) float64 {
	bps := d.Breakpoints
	if len(bps) == 0 {
		return 0
	}
	if x <= bps[0].Position {
		return bps[0].Depth
	}
	for i := 1; i < len(bps); i++ {
		if x <= bps[i].Position {
			span := bps[i].Position - bps[i-1].Position
			if span <= 0 {
				return bps[i].Depth
			}
			t := (x - bps[i-1].Position) / span
			return bps[i-1].Depth + t*(bps[i].Depth-bps[i-1].Depth)
		}
	}
	return bps[len(bps)-1].Depth
}

func (d ElevationData) scale() float64 {
	if d.Length > 0 {
		return d.Length
	}
	return 1
}
