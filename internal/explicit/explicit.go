// Package explicit maps aggregate section properties to and from the
// native General section record.
package explicit

import (
	"math"

	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/section"
)

// ToAggregate reads native aggregate properties. Native axes are named
// 2 (minor) and 3 (major); canonical axes are z (minor) and y (major), so
// every 2/3 pair is swapped on the way in.
func ToAggregate(g native.GeneralProps) section.ExplicitProperties {
	return section.ExplicitProperties{
		Area: g.Area,
		Asy:  g.As2,
		Asz:  g.As3,
		J:    g.Torsion,
		Iy:   g.I33,
		Iz:   g.I22,
		Wely: g.S33,
		Welz: g.S22,
		Wply: g.Z33,
		Wplz: g.Z22,
		Rgy:  g.R33,
		Rgz:  g.R22,
	}
}

// FromAggregate builds the native General record. The record's nominal
// depth and width are those of the rectangle with the same area and
// second moments; both are zero when the area is zero.
func FromAggregate(p section.ExplicitProperties) native.GeneralSection {
	g := native.GeneralSection{
		Props: native.GeneralProps{
			Area:    p.Area,
			As2:     p.Asy,
			As3:     p.Asz,
			Torsion: p.J,
			I22:     p.Iz,
			I33:     p.Iy,
			S22:     p.Welz,
			S33:     p.Wely,
			Z22:     p.Wplz,
			Z33:     p.Wply,
			R22:     p.Rgz,
			R33:     p.Rgy,
		},
	}
	if p.Area > 0 {
		g.T3 = math.Sqrt(12 * math.Max(p.Iy, 0) / p.Area)
		g.T2 = math.Sqrt(12 * math.Max(p.Iz, 0) / p.Area)
	}
	return g
}

// Zero is the fallback used when nothing better is known.
func Zero() *section.ExplicitProperties {
	return &section.ExplicitProperties{}
}
