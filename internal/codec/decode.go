// Package codec converts between canonical profiles and native frame
// property parameter tuples.
package codec

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/framesec/internal/diag"
	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/profile"
)

var (
	// ErrUnsupported marks a recognised shape with no counterpart on the
	// other side. Callers fall back to explicit properties.
	ErrUnsupported = errors.New("shape has no counterpart")

	// ErrTapered is returned by Encode for tapered profiles, which are
	// expanded by the tapered resolver instead.
	ErrTapered = errors.New("tapered profiles need expansion")
)

// Decode converts the native parameters of section name into a canonical
// profile. Native types with no canonical counterpart return
// ErrUnsupported after recording a note.
//
// Degenerate cases:
//   - I: equal flange widths and thicknesses give an ISection, anything
//     else a FabricatedISection.
//   - Box: equal flange and web thickness gives a Box, otherwise a
//     FabricatedBox with equal top and bottom flanges.
func Decode(name string, t native.FrameType, params native.Shape, sink diag.Sink) (profile.Profile, error) {
	_, support := profile.CanonicalFor(t)
	switch support {
	case profile.Unsupported:
		diag.Notef(sink, diag.Unsupported, name, "native type %s has no canonical profile, reading explicit properties", t)
		return nil, fmt.Errorf("decode %q (%s): %w", name, t, ErrUnsupported)
	case profile.Explicit, profile.Deferred:
		return nil, fmt.Errorf("decode %q: %s sections carry no shape parameters", name, t)
	}
	if params == nil || params.FrameType() != t {
		return nil, fmt.Errorf("decode %q: parameters %T do not match type %s", name, params, t)
	}

	switch p := params.(type) {
	case native.ISection:
		if p.T2 == p.T2b && p.Tf == p.Tfb {
			return profile.ISection{
				Height:          p.T3,
				Width:           p.T2,
				WebThickness:    p.Tw,
				FlangeThickness: p.Tf,
			}, nil
		}
		return profile.FabricatedISection{
			Height:             p.T3,
			WebThickness:       p.Tw,
			TopFlangeWidth:     p.T2,
			TopFlangeThickness: p.Tf,
			BotFlangeWidth:     p.T2b,
			BotFlangeThickness: p.Tfb,
		}, nil

	case native.ChannelSection:
		return profile.Channel{
			Height:          p.T3,
			FlangeWidth:     p.T2,
			WebThickness:    p.Tw,
			FlangeThickness: p.Tf,
		}, nil

	case native.TeeSection:
		return profile.TSection{Height: p.T3, Width: p.T2, WebThickness: p.Tw, FlangeThickness: p.Tf}, nil
	case native.SteelTeeSection:
		return profile.TSection{
			Height:            p.T3,
			Width:             p.T2,
			WebThickness:      p.Tw,
			FlangeThickness:   p.Tf,
			RootRadius:        p.R,
			MirrorAboutLocalY: p.MirrorAbout3,
		}, nil
	case native.ConcreteTeeSection:
		return profile.TSection{
			Height:            p.T3,
			Width:             p.T2,
			WebThickness:      p.Tw,
			FlangeThickness:   p.Tf,
			MirrorAboutLocalY: p.MirrorAbout3,
		}, nil

	case native.AngleSection:
		return profile.Angle{Height: p.T3, Width: p.T2, WebThickness: p.Tw, FlangeThickness: p.Tf}, nil
	case native.SteelAngleSection:
		return profile.Angle{
			Height:            p.T3,
			Width:             p.T2,
			WebThickness:      p.Tw,
			FlangeThickness:   p.Tf,
			RootRadius:        p.R,
			MirrorAboutLocalY: p.MirrorAbout3,
			MirrorAboutLocalZ: p.MirrorAbout2,
		}, nil
	case native.ConcreteLSection:
		return profile.Angle{
			Height:            p.T3,
			Width:             p.T2,
			WebThickness:      p.Tw,
			FlangeThickness:   p.Tf,
			MirrorAboutLocalY: p.MirrorAbout3,
			MirrorAboutLocalZ: p.MirrorAbout2,
		}, nil

	case native.BoxSection:
		return decodeBox(name, p.T3, p.T2, p.Tf, p.Tw, sink), nil
	case native.ConcreteBoxSection:
		return decodeBox(name, p.T3, p.T2, p.Tf, p.Tw, sink), nil

	case native.PipeSection:
		return profile.Tube{Diameter: p.T3, Thickness: p.Tw}, nil
	case native.ConcretePipeSection:
		return profile.Tube{Diameter: p.T3, Thickness: p.Tw}, nil

	case native.RectangleSection:
		return profile.Rectangle{Height: p.T3, Width: p.T2}, nil
	case native.PlateSection:
		return profile.Rectangle{Height: p.T3, Width: p.T2}, nil

	case native.CircleSection:
		return profile.Circle{Diameter: p.T3}, nil
	case native.RodSection:
		return profile.Circle{Diameter: p.T3}, nil
	}
	return nil, fmt.Errorf("decode %q: no decoder for %T", name, params)
}

func decodeBox(name string, t3, t2, tf, tw float64, sink diag.Sink) profile.Profile {
	if tf == tw {
		return profile.Box{Height: t3, Width: t2, Thickness: tf}
	}
	diag.Notef(sink, diag.Approximate, name,
		"flange thickness %g differs from web thickness %g, read as a fabricated box with equal flanges", tf, tw)
	return profile.FabricatedBox{
		Height:             t3,
		Width:              t2,
		WebThickness:       tw,
		TopFlangeThickness: tf,
		BotFlangeThickness: tf,
	}
}
