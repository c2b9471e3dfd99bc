package codec

import (
	"fmt"

	"github.com/alexiusacademia/framesec/internal/diag"
	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/profile"
	"github.com/alexiusacademia/framesec/internal/section"
)

// Encode converts a section's profile into the native parameter tuple to
// write. The material family picks among the angle and tee constructors:
// metals get the steel variants (root radius and mirror flags), concrete
// gets the concrete variants (mirror flags), anything else the generic
// constructor. A mirror flag the chosen constructor cannot express is
// reported as FlipUnsupported and the shape is written unflipped.
func Encode(sec section.Section, sink diag.Sink) (native.Shape, error) {
	family := sec.Material.Family

	switch p := sec.Profile.(type) {
	case profile.ISection:
		return native.ISection{
			T3:  p.Height,
			T2:  p.Width,
			Tf:  p.FlangeThickness,
			Tw:  p.WebThickness,
			T2b: p.Width,
			Tfb: p.FlangeThickness,
		}, nil

	case profile.FabricatedISection:
		return native.ISection{
			T3:  p.Height,
			T2:  p.TopFlangeWidth,
			Tf:  p.TopFlangeThickness,
			Tw:  p.WebThickness,
			T2b: p.BotFlangeWidth,
			Tfb: p.BotFlangeThickness,
		}, nil

	case profile.Channel:
		if p.MirrorAboutLocalZ {
			flipUnsupported(sink, sec.Name, "channel", "local z")
		}
		return native.ChannelSection{T3: p.Height, T2: p.FlangeWidth, Tf: p.FlangeThickness, Tw: p.WebThickness}, nil

	case profile.Angle:
		switch {
		case family.Metal():
			return native.SteelAngleSection{
				T3:           p.Height,
				T2:           p.Width,
				Tf:           p.FlangeThickness,
				Tw:           p.WebThickness,
				R:            p.RootRadius,
				MirrorAbout2: p.MirrorAboutLocalZ,
				MirrorAbout3: p.MirrorAboutLocalY,
			}, nil
		case family == profile.FamilyConcrete:
			return native.ConcreteLSection{
				T3:           p.Height,
				T2:           p.Width,
				Tf:           p.FlangeThickness,
				Tw:           p.WebThickness,
				TwC:          p.WebThickness,
				MirrorAbout2: p.MirrorAboutLocalZ,
				MirrorAbout3: p.MirrorAboutLocalY,
			}, nil
		}
		if p.MirrorAboutLocalY {
			flipUnsupported(sink, sec.Name, "angle", "local y")
		}
		if p.MirrorAboutLocalZ {
			flipUnsupported(sink, sec.Name, "angle", "local z")
		}
		return native.AngleSection{T3: p.Height, T2: p.Width, Tf: p.FlangeThickness, Tw: p.WebThickness}, nil

	case profile.TSection:
		switch {
		case family.Metal():
			return native.SteelTeeSection{
				T3:           p.Height,
				T2:           p.Width,
				Tf:           p.FlangeThickness,
				Tw:           p.WebThickness,
				R:            p.RootRadius,
				MirrorAbout3: p.MirrorAboutLocalY,
			}, nil
		case family == profile.FamilyConcrete:
			return native.ConcreteTeeSection{
				T3:           p.Height,
				T2:           p.Width,
				Tf:           p.FlangeThickness,
				Tw:           p.WebThickness,
				TwF:          p.WebThickness,
				MirrorAbout3: p.MirrorAboutLocalY,
			}, nil
		}
		if p.MirrorAboutLocalY {
			flipUnsupported(sink, sec.Name, "tee", "local y")
		}
		return native.TeeSection{T3: p.Height, T2: p.Width, Tf: p.FlangeThickness, Tw: p.WebThickness}, nil

	case profile.Box:
		return native.BoxSection{T3: p.Height, T2: p.Width, Tf: p.Thickness, Tw: p.Thickness}, nil

	case profile.FabricatedBox:
		if p.TopFlangeThickness != p.BotFlangeThickness {
			diag.Warnf(sink, diag.Approximate, sec.Name,
				"box flanges differ (top %g, bottom %g), written with the top flange thickness",
				p.TopFlangeThickness, p.BotFlangeThickness)
		}
		return native.BoxSection{T3: p.Height, T2: p.Width, Tf: p.TopFlangeThickness, Tw: p.WebThickness}, nil

	case profile.Tube:
		return native.PipeSection{T3: p.Diameter, Tw: p.Thickness}, nil

	case profile.Rectangle:
		return native.RectangleSection{T3: p.Height, T2: p.Width}, nil

	case profile.Circle:
		return native.CircleSection{T3: p.Diameter}, nil

	case profile.Tapered:
		return nil, fmt.Errorf("encode %q: %w", sec.Name, ErrTapered)

	case profile.ZSection, profile.FreeForm, nil:
		diag.Warnf(sink, diag.Unsupported, sec.Name,
			"%s profile has no native counterpart, writing explicit properties", profile.ShapeOf(p))
		return nil, fmt.Errorf("encode %q (%s): %w", sec.Name, profile.ShapeOf(p), ErrUnsupported)
	}
	return nil, fmt.Errorf("encode %q: no encoder for %T", sec.Name, sec.Profile)
}

func flipUnsupported(sink diag.Sink, name, shape, axis string) {
	diag.Warnf(sink, diag.FlipUnsupported, name,
		"%s mirrored about %s cannot be represented by the generic constructor, written unflipped", shape, axis)
}
