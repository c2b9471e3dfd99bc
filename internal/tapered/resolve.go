package tapered

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/framesec/internal/diag"
	"github.com/alexiusacademia/framesec/internal/explicit"
	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/profile"
	"github.com/alexiusacademia/framesec/internal/section"
)

// Lookup finds an already resolved section by name.
type Lookup func(name string) (section.Section, bool)

// Outcome of a resolution attempt.
type Outcome int

const (
	// Pending means a referenced sub-section is not resolved yet.
	Pending Outcome = iota
	// Resolved means the section was built, possibly as an explicit
	// fallback.
	Resolved
	// Rejected means the segment data cannot describe a tapered profile
	// and the caller must fall back to other means.
	Rejected
)

// Resolver builds canonical tapered sections from native segment lists.
// One Resolver serves one read; it is not safe for concurrent use.
type Resolver struct {
	Tolerance float64
	Sink      diag.Sink

	linearNoted bool
}

// NewResolver returns a resolver using tolerance for discontinuities.
func NewResolver(tolerance float64, sink diag.Sink) *Resolver {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Resolver{Tolerance: tolerance, Sink: sink}
}

// Attempt tries to resolve the Variable section name from its segments.
// Until every referenced sub-section is available through lookup the
// outcome is Pending. A Rejected outcome carries the reason as error.
func (r *Resolver) Attempt(name string, segs []native.Segment, lookup Lookup) (section.Section, Outcome, error) {
	for _, ref := range References(segs) {
		if _, ok := lookup(ref); !ok {
			return section.Section{}, Pending, nil
		}
	}

	spec, err := Build(segs, r.Tolerance)
	if err != nil {
		if errors.Is(err, ErrNonRelativeLength) {
			diag.Warnf(r.Sink, diag.NonRelativeLength, name, "%v, tapered profile not read", err)
		} else {
			diag.Warnf(r.Sink, diag.Invalid, name, "%v, tapered profile not read", err)
		}
		return section.Section{}, Rejected, err
	}

	subs := make([]section.Section, len(spec.SubSections))
	for i, ref := range spec.SubSections {
		subs[i], _ = lookup(ref)
	}

	out := section.Section{
		Name:     name,
		Material: AgreedMaterial(name, subs, r.Sink),
	}

	for i, sub := range subs {
		if !profile.Geometric(sub.Profile) {
			diag.Warnf(r.Sink, diag.UngeometricSubProfile, name,
				"sub-section %q at position %g has no geometric profile, reading the taper as explicit zero properties",
				sub.Name, spec.Positions[i])
			out.Properties = explicit.Zero()
			return out, Resolved, nil
		}
	}

	r.noteLinear(name, segs)

	t := profile.Tapered{
		Positions:          spec.Positions,
		Profiles:           make([]profile.Profile, len(subs)),
		InterpolationOrder: spec.InterpolationOrder,
	}
	for i, sub := range subs {
		t.Profiles[i] = sub.Profile
	}
	out.Profile = t
	return out, Resolved, nil
}

func (r *Resolver) noteLinear(name string, segs []native.Segment) {
	for i, s := range segs {
		if s.EI33 > 1 || s.EI22 > 1 {
			diag.Notef(r.Sink, diag.LinearOnly, name,
				"segment %d varies with order %d/%d, read as linear", i+1, s.EI33, s.EI22)
		}
	}
	if r.linearNoted {
		return
	}
	r.linearNoted = true
	diag.Notef(r.Sink, diag.LinearOnly, name, "tapered profiles are read with linear variation between breakpoints")
}

// AgreedMaterial returns the material shared by every sub-section. On the
// first disagreement it records AmbiguousMaterial and returns an empty
// reference.
func AgreedMaterial(name string, subs []section.Section, sink diag.Sink) section.MaterialRef {
	if len(subs) == 0 {
		return section.MaterialRef{}
	}
	agreed := subs[0].Material
	for _, sub := range subs[1:] {
		if sub.Material.Name != agreed.Name {
			diag.Warnf(sink, diag.AmbiguousMaterial, name,
				"sub-sections use different materials (%q, %q), material left undetermined", agreed.Name, sub.Material.Name)
			return section.MaterialRef{}
		}
	}
	return agreed
}

// SubSectionName is the synthetic name of a tapered section's i-th
// breakpoint profile on write.
func SubSectionName(parent string, i int) string {
	return fmt.Sprintf("%s_SubSection%d", parent, i)
}

// Expand prepares the native write of a tapered section: one prismatic
// sub-section per breakpoint, sharing the parent's material, and the
// segment list joining consecutive sub-sections. Segment lengths are the
// relative interval lengths multiplied by scale.
func Expand(sec section.Section, scale float64, sink diag.Sink) ([]section.Section, []native.Segment, error) {
	t, ok := sec.Profile.(profile.Tapered)
	if !ok {
		return nil, nil, fmt.Errorf("expand %q: profile is %s, not tapered", sec.Name, profile.ShapeOf(sec.Profile))
	}
	if err := profile.Validate(t); err != nil {
		return nil, nil, fmt.Errorf("expand %q: %w", sec.Name, err)
	}
	if scale <= 0 {
		return nil, nil, fmt.Errorf("expand %q: length scale must be positive, got %g", sec.Name, scale)
	}

	subs := make([]section.Section, len(t.Profiles))
	for i, p := range t.Profiles {
		subs[i] = section.Section{
			Name:     SubSectionName(sec.Name, i),
			Material: sec.Material,
			Profile:  p,
		}
	}

	nonLinear := false
	segs := make([]native.Segment, len(t.Positions)-1)
	for i := range segs {
		if i < len(t.InterpolationOrder) && t.InterpolationOrder[i] != 1 {
			nonLinear = true
		}
		segs[i] = native.Segment{
			StartSection: subs[i].Name,
			EndSection:   subs[i+1].Name,
			Length:       (t.Positions[i+1] - t.Positions[i]) * scale,
			LengthType:   native.Relative,
			EI33:         1,
			EI22:         1,
		}
	}

	if nonLinear {
		diag.Warnf(sink, diag.LinearOnly, sec.Name, "non-linear interpolation is not supported natively, written as linear")
	} else {
		diag.Notef(sink, diag.LinearOnly, sec.Name, "tapered profile written with linear variation on both axes")
	}
	return subs, segs, nil
}
