package profile

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/framesec/internal/native"
)

// Shape enumerates the canonical profile kinds. ShapeExplicit stands for
// "no shape": the section is described by aggregate properties only.
type Shape int

const (
	ShapeExplicit Shape = iota
	ShapeI
	ShapeFabricatedI
	ShapeChannel
	ShapeAngle
	ShapeT
	ShapeBox
	ShapeFabricatedBox
	ShapeTube
	ShapeRectangle
	ShapeCircle
	ShapeTapered
	ShapeZ
	ShapeFreeForm
)

var shapeNames = [...]string{
	ShapeExplicit:      "explicit",
	ShapeI:             "i",
	ShapeFabricatedI:   "fabricated_i",
	ShapeChannel:       "channel",
	ShapeAngle:         "angle",
	ShapeT:             "t",
	ShapeBox:           "box",
	ShapeFabricatedBox: "fabricated_box",
	ShapeTube:          "tube",
	ShapeRectangle:     "rectangle",
	ShapeCircle:        "circle",
	ShapeTapered:       "tapered",
	ShapeZ:             "z",
	ShapeFreeForm:      "free_form",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape accepts the names produced by Shape.String, case-insensitively.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown profile shape %q", name)
}

// ShapeOf returns the shape of p, ShapeExplicit for nil.
func ShapeOf(p Profile) Shape {
	if p == nil {
		return ShapeExplicit
	}
	return p.Shape()
}

// Family groups materials by the native constructors they select.
type Family int

const (
	FamilyOther Family = iota
	FamilySteel
	FamilyAluminium
	FamilyConcrete
	FamilyTimber
)

var familyNames = [...]string{
	FamilyOther:     "other",
	FamilySteel:     "steel",
	FamilyAluminium: "aluminium",
	FamilyConcrete:  "concrete",
	FamilyTimber:    "timber",
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// ParseFamily maps a family name to its value. "aluminum" is accepted.
// Unknown names map to FamilyOther.
func ParseFamily(name string) Family {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "aluminum" {
		return FamilyAluminium
	}
	for i, f := range familyNames {
		if f == n {
			return Family(i)
		}
	}
	return FamilyOther
}

// Metal reports whether the family uses the steel constructors.
func (f Family) Metal() bool {
	return f == FamilySteel || f == FamilyAluminium
}

// Support classifies how the read side treats a native frame type.
type Support int

const (
	// Unsupported types have no canonical counterpart and fall back to
	// aggregate properties.
	Unsupported Support = iota
	// Decodable types map onto a canonical profile.
	Decodable
	// Explicit types already hold aggregate properties.
	Explicit
	// Deferred types reference other sections and go to the backlog.
	Deferred
)

func (s Support) String() string {
	switch s {
	case Decodable:
		return "decodable"
	case Explicit:
		return "explicit"
	case Deferred:
		return "deferred"
	}
	return "unsupported"
}

// CanonicalFor returns the canonical shape a native type decodes to. The
// shape is the symmetric variant; the codec may refine it to the
// fabricated one.
func CanonicalFor(t native.FrameType) (Shape, Support) {
	switch t {
	case native.I:
		return ShapeI, Decodable
	case native.Channel:
		return ShapeChannel, Decodable
	case native.T, native.ConcreteTee:
		return ShapeT, Decodable
	case native.Angle, native.ConcreteL:
		return ShapeAngle, Decodable
	case native.Box, native.ConcreteBox:
		return ShapeBox, Decodable
	case native.Pipe, native.ConcretePipe:
		return ShapeTube, Decodable
	case native.Rectangular, native.SteelPlate:
		return ShapeRectangle, Decodable
	case native.Circle, native.SteelRod:
		return ShapeCircle, Decodable
	case native.General:
		return ShapeExplicit, Explicit
	case native.Variable:
		return ShapeTapered, Deferred
	case native.DblAngle, native.DbChannel, native.Auto, native.SD,
		native.Joist, native.Bridge,
		native.ColdC, native.Cold2C, native.ColdZ, native.ColdL, native.Cold2L, native.ColdHat,
		native.BuiltupICoverplate, native.BuiltupIHybrid, native.BuiltupUHybrid,
		native.PCCGirderI, native.PCCGirderU,
		native.FilledTube, native.FilledPipe, native.EncasedRectangle, native.EncasedCircle,
		native.BucklingRestrainedBrace, native.CoreBraceBRB, native.ConcreteCross:
		return ShapeExplicit, Unsupported
	}
	return ShapeExplicit, Unsupported
}

// NativeFor returns the native type a canonical shape is written as for a
// material family. ok is false when the shape has no native counterpart.
func NativeFor(s Shape, f Family) (t native.FrameType, ok bool) {
	switch s {
	case ShapeI, ShapeFabricatedI:
		return native.I, true
	case ShapeChannel:
		return native.Channel, true
	case ShapeAngle:
		if f == FamilyConcrete {
			return native.ConcreteL, true
		}
		return native.Angle, true
	case ShapeT:
		if f == FamilyConcrete {
			return native.ConcreteTee, true
		}
		return native.T, true
	case ShapeBox, ShapeFabricatedBox:
		return native.Box, true
	case ShapeTube:
		return native.Pipe, true
	case ShapeRectangle:
		return native.Rectangular, true
	case ShapeCircle:
		return native.Circle, true
	case ShapeTapered:
		return native.Variable, true
	case ShapeExplicit:
		return native.General, true
	case ShapeZ, ShapeFreeForm:
		return 0, false
	}
	return 0, false
}
