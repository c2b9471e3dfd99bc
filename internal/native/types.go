package native

import "fmt"

// FrameType is the native application's closed frame property type
// enumeration. Values match the vendor API's integer codes.
type FrameType int

const (
	I FrameType = iota + 1
	Channel
	T
	Angle
	DblAngle
	Box
	Pipe
	Rectangular
	Circle
	General
	DbChannel
	Auto
	SD
	Variable
	Joist
	Bridge
	ColdC
	Cold2C
	ColdZ
	ColdL
	Cold2L
	ColdHat
	BuiltupICoverplate
	PCCGirderI
	PCCGirderU
	BuiltupIHybrid
	BuiltupUHybrid
	ConcreteL
	FilledTube
	FilledPipe
	EncasedRectangle
	EncasedCircle
	BucklingRestrainedBrace
	CoreBraceBRB
	ConcreteTee
	ConcreteBox
	ConcretePipe
	ConcreteCross
	SteelPlate
	SteelRod
)

var frameTypeNames = [...]string{
	I:                       "I",
	Channel:                 "Channel",
	T:                       "T",
	Angle:                   "Angle",
	DblAngle:                "DblAngle",
	Box:                     "Box",
	Pipe:                    "Pipe",
	Rectangular:             "Rectangular",
	Circle:                  "Circle",
	General:                 "General",
	DbChannel:               "DbChannel",
	Auto:                    "Auto",
	SD:                      "SD",
	Variable:                "Variable",
	Joist:                   "Joist",
	Bridge:                  "Bridge",
	ColdC:                   "Cold_C",
	Cold2C:                  "Cold_2C",
	ColdZ:                   "Cold_Z",
	ColdL:                   "Cold_L",
	Cold2L:                  "Cold_2L",
	ColdHat:                 "Cold_Hat",
	BuiltupICoverplate:      "BuiltupICoverplate",
	PCCGirderI:              "PCCGirderI",
	PCCGirderU:              "PCCGirderU",
	BuiltupIHybrid:          "BuiltupIHybrid",
	BuiltupUHybrid:          "BuiltupUHybrid",
	ConcreteL:               "Concrete_L",
	FilledTube:              "FilledTube",
	FilledPipe:              "FilledPipe",
	EncasedRectangle:        "EncasedRectangle",
	EncasedCircle:           "EncasedCircle",
	BucklingRestrainedBrace: "BucklingRestrainedBrace",
	CoreBraceBRB:            "CoreBrace_BRB",
	ConcreteTee:             "ConcreteTee",
	ConcreteBox:             "ConcreteBox",
	ConcretePipe:            "ConcretePipe",
	ConcreteCross:           "ConcreteCross",
	SteelPlate:              "SteelPlate",
	SteelRod:                "SteelRod",
}

// FrameTypes lists every known frame property type in code order.
func FrameTypes() []FrameType {
	out := make([]FrameType, 0, len(frameTypeNames)-1)
	for t := I; t <= SteelRod; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t is one of the enumerated codes.
func (t FrameType) Valid() bool {
	return t >= I && t <= SteelRod
}

func (t FrameType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("FrameType(%d)", int(t))
	}
	return frameTypeNames[t]
}

// ParseFrameType maps a vendor type name back to its code.
func ParseFrameType(s string) (FrameType, error) {
	for t := I; t <= SteelRod; t++ {
		if frameTypeNames[t] == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown frame type %q", s)
}

// LengthType tells how a non-prismatic segment length is measured.
type LengthType int

const (
	Relative LengthType = iota + 1
	Absolute
)

func (l LengthType) String() string {
	switch l {
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	}
	return fmt.Sprintf("LengthType(%d)", int(l))
}

// Segment is one entry of a non-prismatic (Variable) frame property.
type Segment struct {
	StartSection string
	EndSection   string
	Length       float64
	LengthType   LengthType
	EI33         int // variation order about the 3-axis, 1 = linear
	EI22         int // variation order about the 2-axis, 1 = linear
}

// GeneralProps are the aggregate properties of a General section, also
// returned by the computed-properties accessor for any section type.
// Axis naming follows the native local axes: 3 is major, 2 is minor.
type GeneralProps struct {
	Area    float64
	As2     float64
	As3     float64
	Torsion float64
	I22     float64
	I33     float64
	S22     float64
	S33     float64
	Z22     float64
	Z33     float64
	R22     float64
	R33     float64
}
