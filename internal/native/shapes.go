package native

// Shape is the fixed-arity parameter tuple the native API returns for one
// frame property type. T3 is always the depth, T2 the width.
type Shape interface {
	FrameType() FrameType
}

// ISection covers symmetric and asymmetric I shapes. T2b/Tfb describe the
// bottom flange.
type ISection struct {
	T3, T2, Tf, Tw, T2b, Tfb float64
}

type ChannelSection struct {
	T3, T2, Tf, Tw float64
}

// TeeSection is the generic tee constructor; it has no radius or mirror.
type TeeSection struct {
	T3, T2, Tf, Tw float64
}

// SteelTeeSection is stored under the T frame type.
type SteelTeeSection struct {
	T3, T2, Tf, Tw, R float64
	MirrorAbout3      bool
}

type ConcreteTeeSection struct {
	T3, T2, Tf, Tw, TwF float64
	MirrorAbout3        bool
}

// AngleSection is the generic angle constructor; it has no radius or mirror.
type AngleSection struct {
	T3, T2, Tf, Tw float64
}

// SteelAngleSection is stored under the Angle frame type.
type SteelAngleSection struct {
	T3, T2, Tf, Tw, R          float64
	MirrorAbout2, MirrorAbout3 bool
}

type ConcreteLSection struct {
	T3, T2, Tf, Tw, TwC        float64
	MirrorAbout2, MirrorAbout3 bool
}

// BoxSection is the native rectangular hollow ("tube") shape.
type BoxSection struct {
	T3, T2, Tf, Tw float64
}

type ConcreteBoxSection struct {
	T3, T2, Tf, Tw float64
}

type PipeSection struct {
	T3, Tw float64
}

type ConcretePipeSection struct {
	T3, Tw float64
}

type RectangleSection struct {
	T3, T2 float64
}

type PlateSection struct {
	T3, T2 float64
}

type CircleSection struct {
	T3 float64
}

type RodSection struct {
	T3 float64
}

type GeneralSection struct {
	T3, T2 float64
	Props  GeneralProps
}

// Opaque stands for a record whose parameters the engine never reads.
type Opaque struct {
	Kind FrameType
}

func (ISection) FrameType() FrameType            { return I }
func (ChannelSection) FrameType() FrameType      { return Channel }
func (TeeSection) FrameType() FrameType          { return T }
func (SteelTeeSection) FrameType() FrameType     { return T }
func (ConcreteTeeSection) FrameType() FrameType  { return ConcreteTee }
func (AngleSection) FrameType() FrameType        { return Angle }
func (SteelAngleSection) FrameType() FrameType   { return Angle }
func (ConcreteLSection) FrameType() FrameType    { return ConcreteL }
func (BoxSection) FrameType() FrameType          { return Box }
func (ConcreteBoxSection) FrameType() FrameType  { return ConcreteBox }
func (PipeSection) FrameType() FrameType         { return Pipe }
func (ConcretePipeSection) FrameType() FrameType { return ConcretePipe }
func (RectangleSection) FrameType() FrameType    { return Rectangular }
func (PlateSection) FrameType() FrameType        { return SteelPlate }
func (CircleSection) FrameType() FrameType       { return Circle }
func (RodSection) FrameType() FrameType          { return SteelRod }
func (GeneralSection) FrameType() FrameType      { return General }
func (o Opaque) FrameType() FrameType            { return o.Kind }
