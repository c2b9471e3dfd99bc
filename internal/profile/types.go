// Package profile holds the canonical cross-section profiles and the
// catalog relating them to native frame property types.
//
// Profiles describe geometry only, in a local system where y is the major
// axis and z the minor axis. All dimensions share the caller's length unit.
package profile

// Profile is a canonical cross-section shape. The set of variants is
// closed; every variant is declared in this package.
type Profile interface {
	Shape() Shape
	isProfile()
}

// ISection is a rolled, doubly symmetric I shape.
type ISection struct {
	Height          float64 `json:"height"`
	Width           float64 `json:"width"`
	WebThickness    float64 `json:"web_thickness"`
	FlangeThickness float64 `json:"flange_thickness"`
	RootRadius      float64 `json:"root_radius,omitempty"`
	ToeRadius       float64 `json:"toe_radius,omitempty"`
}

// FabricatedISection is a welded I shape with independent flanges.
type FabricatedISection struct {
	Height             float64 `json:"height"`
	WebThickness       float64 `json:"web_thickness"`
	TopFlangeWidth     float64 `json:"top_flange_width"`
	TopFlangeThickness float64 `json:"top_flange_thickness"`
	BotFlangeWidth     float64 `json:"bot_flange_width"`
	BotFlangeThickness float64 `json:"bot_flange_thickness"`
	WeldSize           float64 `json:"weld_size,omitempty"`
}

type Channel struct {
	Height            float64 `json:"height"`
	FlangeWidth       float64 `json:"flange_width"`
	WebThickness      float64 `json:"web_thickness"`
	FlangeThickness   float64 `json:"flange_thickness"`
	RootRadius        float64 `json:"root_radius,omitempty"`
	ToeRadius         float64 `json:"toe_radius,omitempty"`
	MirrorAboutLocalZ bool    `json:"mirror_about_local_z,omitempty"`
}

type Angle struct {
	Height            float64 `json:"height"`
	Width             float64 `json:"width"`
	WebThickness      float64 `json:"web_thickness"`
	FlangeThickness   float64 `json:"flange_thickness"`
	RootRadius        float64 `json:"root_radius,omitempty"`
	ToeRadius         float64 `json:"toe_radius,omitempty"`
	MirrorAboutLocalY bool    `json:"mirror_about_local_y,omitempty"`
	MirrorAboutLocalZ bool    `json:"mirror_about_local_z,omitempty"`
}

// TSection has its flange at the top unless mirrored about local y.
type TSection struct {
	Height            float64 `json:"height"`
	Width             float64 `json:"width"`
	WebThickness      float64 `json:"web_thickness"`
	FlangeThickness   float64 `json:"flange_thickness"`
	RootRadius        float64 `json:"root_radius,omitempty"`
	ToeRadius         float64 `json:"toe_radius,omitempty"`
	MirrorAboutLocalY bool    `json:"mirror_about_local_y,omitempty"`
}

// Box is a rectangular hollow section of uniform wall thickness.
type Box struct {
	Height      float64 `json:"height"`
	Width       float64 `json:"width"`
	Thickness   float64 `json:"thickness"`
	OuterRadius float64 `json:"outer_radius,omitempty"`
	InnerRadius float64 `json:"inner_radius,omitempty"`
}

// FabricatedBox is a welded box whose webs and flanges differ in thickness.
type FabricatedBox struct {
	Height             float64 `json:"height"`
	Width              float64 `json:"width"`
	WebThickness       float64 `json:"web_thickness"`
	TopFlangeThickness float64 `json:"top_flange_thickness"`
	BotFlangeThickness float64 `json:"bot_flange_thickness"`
	WeldSize           float64 `json:"weld_size,omitempty"`
}

// Tube is a circular hollow section.
type Tube struct {
	Diameter  float64 `json:"diameter"`
	Thickness float64 `json:"thickness"`
}

type Rectangle struct {
	Height       float64 `json:"height"`
	Width        float64 `json:"width"`
	CornerRadius float64 `json:"corner_radius,omitempty"`
}

type Circle struct {
	Diameter float64 `json:"diameter"`
}

// ZSection has no native counterpart.
type ZSection struct {
	Height          float64 `json:"height"`
	FlangeWidth     float64 `json:"flange_width"`
	WebThickness    float64 `json:"web_thickness"`
	FlangeThickness float64 `json:"flange_thickness"`
	RootRadius      float64 `json:"root_radius,omitempty"`
	ToeRadius       float64 `json:"toe_radius,omitempty"`
}

// Point is a perimeter vertex in the profile's local y/z plane.
type Point struct {
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// FreeForm is a closed polygonal outline. It has no native counterpart.
type FreeForm struct {
	Perimeter []Point `json:"perimeter"`
}

// Tapered varies linearly between profiles placed at relative positions
// along the member. Positions run from 0 to 1 and are strictly increasing;
// Profiles[i] governs Positions[i]. InterpolationOrder[i] applies to the
// interval starting at Positions[i].
type Tapered struct {
	Positions          []float64
	Profiles           []Profile
	InterpolationOrder []int
}

func (ISection) Shape() Shape           { return ShapeI }
func (FabricatedISection) Shape() Shape { return ShapeFabricatedI }
func (Channel) Shape() Shape            { return ShapeChannel }
func (Angle) Shape() Shape              { return ShapeAngle }
func (TSection) Shape() Shape           { return ShapeT }
func (Box) Shape() Shape                { return ShapeBox }
func (FabricatedBox) Shape() Shape      { return ShapeFabricatedBox }
func (Tube) Shape() Shape               { return ShapeTube }
func (Rectangle) Shape() Shape          { return ShapeRectangle }
func (Circle) Shape() Shape             { return ShapeCircle }
func (ZSection) Shape() Shape           { return ShapeZ }
func (FreeForm) Shape() Shape           { return ShapeFreeForm }
func (Tapered) Shape() Shape            { return ShapeTapered }

func (ISection) isProfile()           {}
func (FabricatedISection) isProfile() {}
func (Channel) isProfile()            {}
func (Angle) isProfile()              {}
func (TSection) isProfile()           {}
func (Box) isProfile()                {}
func (FabricatedBox) isProfile()      {}
func (Tube) isProfile()               {}
func (Rectangle) isProfile()          {}
func (Circle) isProfile()             {}
func (ZSection) isProfile()           {}
func (FreeForm) isProfile()           {}
func (Tapered) isProfile()            {}
