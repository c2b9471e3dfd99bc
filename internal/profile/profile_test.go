package profile

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNames(t *testing.T) {
	for s := ShapeExplicit; s <= ShapeFreeForm; s++ {
		got, err := ParseShape(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseShape(" Fabricated_I ")
	require.NoError(t, err)
	assert.Equal(t, ShapeFabricatedI, got)

	_, err = ParseShape("hexagon")
	assert.Error(t, err)
}

func TestParseFamily(t *testing.T) {
	assert.Equal(t, FamilySteel, ParseFamily("Steel"))
	assert.Equal(t, FamilyAluminium, ParseFamily("aluminum"))
	assert.Equal(t, FamilyAluminium, ParseFamily("aluminium"))
	assert.Equal(t, FamilyConcrete, ParseFamily("concrete"))
	assert.Equal(t, FamilyOther, ParseFamily("masonry"))
	assert.True(t, FamilyAluminium.Metal())
	assert.False(t, FamilyTimber.Metal())
}

func TestCanonicalForCoversEveryType(t *testing.T) {
	counts := map[Support]int{}
	for _, ft := range native.FrameTypes() {
		shape, support := CanonicalFor(ft)
		counts[support]++
		if support == Decodable {
			nt, ok := NativeFor(shape, FamilySteel)
			assert.True(t, ok, "%s", ft)
			assert.True(t, nt.Valid(), "%s", ft)
		}
	}
	assert.Len(t, native.FrameTypes(), 40)
	assert.Equal(t, 1, counts[Explicit])
	assert.Equal(t, 1, counts[Deferred])
	assert.Equal(t, 14, counts[Decodable])
	assert.Equal(t, 24, counts[Unsupported])
}

func TestNativeForFamilies(t *testing.T) {
	nt, ok := NativeFor(ShapeAngle, FamilyConcrete)
	require.True(t, ok)
	assert.Equal(t, native.ConcreteL, nt)

	nt, ok = NativeFor(ShapeT, FamilySteel)
	require.True(t, ok)
	assert.Equal(t, native.T, nt)

	_, ok = NativeFor(ShapeZ, FamilySteel)
	assert.False(t, ok)
	_, ok = NativeFor(ShapeFreeForm, FamilyOther)
	assert.False(t, ok)
}

func TestJSONRoundTrip(t *testing.T) {
	profiles := []Profile{
		ISection{Height: 300, Width: 150, WebThickness: 7.1, FlangeThickness: 10.7, RootRadius: 15},
		FabricatedISection{Height: 800, WebThickness: 12, TopFlangeWidth: 300, TopFlangeThickness: 20, BotFlangeWidth: 400, BotFlangeThickness: 25, WeldSize: 6},
		Channel{Height: 200, FlangeWidth: 75, WebThickness: 8.5, FlangeThickness: 11.5, MirrorAboutLocalZ: true},
		Angle{Height: 100, Width: 100, WebThickness: 10, FlangeThickness: 10, MirrorAboutLocalY: true},
		TSection{Height: 120, Width: 100, WebThickness: 8, FlangeThickness: 10},
		Box{Height: 200, Width: 100, Thickness: 8, OuterRadius: 16},
		FabricatedBox{Height: 600, Width: 400, WebThickness: 12, TopFlangeThickness: 20, BotFlangeThickness: 25},
		Tube{Diameter: 168.3, Thickness: 7.1},
		Rectangle{Height: 500, Width: 300},
		Circle{Diameter: 600},
		ZSection{Height: 200, FlangeWidth: 70, WebThickness: 2, FlangeThickness: 2},
		FreeForm{Perimeter: []Point{{Y: 0, Z: 0}, {Y: 100, Z: 0}, {Y: 0, Z: 50}}},
		Tapered{
			Positions:          []float64{0, 0.5, 1},
			Profiles:           []Profile{Rectangle{Height: 400, Width: 200}, Rectangle{Height: 600, Width: 200}, Circle{Diameter: 300}},
			InterpolationOrder: []int{1, 1},
		},
	}

	for _, p := range profiles {
		t.Run(p.Shape().String(), func(t *testing.T) {
			data, err := Marshal(p)
			require.NoError(t, err)

			var env envelope
			require.NoError(t, json.Unmarshal(data, &env))
			assert.Equal(t, p.Shape().String(), env.Shape)

			back, err := Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, p, back)
		})
	}
}

func TestJSONNilAndExplicit(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	p, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = Unmarshal([]byte(`{"shape":"explicit"}`))
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = Unmarshal([]byte(`{"shape":"hexagon"}`))
	assert.Error(t, err)
}

func TestDepthAndWidth(t *testing.T) {
	assert.Equal(t, 300.0, Depth(ISection{Height: 300, Width: 150}))
	assert.Equal(t, 400.0, Width(FabricatedISection{TopFlangeWidth: 300, BotFlangeWidth: 400}))
	assert.Equal(t, 168.3, Width(Tube{Diameter: 168.3}))
	assert.Equal(t, 138.0, Width(ZSection{FlangeWidth: 70, WebThickness: 2}))

	ff := FreeForm{Perimeter: []Point{{Y: -50, Z: -100}, {Y: 50, Z: -100}, {Y: 0, Z: 200}}}
	assert.Equal(t, 300.0, Depth(ff))
	assert.Equal(t, 100.0, Width(ff))

	tp := Tapered{Profiles: []Profile{Rectangle{Height: 400, Width: 200}, Rectangle{Height: 600, Width: 250}}}
	assert.Equal(t, 600.0, Depth(tp))
	assert.Equal(t, 250.0, Width(tp))

	assert.Zero(t, Depth(nil))
}

func TestGeometric(t *testing.T) {
	assert.True(t, Geometric(Circle{Diameter: 1}))
	assert.True(t, Geometric(FreeForm{}))
	assert.False(t, Geometric(nil))
	assert.False(t, Geometric(Tapered{}))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(ISection{Height: 300, Width: 150, WebThickness: 7, FlangeThickness: 10}))
	assert.Error(t, Validate(ISection{Height: -300}))
	assert.Error(t, Validate(Circle{Diameter: math.NaN()}))
	assert.Error(t, Validate(Tube{Diameter: math.Inf(1)}))

	good := Tapered{
		Positions: []float64{0, 0.5, 1},
		Profiles:  []Profile{Circle{Diameter: 3}, Circle{Diameter: 2}, Circle{Diameter: 1}},
	}
	assert.NoError(t, Validate(good))

	tests := map[string]Tapered{
		"single position": {Positions: []float64{0}, Profiles: []Profile{Circle{Diameter: 1}}},
		"count mismatch":  {Positions: []float64{0, 1}, Profiles: []Profile{Circle{Diameter: 1}}},
		"not from zero":   {Positions: []float64{0.1, 1}, Profiles: []Profile{Circle{Diameter: 1}, Circle{Diameter: 1}}},
		"not to one":      {Positions: []float64{0, 0.9}, Profiles: []Profile{Circle{Diameter: 1}, Circle{Diameter: 1}}},
		"not increasing":  {Positions: []float64{0, 0.5, 0.5, 1}, Profiles: []Profile{Circle{Diameter: 1}, Circle{Diameter: 1}, Circle{Diameter: 1}, Circle{Diameter: 1}}},
		"nested taper":    {Positions: []float64{0, 1}, Profiles: []Profile{Circle{Diameter: 1}, good}},
		"explicit sub":    {Positions: []float64{0, 1}, Profiles: []Profile{Circle{Diameter: 1}, nil}},
		"bad sub":         {Positions: []float64{0, 1}, Profiles: []Profile{Circle{Diameter: 1}, Circle{Diameter: -1}}},
		"order count":     {Positions: []float64{0, 1}, Profiles: []Profile{Circle{Diameter: 1}, Circle{Diameter: 1}}, InterpolationOrder: []int{1, 1}},
	}
	for name, tp := range tests {
		assert.Error(t, Validate(tp), name)
	}
}
