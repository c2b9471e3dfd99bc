package codec

import (
	"testing"

	"github.com/alexiusacademia/framesec/internal/diag"
	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/profile"
	"github.com/alexiusacademia/framesec/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steel(name string, p profile.Profile) section.Section {
	return section.Section{Name: name, Material: section.MaterialRef{Name: "S355", Family: profile.FamilySteel}, Profile: p}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		family  profile.Family
		profile profile.Profile
		want    native.FrameType
	}{
		{"rolled I", profile.FamilySteel, profile.ISection{Height: 300, Width: 150, WebThickness: 7.1, FlangeThickness: 10.7}, native.I},
		{"fabricated I", profile.FamilySteel, profile.FabricatedISection{Height: 800, WebThickness: 12, TopFlangeWidth: 300, TopFlangeThickness: 20, BotFlangeWidth: 400, BotFlangeThickness: 25}, native.I},
		{"channel", profile.FamilySteel, profile.Channel{Height: 200, FlangeWidth: 75, WebThickness: 8.5, FlangeThickness: 11.5}, native.Channel},
		{"steel angle", profile.FamilySteel, profile.Angle{Height: 100, Width: 100, WebThickness: 10, FlangeThickness: 10, RootRadius: 12, MirrorAboutLocalZ: true}, native.Angle},
		{"aluminium tee", profile.FamilyAluminium, profile.TSection{Height: 120, Width: 100, WebThickness: 8, FlangeThickness: 10, RootRadius: 5, MirrorAboutLocalY: true}, native.T},
		{"concrete angle", profile.FamilyConcrete, profile.Angle{Height: 600, Width: 400, WebThickness: 200, FlangeThickness: 150, MirrorAboutLocalY: true}, native.ConcreteL},
		{"concrete tee", profile.FamilyConcrete, profile.TSection{Height: 700, Width: 1200, WebThickness: 300, FlangeThickness: 150}, native.ConcreteTee},
		{"box", profile.FamilySteel, profile.Box{Height: 200, Width: 100, Thickness: 8}, native.Box},
		{"tube", profile.FamilySteel, profile.Tube{Diameter: 168.3, Thickness: 7.1}, native.Pipe},
		{"rectangle", profile.FamilyConcrete, profile.Rectangle{Height: 500, Width: 300}, native.Rectangular},
		{"circle", profile.FamilyConcrete, profile.Circle{Diameter: 600}, native.Circle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := diag.Discard()
			sec := section.Section{Name: "S", Material: section.MaterialRef{Name: "M", Family: tt.family}, Profile: tt.profile}

			shape, err := Encode(sec, rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, shape.FrameType())

			back, err := Decode("S", shape.FrameType(), shape, rec)
			require.NoError(t, err)
			assert.Equal(t, tt.profile, back)
			assert.Empty(t, rec.All())
		})
	}
}

func TestDecodeIDegenerate(t *testing.T) {
	rec := diag.Discard()

	p, err := Decode("IPE300", native.I, native.ISection{T3: 300, T2: 150, Tf: 10.7, Tw: 7.1, T2b: 150, Tfb: 10.7}, rec)
	require.NoError(t, err)
	assert.Equal(t, profile.ISection{Height: 300, Width: 150, WebThickness: 7.1, FlangeThickness: 10.7}, p)

	p, err = Decode("PG1", native.I, native.ISection{T3: 800, T2: 300, Tf: 20, Tw: 12, T2b: 300, Tfb: 25}, rec)
	require.NoError(t, err)
	assert.Equal(t, profile.FabricatedISection{
		Height: 800, WebThickness: 12,
		TopFlangeWidth: 300, TopFlangeThickness: 20,
		BotFlangeWidth: 300, BotFlangeThickness: 25,
	}, p)
}

func TestDecodeBoxWithThickerFlanges(t *testing.T) {
	rec := diag.Discard()

	p, err := Decode("BX", native.Box, native.BoxSection{T3: 400, T2: 200, Tf: 16, Tw: 10}, rec)
	require.NoError(t, err)
	assert.Equal(t, profile.FabricatedBox{Height: 400, Width: 200, WebThickness: 10, TopFlangeThickness: 16, BotFlangeThickness: 16}, p)
	assert.Len(t, rec.Filter(diag.Approximate), 1)
}

func TestDecodeConcreteVariants(t *testing.T) {
	rec := diag.Discard()

	p, err := Decode("CB", native.ConcreteBox, native.ConcreteBoxSection{T3: 1000, T2: 800, Tf: 200, Tw: 200}, rec)
	require.NoError(t, err)
	assert.Equal(t, profile.Box{Height: 1000, Width: 800, Thickness: 200}, p)

	p, err = Decode("PL", native.SteelPlate, native.PlateSection{T3: 20, T2: 300}, rec)
	require.NoError(t, err)
	assert.Equal(t, profile.Rectangle{Height: 20, Width: 300}, p)

	p, err = Decode("RD", native.SteelRod, native.RodSection{T3: 32}, rec)
	require.NoError(t, err)
	assert.Equal(t, profile.Circle{Diameter: 32}, p)
}

func TestDecodeUnsupported(t *testing.T) {
	rec := diag.Discard()

	_, err := Decode("CF1", native.ColdC, native.Opaque{Kind: native.ColdC}, rec)
	assert.ErrorIs(t, err, ErrUnsupported)
	require.Len(t, rec.Filter(diag.Unsupported), 1)
	assert.Equal(t, diag.Note, rec.Filter(diag.Unsupported)[0].Level)
}

func TestDecodeMismatchedParameters(t *testing.T) {
	_, err := Decode("X", native.Channel, native.ISection{T3: 1}, diag.Discard())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupported)
}

func TestEncodeMirrorMapping(t *testing.T) {
	shape, err := Encode(steel("L1", profile.Angle{Height: 100, Width: 75, WebThickness: 8, FlangeThickness: 8, MirrorAboutLocalY: true}), diag.Discard())
	require.NoError(t, err)
	a, ok := shape.(native.SteelAngleSection)
	require.True(t, ok)
	assert.True(t, a.MirrorAbout3)
	assert.False(t, a.MirrorAbout2)

	shape, err = Encode(steel("L2", profile.Angle{Height: 100, Width: 75, WebThickness: 8, FlangeThickness: 8, MirrorAboutLocalZ: true}), diag.Discard())
	require.NoError(t, err)
	a = shape.(native.SteelAngleSection)
	assert.True(t, a.MirrorAbout2)
	assert.False(t, a.MirrorAbout3)
}

func TestEncodeGenericConstructorsDropFlips(t *testing.T) {
	rec := diag.Discard()
	timber := section.MaterialRef{Name: "GL24h", Family: profile.FamilyTimber}

	shape, err := Encode(section.Section{
		Name:     "L",
		Material: timber,
		Profile:  profile.Angle{Height: 100, Width: 100, WebThickness: 10, FlangeThickness: 10, MirrorAboutLocalY: true, MirrorAboutLocalZ: true},
	}, rec)
	require.NoError(t, err)
	assert.IsType(t, native.AngleSection{}, shape)
	assert.Len(t, rec.Filter(diag.FlipUnsupported), 2)

	shape, err = Encode(section.Section{
		Name:     "T",
		Material: timber,
		Profile:  profile.TSection{Height: 200, Width: 200, WebThickness: 40, FlangeThickness: 40, MirrorAboutLocalY: true},
	}, rec)
	require.NoError(t, err)
	assert.IsType(t, native.TeeSection{}, shape)
	assert.Len(t, rec.Filter(diag.FlipUnsupported), 3)
	assert.Len(t, rec.For("T"), 1)
}

func TestEncodeChannelMirror(t *testing.T) {
	rec := diag.Discard()
	shape, err := Encode(steel("C", profile.Channel{Height: 200, FlangeWidth: 75, WebThickness: 8, FlangeThickness: 11, MirrorAboutLocalZ: true}), rec)
	require.NoError(t, err)
	assert.Equal(t, native.ChannelSection{T3: 200, T2: 75, Tf: 11, Tw: 8}, shape)
	assert.Len(t, rec.Filter(diag.FlipUnsupported), 1)
}

func TestEncodeFabricatedBox(t *testing.T) {
	rec := diag.Discard()
	shape, err := Encode(steel("FB", profile.FabricatedBox{Height: 600, Width: 400, WebThickness: 12, TopFlangeThickness: 20, BotFlangeThickness: 25}), rec)
	require.NoError(t, err)
	assert.Equal(t, native.BoxSection{T3: 600, T2: 400, Tf: 20, Tw: 12}, shape)
	assert.Len(t, rec.Filter(diag.Approximate), 1)

	rec = diag.Discard()
	_, err = Encode(steel("FB2", profile.FabricatedBox{Height: 600, Width: 400, WebThickness: 12, TopFlangeThickness: 20, BotFlangeThickness: 20}), rec)
	require.NoError(t, err)
	assert.Empty(t, rec.All())
}

func TestEncodeUnsupported(t *testing.T) {
	for _, p := range []profile.Profile{
		profile.ZSection{Height: 200, FlangeWidth: 70, WebThickness: 2, FlangeThickness: 2},
		profile.FreeForm{Perimeter: []profile.Point{{Y: 0, Z: 0}, {Y: 1, Z: 0}, {Y: 0, Z: 1}}},
		nil,
	} {
		rec := diag.Discard()
		_, err := Encode(steel("U", p), rec)
		assert.ErrorIs(t, err, ErrUnsupported)
		assert.Len(t, rec.Filter(diag.Unsupported), 1)
	}
}

func TestEncodeTapered(t *testing.T) {
	_, err := Encode(steel("TP", profile.Tapered{}), diag.Discard())
	assert.ErrorIs(t, err, ErrTapered)
}
