package explicit

import (
	"testing"

	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/section"
	"github.com/stretchr/testify/assert"
)

func TestAxisSwap(t *testing.T) {
	g := native.GeneralProps{
		Area: 5380, As2: 2130, As3: 3210, Torsion: 201000,
		I22: 6.04e6, I33: 83.6e6,
		S22: 80.5e3, S33: 557e3,
		Z22: 125e3, Z33: 628e3,
		R22: 33.5, R33: 125,
	}

	p := ToAggregate(g)
	assert.Equal(t, 83.6e6, p.Iy)
	assert.Equal(t, 6.04e6, p.Iz)
	assert.Equal(t, 557e3, p.Wely)
	assert.Equal(t, 80.5e3, p.Welz)
	assert.Equal(t, 628e3, p.Wply)
	assert.Equal(t, 125.0, p.Rgy)
	assert.Equal(t, 2130.0, p.Asy)
	assert.Equal(t, 3210.0, p.Asz)

	assert.Equal(t, g, FromAggregate(p).Props)
}

func TestFromAggregateNominalDimensions(t *testing.T) {
	// A 300 x 500 rectangle: A = 150000, Iy = b h^3 / 12, Iz = h b^3 / 12.
	p := section.ExplicitProperties{Area: 150000, Iy: 300 * 500 * 500 * 500 / 12.0, Iz: 500 * 300 * 300 * 300 / 12.0}

	g := FromAggregate(p)
	assert.InDelta(t, 500, g.T3, 1e-9)
	assert.InDelta(t, 300, g.T2, 1e-9)
	assert.Equal(t, native.General, g.FrameType())
}

func TestFromAggregateZeroArea(t *testing.T) {
	g := FromAggregate(*Zero())
	assert.Zero(t, g.T3)
	assert.Zero(t, g.T2)
	assert.Equal(t, native.GeneralProps{}, g.Props)
}
