// Package modifier converts stiffness modifier arrays. The native read
// and write layouts order the shear factors differently; both index maps
// below are fixed by the native API.
package modifier

import "github.com/alexiusacademia/framesec/internal/section"

// Read layout indices.
const (
	readArea = iota
	readMajorShear
	readMinorShear
	readTorsion
	readMinorBending
	readMajorBending
	readLen
)

// Write layout indices.
const (
	writeArea = iota
	writeMinorShear
	writeMajorShear
	writeTorsion
	writeMinorBending
	writeMajorBending
	writeMass
	writeWeight
)

// Decode reads a six- or eight-entry array in read layout. It returns nil
// when all six significant factors are 1 or the array is too short.
func Decode(values []float64) *section.StiffnessModifiers {
	if len(values) < readLen {
		return nil
	}
	m := section.StiffnessModifiers{
		Area:         values[readArea],
		MajorShear:   values[readMajorShear],
		MinorShear:   values[readMinorShear],
		Torsion:      values[readTorsion],
		MinorBending: values[readMinorBending],
		MajorBending: values[readMajorBending],
	}
	if m.Unity() {
		return nil
	}
	return &m
}

// Encode produces the eight-entry write layout. Mass and weight are not
// modelled and stay at 1. A nil record encodes as all ones.
func Encode(m *section.StiffnessModifiers) [8]float64 {
	out := [8]float64{1, 1, 1, 1, 1, 1, 1, 1}
	if m == nil {
		return out
	}
	out[writeArea] = m.Area
	out[writeMinorShear] = m.MinorShear
	out[writeMajorShear] = m.MajorShear
	out[writeTorsion] = m.Torsion
	out[writeMinorBending] = m.MinorBending
	out[writeMajorBending] = m.MajorBending
	out[writeMass] = 1
	out[writeWeight] = 1
	return out
}
