package section

import "github.com/alexiusacademia/framesec/internal/profile"

// NewMaterialRef builds a reference from a material name and family name.
func NewMaterialRef(name, family string) MaterialRef {
	return MaterialRef{Name: name, Family: profile.ParseFamily(family)}
}

// Materials is the material existence map supplied by the material
// translation collaborator.
type Materials map[string]MaterialRef

// Lookup returns the reference for name. ok is false for unknown names,
// in which case the returned reference carries the name and FamilyOther.
func (m Materials) Lookup(name string) (ref MaterialRef, ok bool) {
	if ref, ok := m[name]; ok {
		return ref, true
	}
	return MaterialRef{Name: name, Family: profile.FamilyOther}, false
}

// DefaultMaterials covers common grades so the CLI works without a
// material table.
func DefaultMaterials() Materials {
	m := Materials{}
	for _, n := range []string{"S235", "S275", "S355", "S460", "A36", "A992Fy50", "A572Gr50", "Q345"} {
		m[n] = MaterialRef{Name: n, Family: profile.FamilySteel}
	}
	for _, n := range []string{"6061-T6", "6063-T6", "5052-H34"} {
		m[n] = MaterialRef{Name: n, Family: profile.FamilyAluminium}
	}
	for _, n := range []string{"C25/30", "C30/37", "C40/50", "4000Psi", "Fc28"} {
		m[n] = MaterialRef{Name: n, Family: profile.FamilyConcrete}
	}
	for _, n := range []string{"C24", "GL24h", "GL28h"} {
		m[n] = MaterialRef{Name: n, Family: profile.FamilyTimber}
	}
	return m
}
