package section

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/framesec/internal/profile"
)

// ErrNoDefinition is returned for a section with neither a profile nor
// aggregate properties.
var ErrNoDefinition = errors.New("section has neither a profile nor explicit properties")

// Section is the canonical unit of translation. Its name is unique and is
// also the key correlating it with the native store.
type Section struct {
	Name     string
	Material MaterialRef

	// Profile is nil for sections described only by Properties.
	Profile profile.Profile

	// Properties holds aggregate properties. When Profile is set and has a
	// native counterpart, Properties is informational only.
	Properties *ExplicitProperties

	// Modifiers is nil when every factor is unity.
	Modifiers *StiffnessModifiers
}

// MaterialRef names a material and the family that selects native
// constructors. Material translation itself happens elsewhere.
type MaterialRef struct {
	Name   string         `json:"name"`
	Family profile.Family `json:"-"`
}

// ExplicitProperties are the integrated properties of a cross-section.
// y is the major axis, z the minor axis.
type ExplicitProperties struct {
	Area float64 `json:"area"`
	Asy  float64 `json:"asy"`  // shear area along y
	Asz  float64 `json:"asz"`  // shear area along z
	J    float64 `json:"j"`    // torsion constant
	Iy   float64 `json:"iy"`   // second moment about y
	Iz   float64 `json:"iz"`   // second moment about z
	Wely float64 `json:"wely"` // elastic modulus about y
	Welz float64 `json:"welz"`
	Wply float64 `json:"wply"` // plastic modulus about y
	Wplz float64 `json:"wplz"`
	Rgy  float64 `json:"rgy"` // radius of gyration about y
	Rgz  float64 `json:"rgz"`
}

// StiffnessModifiers are multiplicative factors on computed stiffness.
type StiffnessModifiers struct {
	Area         float64 `json:"area"`
	MajorShear   float64 `json:"major_shear"`
	MinorShear   float64 `json:"minor_shear"`
	Torsion      float64 `json:"torsion"`
	MinorBending float64 `json:"minor_bending"`
	MajorBending float64 `json:"major_bending"`
}

// Unity reports whether every factor equals 1.
func (m StiffnessModifiers) Unity() bool {
	return m.Area == 1 && m.MajorShear == 1 && m.MinorShear == 1 &&
		m.Torsion == 1 && m.MinorBending == 1 && m.MajorBending == 1
}

// Tapered reports whether the section has a tapered profile.
func (s *Section) Tapered() bool {
	return profile.ShapeOf(s.Profile) == profile.ShapeTapered
}

// Validate checks if the section definition is usable for writing
func (s *Section) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{msg: "section must have a name"}
	}
	if s.Profile == nil && s.Properties == nil {
		return &ValidationError{msg: fmt.Sprintf("section %q: %v", s.Name, ErrNoDefinition), err: ErrNoDefinition}
	}
	if s.Profile != nil {
		if err := profile.Validate(s.Profile); err != nil {
			return &ValidationError{msg: fmt.Sprintf("section %q: %v", s.Name, err), err: err}
		}
	}
	if s.Properties != nil && s.Properties.Area < 0 {
		return &ValidationError{msg: fmt.Sprintf("section %q: area must not be negative", s.Name)}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
	err error
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

type sectionJSON struct {
	Name       string              `json:"name"`
	Material   string              `json:"material"`
	Family     string              `json:"family,omitempty"`
	Profile    json.RawMessage     `json:"profile,omitempty"`
	Properties *ExplicitProperties `json:"properties,omitempty"`
	Modifiers  *StiffnessModifiers `json:"modifiers,omitempty"`
}

func (s Section) MarshalJSON() ([]byte, error) {
	out := sectionJSON{
		Name:       s.Name,
		Material:   s.Material.Name,
		Family:     s.Material.Family.String(),
		Properties: s.Properties,
		Modifiers:  s.Modifiers,
	}
	if s.Profile != nil {
		raw, err := profile.Marshal(s.Profile)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", s.Name, err)
		}
		out.Profile = raw
	}
	return json.Marshal(out)
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var in sectionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	p, err := profile.Unmarshal(in.Profile)
	if err != nil {
		return fmt.Errorf("section %q: %w", in.Name, err)
	}
	*s = Section{
		Name:       in.Name,
		Material:   MaterialRef{Name: in.Material, Family: profile.ParseFamily(in.Family)},
		Profile:    p,
		Properties: in.Properties,
		Modifiers:  in.Modifiers,
	}
	return nil
}
