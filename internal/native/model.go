package native

import "errors"

// ErrNotFound is returned by Model accessors for an unknown section name.
var ErrNotFound = errors.New("frame property not found")

// Model is the subset of the vendor application's in-process API used by
// the section engines. Calls are blocking and not reentrant; callers must
// not share a Model across goroutines.
type Model interface {
	// NameList enumerates every frame property name.
	NameList() ([]string, error)
	// TypeOf returns the frame property type of a named section.
	TypeOf(name string) (FrameType, error)
	// Shape returns the type-specific parameters and the material name.
	Shape(name string) (Shape, string, error)
	// SetShape creates or replaces a section from a parameter tuple.
	SetShape(name, material string, s Shape) error
	// SectionProperties returns the aggregate properties the native side
	// computes for any section type.
	SectionProperties(name string) (GeneralProps, error)
	// Modifiers returns the six significant stiffness modifiers in read
	// order: area, major shear, minor shear, torsion, minor bending,
	// major bending.
	Modifiers(name string) ([]float64, error)
	// SetModifiers takes the eight-entry write layout: area, minor shear,
	// major shear, torsion, minor bending, major bending, mass, weight.
	SetModifiers(name string, values [8]float64) error
	// NonPrismatic returns the segments of a Variable section.
	NonPrismatic(name string) ([]Segment, error)
	// SetNonPrismatic creates or replaces a Variable section.
	SetNonPrismatic(name string, segments []Segment) error
	// ImportFromLibrary copies libraryName from a vendor database file
	// into the model under name.
	ImportFromLibrary(name, material, file, libraryName string) error
}
