// Package memstore is an in-memory native model. It behaves like the
// vendor API as far as the section engines can observe and backs the CLI's
// offline model files and the tests.
package memstore

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/framesec/internal/native"
)

// Record is one stored frame property.
type Record struct {
	Name      string
	Material  string
	Shape     native.Shape
	Props     *native.GeneralProps // overrides computed properties when set
	Modifiers [8]float64           // write layout
	Segments  []native.Segment     // Variable sections only
	Library   string               // "file:name" when imported
}

// Type is the record's frame property type.
func (r *Record) Type() native.FrameType {
	if len(r.Segments) > 0 {
		return native.Variable
	}
	return r.Shape.FrameType()
}

// Store implements native.Model.
type Store struct {
	order     []string
	records   map[string]*Record
	libraries map[string]map[string]native.Shape

	// Calls counts mutating calls, keyed by method name.
	Calls map[string]int
}

var _ native.Model = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		records:   make(map[string]*Record),
		libraries: make(map[string]map[string]native.Shape),
		Calls:     make(map[string]int),
	}
}

func unity() [8]float64 {
	return [8]float64{1, 1, 1, 1, 1, 1, 1, 1}
}

// Put stores a complete record, replacing any previous one with the same
// name. A zero Modifiers array is replaced by all ones. A record without a
// shape is accepted only when it has segments.
func (s *Store) Put(r Record) error {
	if r.Shape == nil {
		if len(r.Segments) == 0 {
			return fmt.Errorf("put %q: no shape and no segments", r.Name)
		}
		r.Shape = native.Opaque{Kind: native.Variable}
	}
	if r.Modifiers == ([8]float64{}) {
		r.Modifiers = unity()
	}
	if _, ok := s.records[r.Name]; !ok {
		s.order = append(s.order, r.Name)
	}
	rec := r
	s.records[r.Name] = &rec
	return nil
}

// Records returns every record in creation order.
func (s *Store) Records() []Record {
	out := make([]Record, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.records[name])
	}
	return out
}

// AddLibrary registers a vendor database entry for ImportFromLibrary.
func (s *Store) AddLibrary(file, name string, shape native.Shape) {
	lib, ok := s.libraries[file]
	if !ok {
		lib = make(map[string]native.Shape)
		s.libraries[file] = lib
	}
	lib[name] = shape
}

func (s *Store) lookup(name string) (*Record, error) {
	r, ok := s.records[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, native.ErrNotFound)
	}
	return r, nil
}

func (s *Store) NameList() ([]string, error) {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out, nil
}

func (s *Store) TypeOf(name string) (native.FrameType, error) {
	r, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return r.Type(), nil
}

func (s *Store) Shape(name string) (native.Shape, string, error) {
	r, err := s.lookup(name)
	if err != nil {
		return nil, "", err
	}
	if r.Shape == nil {
		return native.Opaque{Kind: r.Type()}, r.Material, nil
	}
	return r.Shape, r.Material, nil
}

func (s *Store) SetShape(name, material string, shape native.Shape) error {
	if shape == nil {
		return fmt.Errorf("set %q: nil shape", name)
	}
	s.Calls["SetShape"]++
	mods := unity()
	if prev, ok := s.records[name]; ok {
		mods = prev.Modifiers
	}
	return s.Put(Record{Name: name, Material: material, Shape: shape, Modifiers: mods})
}

func (s *Store) SectionProperties(name string) (native.GeneralProps, error) {
	r, err := s.lookup(name)
	if err != nil {
		return native.GeneralProps{}, err
	}
	if r.Props != nil {
		return *r.Props, nil
	}
	if g, ok := r.Shape.(native.GeneralSection); ok {
		return g.Props, nil
	}
	return computeProps(r.Shape), nil
}

// Modifiers returns the read layout, which swaps the two shear factors
// relative to the stored write layout.
func (s *Store) Modifiers(name string) ([]float64, error) {
	r, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	m := r.Modifiers
	return []float64{m[0], m[2], m[1], m[3], m[4], m[5]}, nil
}

func (s *Store) SetModifiers(name string, values [8]float64) error {
	r, err := s.lookup(name)
	if err != nil {
		return err
	}
	s.Calls["SetModifiers"]++
	r.Modifiers = values
	return nil
}

func (s *Store) NonPrismatic(name string) ([]native.Segment, error) {
	r, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	if len(r.Segments) == 0 {
		return nil, fmt.Errorf("%q is %s, not %s", name, r.Type(), native.Variable)
	}
	out := make([]native.Segment, len(r.Segments))
	copy(out, r.Segments)
	return out, nil
}

func (s *Store) SetNonPrismatic(name string, segments []native.Segment) error {
	if len(segments) == 0 {
		return fmt.Errorf("set non-prismatic %q: no segments", name)
	}
	for i, seg := range segments {
		for _, ref := range []string{seg.StartSection, seg.EndSection} {
			if _, ok := s.records[ref]; !ok {
				return fmt.Errorf("set non-prismatic %q: segment %d references %q: %w", name, i+1, ref, native.ErrNotFound)
			}
		}
	}
	s.Calls["SetNonPrismatic"]++
	segs := make([]native.Segment, len(segments))
	copy(segs, segments)
	return s.Put(Record{Name: name, Shape: native.Opaque{Kind: native.Variable}, Segments: segs})
}

func (s *Store) ImportFromLibrary(name, material, file, libraryName string) error {
	lib, ok := s.libraries[file]
	if !ok {
		return fmt.Errorf("import %q: database %q not available", name, file)
	}
	shape, ok := lib[libraryName]
	if !ok {
		return fmt.Errorf("import %q: %q not in %q", name, libraryName, file)
	}
	s.Calls["ImportFromLibrary"]++
	return s.Put(Record{Name: name, Material: material, Shape: shape, Library: file + ":" + libraryName})
}

// Delete removes a record. Missing names are ignored.
func (s *Store) Delete(name string) {
	if _, ok := s.records[name]; !ok {
		return
	}
	delete(s.records, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// computeProps approximates the aggregate properties the native side
// reports for the simple solid and I shapes. Other shapes report zeros.
func computeProps(shape native.Shape) native.GeneralProps {
	switch sh := shape.(type) {
	case native.RectangleSection:
		return rectangleProps(sh.T2, sh.T3)
	case native.PlateSection:
		return rectangleProps(sh.T2, sh.T3)
	case native.CircleSection:
		return circleProps(sh.T3)
	case native.RodSection:
		return circleProps(sh.T3)
	case native.ISection:
		if sh.T2 == sh.T2b && sh.Tf == sh.Tfb {
			return iProps(sh)
		}
	}
	return native.GeneralProps{}
}

func rectangleProps(b, h float64) native.GeneralProps {
	a := b * h
	p := native.GeneralProps{
		Area: a,
		As2:  5.0 / 6.0 * a,
		As3:  5.0 / 6.0 * a,
		I33:  b * h * h * h / 12,
		I22:  h * b * b * b / 12,
		S33:  b * h * h / 6,
		S22:  h * b * b / 6,
		Z33:  b * h * h / 4,
		Z22:  h * b * b / 4,
	}
	short, long := math.Min(b, h), math.Max(b, h)
	if long > 0 {
		s3 := short * short * short
		p.Torsion = long * s3 * (1.0/3.0 - 0.21*(short/long)*(1.0-short*s3/(12.0*long*long*long*long)))
	}
	fillRadii(&p)
	return p
}

func circleProps(d float64) native.GeneralProps {
	r := d / 2
	a := math.Pi * r * r
	i := math.Pi * r * r * r * r / 4
	p := native.GeneralProps{
		Area:    a,
		As2:     0.9 * a,
		As3:     0.9 * a,
		Torsion: 2 * i,
		I22:     i,
		I33:     i,
		S22:     math.Pi * r * r * r / 4,
		S33:     math.Pi * r * r * r / 4,
		Z22:     d * d * d / 6,
		Z33:     d * d * d / 6,
	}
	fillRadii(&p)
	return p
}

func iProps(sh native.ISection) native.GeneralProps {
	b, h, tf, tw := sh.T2, sh.T3, sh.Tf, sh.Tw
	l := h - 2*tf
	p := native.GeneralProps{
		Area:    b*h - l*(b-tw),
		As2:     h * tw,
		As3:     5.0 / 3.0 * b * tf,
		I33:     b*h*h*h/12 - (b-tw)*l*l*l/12,
		I22:     l*tw*tw*tw/12 + tf*b*b*b/6,
		Torsion: (2*b*tf*tf*tf + l*tw*tw*tw) / 3,
		Z33:     b*tf*(h-tf) + tw*l*l/4,
		Z22:     tf*b*b/2 + l*tw*tw/4,
	}
	if h > 0 {
		p.S33 = 2 * p.I33 / h
	}
	if b > 0 {
		p.S22 = 2 * p.I22 / b
	}
	fillRadii(&p)
	return p
}

func fillRadii(p *native.GeneralProps) {
	if p.Area <= 0 {
		return
	}
	p.R33 = math.Sqrt(p.I33 / p.Area)
	p.R22 = math.Sqrt(p.I22 / p.Area)
}
