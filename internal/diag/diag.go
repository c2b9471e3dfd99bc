// Package diag records the notes, warnings and errors raised while
// translating sections. Diagnostics never abort a batch; they are attached
// to the offending section's name and handed to the surrounding adapter.
package diag

import (
	"fmt"
	"log"
)

// Level is the severity of a diagnostic.
type Level int

const (
	Note Level = iota
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Kind classifies the condition behind a diagnostic.
type Kind string

const (
	Unsupported           Kind = "unsupported"
	AmbiguousMaterial     Kind = "ambiguous-material"
	NonRelativeLength     Kind = "non-relative-length"
	UngeometricSubProfile Kind = "ungeometric-sub-profile"
	UnresolvableBacklog   Kind = "unresolvable-backlog"
	FlipUnsupported       Kind = "flip-unsupported"
	Approximate           Kind = "approximate"
	LinearOnly            Kind = "linear-only"
	MissingMaterial       Kind = "missing-material"
	NativeCall            Kind = "native-call"
	Invalid               Kind = "invalid"
)

// Diagnostic is one recorded condition.
type Diagnostic struct {
	Level   Level
	Kind    Kind
	Section string
	Message string
}

func (d Diagnostic) String() string {
	if d.Section == "" {
		return fmt.Sprintf("%s [%s] %s", d.Level, d.Kind, d.Message)
	}
	return fmt.Sprintf("%s [%s] %s: %s", d.Level, d.Kind, d.Section, d.Message)
}

// Sink receives diagnostics.
type Sink interface {
	Add(d Diagnostic)
}

// Recorder keeps every diagnostic in order and mirrors them to a logger.
type Recorder struct {
	log   *log.Logger
	items []Diagnostic
}

// NewRecorder returns a recorder logging through logger. A nil logger means
// log.Default(); use Discard for silent recording.
func NewRecorder(logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{log: logger}
}

// Discard returns a recorder that only collects.
func Discard() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Add(d Diagnostic) {
	r.items = append(r.items, d)
	if r.log != nil {
		r.log.Print(d.String())
	}
}

// All returns the recorded diagnostics in order.
func (r *Recorder) All() []Diagnostic {
	out := make([]Diagnostic, len(r.items))
	copy(out, r.items)
	return out
}

// Filter returns diagnostics of the given kind.
func (r *Recorder) Filter(kind Kind) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.items {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// For returns the diagnostics attached to one section.
func (r *Recorder) For(section string) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.items {
		if d.Section == section {
			out = append(out, d)
		}
	}
	return out
}

// Count returns how many diagnostics have at least the given level.
func (r *Recorder) Count(min Level) int {
	n := 0
	for _, d := range r.items {
		if d.Level >= min {
			n++
		}
	}
	return n
}

// Notef, Warnf and Errorf are shorthands for Sink.Add.
func Notef(s Sink, kind Kind, section, format string, args ...any) {
	s.Add(Diagnostic{Level: Note, Kind: kind, Section: section, Message: fmt.Sprintf(format, args...)})
}

func Warnf(s Sink, kind Kind, section, format string, args ...any) {
	s.Add(Diagnostic{Level: Warning, Kind: kind, Section: section, Message: fmt.Sprintf(format, args...)})
}

func Errorf(s Sink, kind Kind, section, format string, args ...any) {
	s.Add(Diagnostic{Level: Error, Kind: kind, Section: section, Message: fmt.Sprintf(format, args...)})
}
