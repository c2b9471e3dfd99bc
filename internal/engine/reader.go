// Package engine orchestrates reading canonical sections out of a native
// model and writing them back.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/framesec/internal/codec"
	"github.com/alexiusacademia/framesec/internal/diag"
	"github.com/alexiusacademia/framesec/internal/explicit"
	"github.com/alexiusacademia/framesec/internal/modifier"
	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/profile"
	"github.com/alexiusacademia/framesec/internal/section"
	"github.com/alexiusacademia/framesec/internal/tapered"
)

// Reader converts native frame properties into canonical sections.
type Reader struct {
	Model     native.Model
	Materials section.Materials
	Sink      diag.Sink
	Tolerance float64
}

// NewReader returns a reader. A nil sink discards diagnostics.
func NewReader(model native.Model, materials section.Materials, sink diag.Sink, tolerance float64) *Reader {
	if sink == nil {
		sink = diag.Discard()
	}
	return &Reader{Model: model, Materials: materials, Sink: sink, Tolerance: tolerance}
}

// readRun is the state of one Read call.
type readRun struct {
	*Reader
	exists   map[string]bool
	pulled   map[string]bool
	resolved map[string]section.Section
	backlog  *tapered.Backlog
	resolver *tapered.Resolver
}

// Read translates the named sections, or every section when ids is empty.
// Variable sections wait in a backlog until the sections they reference
// are resolved; referenced sections that were not requested are read as
// well but not returned. The result follows the request order and leaves
// out only sections whose references never resolve.
//
// The context is checked between backlog passes, never within one.
func (r *Reader) Read(ctx context.Context, ids []string) ([]section.Section, error) {
	names, err := r.Model.NameList()
	if err != nil {
		return nil, fmt.Errorf("list frame properties: %w", err)
	}

	run := &readRun{
		Reader:   r,
		exists:   make(map[string]bool, len(names)),
		pulled:   make(map[string]bool),
		resolved: make(map[string]section.Section),
		backlog:  tapered.NewBacklog(),
		resolver: tapered.NewResolver(r.Tolerance, r.Sink),
	}
	for _, n := range names {
		run.exists[n] = true
	}

	requested := dedupe(ids)
	if len(requested) == 0 {
		requested = names
	}
	for _, name := range requested {
		run.pulled[name] = true
		if !run.exists[name] {
			diag.Warnf(r.Sink, diag.NativeCall, name, "no such frame property")
			continue
		}
		run.readOne(name)
	}

	for run.backlog.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return run.collect(requested), err
		}
		err := run.backlog.Pass(run.attempt)
		if errors.Is(err, tapered.ErrNoProgress) {
			for _, name := range run.backlog.Drain() {
				diag.Errorf(r.Sink, diag.UnresolvableBacklog, name,
					"referenced sections never resolved (%s), section skipped", run.missing(name))
			}
		}
	}

	return run.collect(requested), nil
}

func (run *readRun) collect(requested []string) []section.Section {
	out := make([]section.Section, 0, len(requested))
	for _, name := range requested {
		if sec, ok := run.resolved[name]; ok {
			out = append(out, sec)
		}
	}
	return out
}

func (run *readRun) lookup(name string) (section.Section, bool) {
	sec, ok := run.resolved[name]
	return sec, ok
}

// readOne translates a single non-Variable section, or queues a Variable
// one.
func (run *readRun) readOne(name string) {
	t, err := run.Model.TypeOf(name)
	if err != nil {
		diag.Errorf(run.Sink, diag.NativeCall, name, "get type: %v", err)
		run.resolved[name] = run.explicitOnly(name)
		return
	}
	_, support := profile.CanonicalFor(t)
	if support == profile.Deferred {
		run.backlog.Push(name)
		return
	}

	params, material, err := run.Model.Shape(name)
	if err != nil {
		diag.Errorf(run.Sink, diag.NativeCall, name, "get %s parameters: %v", t, err)
		run.resolved[name] = run.explicitOnly(name)
		return
	}
	sec := section.Section{Name: name, Material: run.material(name, material)}

	if support == profile.Explicit {
		if g, ok := params.(native.GeneralSection); ok {
			props := explicit.ToAggregate(g.Props)
			sec.Properties = &props
		} else {
			diag.Warnf(run.Sink, diag.Invalid, name, "general section returned %T parameters", params)
			sec.Properties = run.fallbackProperties(name)
		}
	} else {
		p, err := codec.Decode(name, t, params, run.Sink)
		switch {
		case err == nil:
			sec.Profile = p
		case errors.Is(err, codec.ErrUnsupported):
			sec.Properties = run.fallbackProperties(name)
		default:
			diag.Warnf(run.Sink, diag.Invalid, name, "%v, reading explicit properties", err)
			sec.Properties = run.fallbackProperties(name)
		}
	}

	sec.Modifiers = run.modifiers(name)
	run.resolved[name] = sec
}

// attempt is one backlog visit of a Variable section.
func (run *readRun) attempt(name string) bool {
	segs, err := run.Model.NonPrismatic(name)
	if err != nil {
		diag.Errorf(run.Sink, diag.NativeCall, name, "get non-prismatic segments: %v", err)
		run.resolved[name] = run.explicitOnly(name)
		return true
	}

	for _, ref := range tapered.References(segs) {
		if _, ok := run.resolved[ref]; ok || run.pulled[ref] || !run.exists[ref] {
			continue
		}
		run.pulled[ref] = true
		run.readOne(ref)
	}

	sec, outcome, _ := run.resolver.Attempt(name, segs, run.lookup)
	switch outcome {
	case tapered.Pending:
		return false
	case tapered.Rejected:
		sec = section.Section{Name: name, Properties: run.fallbackProperties(name)}
	}
	sec.Modifiers = run.modifiers(name)
	run.resolved[name] = sec
	return true
}

// explicitOnly stands in for a section whose native definition could not
// be read. It keeps the section in the result with computed properties.
func (run *readRun) explicitOnly(name string) section.Section {
	return section.Section{Name: name, Properties: run.fallbackProperties(name), Modifiers: run.modifiers(name)}
}

// missing lists the unresolved references of a backlog entry.
func (run *readRun) missing(name string) string {
	segs, err := run.Model.NonPrismatic(name)
	if err != nil {
		return err.Error()
	}
	var out []string
	for _, ref := range tapered.References(segs) {
		if _, ok := run.resolved[ref]; !ok {
			out = append(out, fmt.Sprintf("%q", ref))
		}
	}
	return strings.Join(out, ", ")
}

func (run *readRun) material(owner, name string) section.MaterialRef {
	ref, ok := run.Materials.Lookup(name)
	if !ok && name != "" {
		diag.Warnf(run.Sink, diag.MissingMaterial, owner, "material %q is not among the translated materials", name)
	}
	return ref
}

// fallbackProperties reads the native computed properties. It never
// returns nil: on failure the properties are zero.
func (run *readRun) fallbackProperties(name string) *section.ExplicitProperties {
	g, err := run.Model.SectionProperties(name)
	if err != nil {
		diag.Warnf(run.Sink, diag.NativeCall, name, "get section properties: %v, using zero properties", err)
		return explicit.Zero()
	}
	props := explicit.ToAggregate(g)
	return &props
}

func (run *readRun) modifiers(name string) *section.StiffnessModifiers {
	values, err := run.Model.Modifiers(name)
	if err != nil {
		diag.Warnf(run.Sink, diag.NativeCall, name, "get modifiers: %v", err)
		return nil
	}
	return modifier.Decode(values)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
