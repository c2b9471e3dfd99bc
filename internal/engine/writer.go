package engine

import (
	"context"
	"errors"

	"github.com/alexiusacademia/framesec/internal/codec"
	"github.com/alexiusacademia/framesec/internal/config"
	"github.com/alexiusacademia/framesec/internal/diag"
	"github.com/alexiusacademia/framesec/internal/explicit"
	"github.com/alexiusacademia/framesec/internal/modifier"
	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/section"
	"github.com/alexiusacademia/framesec/internal/tapered"
	"github.com/alexiusacademia/framesec/internal/vendordb"
)

// Writer issues the native calls that create canonical sections.
type Writer struct {
	Model native.Model
	// Matcher imports library sections by name; nil disables it.
	Matcher    *vendordb.Matcher
	Sink       diag.Sink
	TaperScale float64
}

// NewWriter returns a writer. A nil sink discards diagnostics and a
// non-positive scale selects config.DefaultTaperScale.
func NewWriter(model native.Model, matcher *vendordb.Matcher, sink diag.Sink, scale float64) *Writer {
	if sink == nil {
		sink = diag.Discard()
	}
	if scale <= 0 {
		scale = config.DefaultTaperScale
	}
	return &Writer{Model: model, Matcher: matcher, Sink: sink, TaperScale: scale}
}

// WriteAll writes every section and returns how many succeeded. The
// context is checked between sections.
func (w *Writer) WriteAll(ctx context.Context, secs []section.Section) (int, error) {
	n := 0
	for _, sec := range secs {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if w.Write(sec) {
			n++
		}
	}
	return n, nil
}

// Write creates one section in the native model. Library matches are
// imported whole; tapered sections are written as synthetic sub-sections
// plus one non-prismatic record; shapes without a native counterpart are
// written as General sections. Failures are recorded and reported as
// false. When a tapered write fails part way, sub-sections already written
// are deleted if the model supports it and left in place otherwise.
func (w *Writer) Write(sec section.Section) bool {
	if err := sec.Validate(); err != nil {
		diag.Errorf(w.Sink, diag.Invalid, sec.Name, "%v", err)
		return false
	}

	if w.Matcher.Enabled() {
		imported, err := w.Matcher.TryImport(w.Model, sec)
		if err != nil {
			diag.Warnf(w.Sink, diag.NativeCall, sec.Name, "%v, writing from the profile instead", err)
		}
		if imported {
			diag.Notef(w.Sink, diag.NativeCall, sec.Name, "imported from %s", w.Matcher.Database().File)
			return w.attachModifiers(sec)
		}
	}

	if sec.Tapered() {
		return w.writeTapered(sec)
	}
	return w.writePrismatic(sec)
}

func (w *Writer) writeTapered(sec section.Section) bool {
	subs, segs, err := tapered.Expand(sec, w.TaperScale, w.Sink)
	if err != nil {
		diag.Errorf(w.Sink, diag.Invalid, sec.Name, "%v", err)
		return false
	}
	for i, sub := range subs {
		if !w.writePrismatic(sub) {
			diag.Errorf(w.Sink, diag.NativeCall, sec.Name, "sub-section %q failed, tapered section not written", sub.Name)
			w.rollback(sec.Name, subs[:i])
			return false
		}
	}
	if err := w.Model.SetNonPrismatic(sec.Name, segs); err != nil {
		diag.Errorf(w.Sink, diag.NativeCall, sec.Name, "set non-prismatic: %v", err)
		w.rollback(sec.Name, subs)
		return false
	}
	return w.attachModifiers(sec)
}

// deleter is implemented by models that can remove frame properties.
type deleter interface {
	Delete(name string)
}

// rollback removes sub-sections already written for a failed taper. Models
// without Delete keep them and the leftovers are reported.
func (w *Writer) rollback(parent string, written []section.Section) {
	if len(written) == 0 {
		return
	}
	d, ok := w.Model.(deleter)
	if !ok {
		diag.Warnf(w.Sink, diag.NativeCall, parent, "%d sub-sections left in the model", len(written))
		return
	}
	for _, sub := range written {
		d.Delete(sub.Name)
	}
}

func (w *Writer) writePrismatic(sec section.Section) bool {
	var shape native.Shape
	if sec.Profile == nil {
		shape = explicit.FromAggregate(*sec.Properties)
	} else {
		encoded, err := codec.Encode(sec, w.Sink)
		switch {
		case err == nil:
			shape = encoded
		case errors.Is(err, codec.ErrUnsupported):
			props := sec.Properties
			if props == nil {
				diag.Warnf(w.Sink, diag.Unsupported, sec.Name, "no explicit properties supplied, writing zero properties")
				props = explicit.Zero()
			}
			shape = explicit.FromAggregate(*props)
		default:
			diag.Errorf(w.Sink, diag.Invalid, sec.Name, "%v", err)
			return false
		}
	}

	if err := w.Model.SetShape(sec.Name, sec.Material.Name, shape); err != nil {
		diag.Errorf(w.Sink, diag.NativeCall, sec.Name, "set %s: %v", shape.FrameType(), err)
		return false
	}
	return w.attachModifiers(sec)
}

func (w *Writer) attachModifiers(sec section.Section) bool {
	if sec.Modifiers == nil || sec.Modifiers.Unity() {
		return true
	}
	if err := w.Model.SetModifiers(sec.Name, modifier.Encode(sec.Modifiers)); err != nil {
		diag.Errorf(w.Sink, diag.NativeCall, sec.Name, "set modifiers: %v", err)
		return false
	}
	return true
}
