package vendordb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/native/memstore"
	"github.com/alexiusacademia/framesec/internal/profile"
	"github.com/alexiusacademia/framesec/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"W 14 X 90.0":  "W14X90",
		"w14x90":       "W14X90",
		"IPE 300":      "IPE300",
		"UB457x191x67": "UB457X191X67",
		"HSS6X6X1/2":   "HSS6X6X1/2",
		"W14X90.05":    "W14X90.05",
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestTranslateLongestPrefix(t *testing.T) {
	db, ok := Builtin("BSShapes2006")
	require.True(t, ok)

	assert.Equal(t, "UKB457X191X67", db.Translate("UB457X191X67"))
	assert.Equal(t, "UKPFC150X90X24", db.Translate("PFC150X90X24"))
	assert.Equal(t, "IPE300", db.Translate("IPE300"))
}

func TestMatch(t *testing.T) {
	db, ok := Builtin("aisc14")
	require.True(t, ok)
	m, err := NewMatcher(db)
	require.NoError(t, err)

	name, ok := m.Match("W 14 X 90.0")
	require.True(t, ok)
	assert.Equal(t, "W14X90", name)

	_, ok = m.Match("W14X91")
	assert.False(t, ok)

	// cached answers agree with fresh ones
	name, ok = m.Match("W 14 X 90.0")
	assert.True(t, ok)
	assert.Equal(t, "W14X90", name)
}

func TestMatchPreservesLibraryCase(t *testing.T) {
	db, _ := Builtin("BSShapes2006")
	m, err := NewMatcher(db)
	require.NoError(t, err)

	name, ok := m.Match("UB 457 x 191 x 67")
	require.True(t, ok)
	assert.Equal(t, "UKB457x191x67", name)
}

func TestDisabledMatcher(t *testing.T) {
	m, err := NewMatcher(nil)
	require.NoError(t, err)
	assert.False(t, m.Enabled())
	assert.Nil(t, m.Database())

	_, ok := m.Match("W14X90")
	assert.False(t, ok)

	var nilMatcher *Matcher
	assert.False(t, nilMatcher.Enabled())
}

func TestTryImport(t *testing.T) {
	db, _ := Builtin("AISC14")
	m, err := NewMatcher(db)
	require.NoError(t, err)

	store := memstore.New()
	store.AddLibrary(db.File, "W14X90", native.ISection{T3: 356, T2: 368, Tf: 18, Tw: 11.2, T2b: 368, Tfb: 18})

	sec := section.Section{Name: "W 14 X 90.0", Material: section.MaterialRef{Name: "A992Fy50", Family: profile.FamilySteel}}
	ok, err := m.TryImport(store, sec)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, store.Calls["ImportFromLibrary"])

	rec := store.Records()[0]
	assert.Equal(t, "W 14 X 90.0", rec.Name)
	assert.Equal(t, "A992Fy50", rec.Material)
	assert.Equal(t, "AISC14.xml:W14X90", rec.Library)
}

func TestTryImportMissLeavesModelUntouched(t *testing.T) {
	db, _ := Builtin("AISC14")
	m, err := NewMatcher(db)
	require.NoError(t, err)

	store := memstore.New()
	ok, err := m.TryImport(store, section.Section{Name: "MyBeam"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, store.Records())
	assert.Zero(t, store.Calls["ImportFromLibrary"])
}

func TestTryImportNativeFailure(t *testing.T) {
	db, _ := Builtin("AISC14")
	m, err := NewMatcher(db)
	require.NoError(t, err)

	// The name matches but the store has no such library loaded.
	ok, err := m.TryImport(memstore.New(), section.Section{Name: "W14X90"})
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestResolveFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "Custom",
		"file": "Custom.xml",
		"prefixes": {"SHS": "HSS"},
		"names": ["HSS100X100X5"]
	}`), 0o644))

	db, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom.xml", db.File)

	m, err := NewMatcher(db)
	require.NoError(t, err)
	name, ok := m.Match("SHS 100 x 100 x 5.0")
	require.True(t, ok)
	assert.Equal(t, "HSS100X100X5", name)
}

func TestResolveErrors(t *testing.T) {
	_, err := Resolve("NoSuchDatabase")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "nofile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"X","names":[]}`), 0o644))
	_, err = Resolve(path)
	assert.Error(t, err)
}

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{"AISC14", "BSShapes2006", "Euro"}, BuiltinNames())
}
