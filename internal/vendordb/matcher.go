package vendordb

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alexiusacademia/framesec/internal/native"
	"github.com/alexiusacademia/framesec/internal/section"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Normalize brings a section name into library form: upper case, no
// whitespace, and no trailing ".0" on any "X"-separated dimension token.
// "W 14 X 90.0" becomes "W14X90".
func Normalize(name string) string {
	s := strings.ToUpper(name)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	tokens := strings.Split(s, "X")
	for i, t := range tokens {
		tokens[i] = strings.TrimSuffix(t, ".0")
	}
	return strings.Join(tokens, "X")
}

// key is the case- and space-insensitive lookup key of a library name.
func key(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, name)
}

type match struct {
	name string
	ok   bool
}

// Matcher looks canonical names up in one vendor database. A Matcher
// without a database never matches.
type Matcher struct {
	db    *Database
	index map[string]string
	cache *lru.Cache[string, match]
}

// NewMatcher builds a matcher for db. A nil db disables matching.
func NewMatcher(db *Database) (*Matcher, error) {
	m := &Matcher{db: db}
	if db == nil {
		return m, nil
	}
	cache, err := lru.New[string, match](1024)
	if err != nil {
		return nil, fmt.Errorf("create match cache: %w", err)
	}
	m.cache = cache
	m.index = make(map[string]string, len(db.Names))
	for _, n := range db.Names {
		m.index[key(n)] = n
	}
	return m, nil
}

// Enabled reports whether a database is configured.
func (m *Matcher) Enabled() bool {
	return m != nil && m.db != nil
}

// Database returns the configured database, nil when disabled.
func (m *Matcher) Database() *Database {
	if m == nil {
		return nil
	}
	return m.db
}

// Match returns the library name for a canonical section name.
func (m *Matcher) Match(name string) (string, bool) {
	if !m.Enabled() {
		return "", false
	}
	if hit, ok := m.cache.Get(name); ok {
		return hit.name, hit.ok
	}
	libName, ok := m.index[key(m.db.Translate(Normalize(name)))]
	m.cache.Add(name, match{name: libName, ok: ok})
	return libName, ok
}

// TryImport imports sec from the vendor library when its name matches.
// It reports true when the native side now holds the fully populated
// section; on a miss the model is left untouched.
func (m *Matcher) TryImport(model native.Model, sec section.Section) (bool, error) {
	libName, ok := m.Match(sec.Name)
	if !ok {
		return false, nil
	}
	if err := model.ImportFromLibrary(sec.Name, sec.Material.Name, m.db.File, libName); err != nil {
		return false, fmt.Errorf("import %q as %q from %s: %w", sec.Name, libName, m.db.File, err)
	}
	return true, nil
}
