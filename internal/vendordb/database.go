// Package vendordb matches canonical section names against the native
// application's libraries of standard sections.
package vendordb

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Database is a vendor section library: the file the native API imports
// from, the names it contains, and the prefix translation from canonical
// family names to the vendor's naming convention.
type Database struct {
	Name     string            `json:"name"`
	File     string            `json:"file"`
	Prefixes map[string]string `json:"prefixes,omitempty"`
	Names    []string          `json:"names"`
}

// Translate replaces the longest matching family prefix of a normalized
// name, e.g. UB457X191X67 becomes UKB457X191X67.
func (d *Database) Translate(normalized string) string {
	keys := make([]string, 0, len(d.Prefixes))
	for k := range d.Prefixes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		if strings.HasPrefix(normalized, k) {
			return d.Prefixes[k] + strings.TrimPrefix(normalized, k)
		}
	}
	return normalized
}

// Builtin returns the named built-in database.
func Builtin(name string) (*Database, bool) {
	for i := range builtins {
		if strings.EqualFold(builtins[i].Name, name) {
			db := builtins[i]
			return &db, true
		}
	}
	return nil, false
}

// BuiltinNames lists the built-in database names.
func BuiltinNames() []string {
	out := make([]string, len(builtins))
	for i, db := range builtins {
		out[i] = db.Name
	}
	return out
}

// Resolve returns a built-in database by name, or loads a JSON database
// definition when ref names an existing file.
func Resolve(ref string) (*Database, error) {
	if db, ok := Builtin(ref); ok {
		return db, nil
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("vendor database %q is neither built in (%s) nor readable: %w",
			ref, strings.Join(BuiltinNames(), ", "), err)
	}
	var db Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("vendor database %q: %w", ref, err)
	}
	if db.File == "" {
		return nil, fmt.Errorf("vendor database %q: missing file name", ref)
	}
	return &db, nil
}

// The name lists below are excerpts of the vendor libraries, enough for the
// commonly scheduled members. Larger lists can be supplied as JSON files.
var builtins = []Database{
	{
		Name: "AISC14",
		File: "AISC14.xml",
		Names: []string{
			"W8X31", "W10X49", "W12X26", "W12X53", "W14X22", "W14X90", "W16X40", "W18X50",
			"W21X62", "W24X76", "W27X94", "W30X108", "W33X130", "W36X150",
			"C10X20", "C12X25", "MC12X31", "L4X4X1/2", "L6X4X3/8", "WT7X45",
			"HSS6X6X1/2", "HSS8X4X3/8", "HSS6.625X.280", "PIPE6STD",
		},
	},
	{
		Name:     "BSShapes2006",
		File:     "BSShapes2006.xml",
		Prefixes: map[string]string{"UB": "UKB", "UC": "UKC", "PFC": "UKPFC", "EA": "UKA", "UA": "UKA"},
		Names: []string{
			"UKB203x133x25", "UKB254x146x31", "UKB305x165x40", "UKB356x171x51",
			"UKB406x178x60", "UKB457x191x67", "UKB533x210x92", "UKB610x229x101",
			"UKC152x152x23", "UKC203x203x46", "UKC254x254x73", "UKC305x305x97",
			"UKPFC150x90x24", "UKPFC200x90x30", "UKPFC300x100x46",
			"UKA100x100x10", "UKA150x90x10",
		},
	},
	{
		Name: "Euro",
		File: "Euro.xml",
		Names: []string{
			"IPE200", "IPE240", "IPE300", "IPE360", "IPE400", "IPE500",
			"HEA200", "HEA300", "HEB200", "HEB300", "HEM300", "UPN200", "UPE200",
		},
	},
}
