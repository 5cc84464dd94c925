// Package css parses inline style attributes into normalized declarations and
// matches them against caller-declared named styles. This is not a CSS engine:
// a declaration either matches a known named style exactly (after
// normalization on both sides) or it is ignored.
package css

import (
	"sort"
	"strings"
)

// Declaration is one normalized property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// String renders the declaration in canonical form, "property: value".
func (d Declaration) String() string {
	return d.Property + ": " + d.Value
}

// Declarations is an ordered set of declarations describing one named style.
type Declarations []Declaration

// String renders the set in canonical form, declarations joined by "; ".
func (ds Declarations) String() string {
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, "; ")
}

// FromMap builds a declaration set from property/value pairs, normalized and
// ordered by property name so equal maps always render identically.
func FromMap(props map[string]string) Declarations {
	if len(props) == 0 {
		return nil
	}
	ds := make(Declarations, 0, len(props))
	for p, v := range props {
		ds = append(ds, Declaration{Property: normalizeProperty(p), Value: normalizeValue(v)})
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].Property < ds[j].Property })
	return ds
}

// Index maps canonical declaration renderings back to the style identifier
// that declared them. Built once per conversion from the caller's style map.
type Index map[string]string

// NewIndex builds a reverse index from style identifier to declarations.
// When two identifiers render identically the lexicographically smaller
// identifier wins, keeping resolution deterministic.
func NewIndex(styles map[string]Declarations) Index {
	if len(styles) == 0 {
		return nil
	}
	ix := make(Index, len(styles))
	for name, ds := range styles {
		key := ds.String()
		if key == "" {
			continue
		}
		if prev, ok := ix[key]; ok && prev <= name {
			continue
		}
		ix[key] = name
	}
	return ix
}

// Resolve returns the style identifier whose declarations render exactly as
// the given declaration.
func (ix Index) Resolve(d Declaration) (string, bool) {
	if len(ix) == 0 {
		return "", false
	}
	name, ok := ix[d.String()]
	return name, ok
}

func normalizeProperty(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}

func normalizeValue(v string) string {
	return strings.ToLower(strings.Join(strings.Fields(v), " "))
}
