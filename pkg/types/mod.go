package types

import (
	"sort"
	"strings"
)

// ModName identifies a mod file by its name. Two mods are the same mod
// when their names are byte-for-byte equal; there is no version or hash
// component.
type ModName string

// String returns the file name
func (m ModName) String() string {
	return string(m)
}

// ModSet is a set view over a sequence of mod names
type ModSet map[ModName]struct{}

// NewModSet builds a set from the given names
func NewModSet(names []ModName) ModSet {
	set := make(ModSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Has reports whether name is in the set
func (s ModSet) Has(name ModName) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in lexical order
func (s ModSet) Sorted() []ModName {
	names := make([]ModName, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ModNames converts plain strings to mod names
func ModNames(names ...string) []ModName {
	out := make([]ModName, len(names))
	for i, n := range names {
		out[i] = ModName(n)
	}
	return out
}

// Valid reports whether the name can be used as a file name directly inside
// the mods directory: non-empty, not a relative path element and without
// separators.
func (m ModName) Valid() bool {
	switch m {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsAny(string(m), "/\\\x00")
}
