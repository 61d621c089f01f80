package domain

import "slices"

// Selection is the canonical set of package names an environment opts into.
// The constructor sorts and deduplicates, so two selections built from the
// same names in any order are equal: a selection denotes a set, not a
// sequence.
type Selection struct {
	names []InternedString
}

// NewSelection canonicalizes the given names into a Selection.
func NewSelection(names []string) Selection {
	if len(names) == 0 {
		return Selection{}
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	slices.Sort(sorted)

	deduped := slices.Compact(sorted)
	interned := make([]InternedString, len(deduped))
	for i, name := range deduped {
		interned[i] = NewInternedString(name)
	}
	return Selection{names: interned}
}

// Names returns the selected package names in sorted order.
func (s Selection) Names() []string {
	names := make([]string, len(s.names))
	for i, name := range s.names {
		names[i] = name.String()
	}
	return names
}

// Len returns the number of distinct selected names.
func (s Selection) Len() int {
	return len(s.names)
}

// IsEmpty reports whether the selection contains no names.
func (s Selection) IsEmpty() bool {
	return len(s.names) == 0
}
