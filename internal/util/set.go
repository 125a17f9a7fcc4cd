package util

import "sort"

// StringSet is a set of strings backed by a map. The zero value is not usable;
// create one with NewStringSet or StringSetOf.
type StringSet map[string]bool

// NewStringSet creates a new empty StringSet.
func NewStringSet() StringSet {
	return StringSet{}
}

// StringSetOf creates a StringSet containing every element of sl. Duplicates
// in sl have no effect.
func StringSetOf(sl []string) StringSet {
	s := make(StringSet, len(sl))
	for i := range sl {
		s.Add(sl[i])
	}
	return s
}

// Has returns whether value is in the set.
func (s StringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Add adds value to the set. Has no effect if it is already there.
func (s StringSet) Add(value string) {
	s[value] = true
}

// Elements returns the elements of the set, alphabetized.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	sort.Strings(elems)
	return elems
}
