// Package util contains small helpers shared by the other packages.
package util

import (
	"sort"
	"strings"
)

// OrderedKeys returns the keys of m, ordered a particular way. The order is
// guaranteed to be the same on every run.
//
// As of this writing, the order is alphabetical, but this function does not
// guarantee this will always be the case.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Lines splits s into lines on '\n'. A single trailing newline does not
// produce a final empty line, and a '\r' immediately before a line break is
// dropped along with it. The empty string has no lines.
func Lines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return lines
}

// FirstWord returns the part of s before the first space. If s contains no
// space, ok is false and the returned word is empty.
func FirstWord(s string) (word string, ok bool) {
	word, _, ok = strings.Cut(s, " ")
	if !ok {
		return "", false
	}
	return word, true
}

// LeadingToken returns the part of s before the first space, or all of s if
// there is no space.
func LeadingToken(s string) string {
	word, _, _ := strings.Cut(s, " ")
	return word
}
