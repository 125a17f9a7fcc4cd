package game

import "strings"

// tagValue returns what follows tag and its separating space on line.
func tagValue(line, tag string) string {
	return strings.TrimPrefix(strings.TrimPrefix(line, tag), " ")
}

// optionalLine gives "\nTAG value" if value is set, or nothing at all if it
// is not.
func optionalLine(tag string, value *string) string {
	if value == nil {
		return ""
	}
	return "\n" + tag + " " + *value
}

func copyOptional[E any](v *E) *E {
	if v == nil {
		return nil
	}
	vCopy := *v
	return &vCopy
}

func copyStrings(sl []string) []string {
	if sl == nil {
		return nil
	}
	slCopy := make([]string, len(sl))
	copy(slCopy, sl)
	return slCopy
}

func strPtr(s string) *string {
	return &s
}
