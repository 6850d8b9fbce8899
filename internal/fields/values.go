// Package fields holds user-supplied field values in the order they were given.
//
// Order matters: two labels that normalize to the same key resolve to the
// value that was set last, so values are kept as an ordered slice rather
// than a map.
package fields

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAssignment is returned when a label=value pair cannot be parsed
var ErrInvalidAssignment = errors.New("invalid field assignment")

// Field is a single label/value pair as typed by the user
type Field struct {
	Label string
	Value string
}

// Values is an ordered list of field values; later entries win
type Values []Field

// Set appends a label/value pair
func (v *Values) Set(label, value string) {
	*v = append(*v, Field{Label: label, Value: value})
}

// Merge appends all entries of other after the current ones
func (v Values) Merge(other Values) Values {
	merged := make(Values, 0, len(v)+len(other))
	merged = append(merged, v...)
	return append(merged, other...)
}

// Lookup returns the last value set for an exact label
func (v Values) Lookup(label string) (string, bool) {
	for i := len(v) - 1; i >= 0; i-- {
		if v[i].Label == label {
			return v[i].Value, true
		}
	}
	return "", false
}

// Labels returns the labels in insertion order, duplicates included
func (v Values) Labels() []string {
	labels := make([]string, len(v))
	for i, f := range v {
		labels[i] = f.Label
	}
	return labels
}

// ParseAssignment parses "label=value"; the label may contain spaces,
// the value may contain further '=' characters
func ParseAssignment(s string) (Field, error) {
	label, value, ok := strings.Cut(s, "=")
	if !ok {
		return Field{}, fmt.Errorf("%w: %q (expected label=value)", ErrInvalidAssignment, s)
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return Field{}, fmt.Errorf("%w: %q has an empty label", ErrInvalidAssignment, s)
	}

	return Field{Label: label, Value: value}, nil
}

// ParseAssignments parses a list of --set style assignments in order
func ParseAssignments(assignments []string) (Values, error) {
	values := make(Values, 0, len(assignments))
	for _, a := range assignments {
		f, err := ParseAssignment(a)
		if err != nil {
			return nil, err
		}
		values = append(values, f)
	}
	return values, nil
}
