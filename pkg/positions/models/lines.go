package models

import "sort"

// Selection is the raw answer of a multi-select prompt: line label -> selected.
type Selection map[string]bool

// Any reports whether at least one label is selected.
func (s Selection) Any() bool {
	for _, selected := range s {
		if selected {
			return true
		}
	}
	return false
}

// Set projects the selection down to the labels that are selected.
func (s Selection) Set() LineSet {
	set := make(LineSet, len(s))
	for label, selected := range s {
		if selected {
			set[label] = struct{}{}
		}
	}
	return set
}

// LineSet is a set of selected line labels. Order carries no meaning.
type LineSet map[string]struct{}

// NewLineSet builds a set from the given labels.
func NewLineSet(labels ...string) LineSet {
	set := make(LineSet, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}

func (s LineSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Labels returns the labels sorted, so encoded records are stable.
func (s LineSet) Labels() []string {
	labels := make([]string, 0, len(s))
	for l := range s {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

func (s LineSet) Equal(other LineSet) bool {
	if len(s) != len(other) {
		return false
	}
	for l := range s {
		if !other.Has(l) {
			return false
		}
	}
	return true
}
