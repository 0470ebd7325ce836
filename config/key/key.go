// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for addressing values in nested config trees.
package key

import (
	"strings"
)

// Keyer is a common interface all value key types must implement.
type Keyer interface {
	Key() string
}

// Chain represents nested keys, outermost first.
type Chain []Keyer

// Key implements the [Keyer] interface. The keys are joined with ".".
func (k Chain) Key() string {
	ss := make([]string, len(k))
	for i := range len(k) {
		ss[i] = k[i].Key()
	}
	return strings.Join(ss, ".")
}

// Append returns a new Chain with name added to the end. The receiver
// is never modified so sibling paths never share a backing array.
func (k Chain) Append(name string) Chain {
	c := make(Chain, len(k), len(k)+1)
	copy(c, k)
	return append(c, Name(name))
}

// Last returns the innermost key of the chain or an empty string.
func (k Chain) Last() string {
	if len(k) == 0 {
		return ""
	}
	return k[len(k)-1].Key()
}

// Name represents a single key.
type Name string

// Key implements the [Keyer] interface.
func (k Name) Key() string {
	return string(k)
}

// Parse splits a dotted path, e.g. "database.host", into a Chain.
// Empty segments are dropped.
func Parse(path string) Chain {
	var c Chain
	for _, s := range strings.Split(path, ".") {
		if s == "" {
			continue
		}
		c = append(c, Name(s))
	}
	return c
}
