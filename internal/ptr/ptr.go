// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package ptr provides helpers for optional values held by reference.
package ptr

// Ref returns a reference to a copy of v.
func Ref[T any](v T) *T {
	return &v
}

// DerefOr returns *t or def when t is nil.
func DerefOr[T any](t *T, def T) T {
	if t == nil {
		return def
	}
	return *t
}
