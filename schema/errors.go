// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"errors"
	"fmt"

	"github.com/z5labs/cfgschema/config/key"
	"github.com/z5labs/cfgschema/format"
)

// ErrInvalidConfig is wrapped by every error returned from [Validate].
var ErrInvalidConfig = errors.New("invalid config")

// MissingFieldError occurs when a required field without a default
// is missing from the input.
type MissingFieldError struct {
	Path key.Chain
}

// Error implements the error interface.
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("config item %s not found", e.Path.Key())
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e MissingFieldError) Unwrap() error {
	return ErrInvalidConfig
}

// TypeMismatchError occurs when the resolved value of a field does not
// match the declared Kind.
type TypeMismatchError struct {
	Path     key.Chain
	Expected Kind
	Actual   string
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("config item %s has invalid type: received %s, expecting %s", e.Path.Key(), e.Actual, e.Expected)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e TypeMismatchError) Unwrap() error {
	return ErrInvalidConfig
}

// FormatError occurs when a string field does not conform to its format.
// Value is left empty for secret fields.
type FormatError struct {
	Path   key.Chain
	Format format.Name
	Value  string
}

// Error implements the error interface.
func (e FormatError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config item %s is not a valid %s", e.Path.Key(), e.Format)
	}
	return fmt.Sprintf("config item %s is not a valid %s: %q", e.Path.Key(), e.Format, e.Value)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e FormatError) Unwrap() error {
	return ErrInvalidConfig
}

// InvalidOptionError occurs when the schema itself is malformed, e.g. an
// object field without properties or a format on a number field.
type InvalidOptionError struct {
	Path   key.Chain
	Reason string
}

// Error implements the error interface.
func (e InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid schema option for %s: %s", e.Path.Key(), e.Reason)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidOptionError) Unwrap() error {
	return ErrInvalidConfig
}
