// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"strconv"

	"github.com/z5labs/cfgschema/config/key"
	"github.com/z5labs/cfgschema/format"
	"github.com/z5labs/cfgschema/internal/ptr"
)

// Schema maps field names to the contract of each field.
type Schema map[string]Option

// Option describes the contract of a single field.
type Option struct {
	Kind Kind

	// Required defaults to true when nil. A field with a Default
	// never fails the presence check.
	Required *bool

	// Default is used when the field is missing from the input.
	// A nil Default means the field has no default.
	Default any

	// Format is only valid for string fields.
	Format format.Name

	// Secret is only valid for scalar fields.
	Secret bool

	// Properties is required for object fields and invalid otherwise.
	Properties Schema
}

func (o Option) required() bool {
	return ptr.DerefOr(o.Required, true)
}

func (o Option) check(path key.Chain) error {
	if !o.Kind.valid() {
		return InvalidOptionError{Path: path, Reason: "unknown kind " + strconv.Quote(string(o.Kind))}
	}
	if o.Kind == KindObject {
		if o.Properties == nil {
			return InvalidOptionError{Path: path, Reason: "object fields must declare properties"}
		}
		if o.Secret {
			return InvalidOptionError{Path: path, Reason: "object fields can not be secret"}
		}
	}
	if o.Kind.scalar() && o.Properties != nil {
		return InvalidOptionError{Path: path, Reason: string(o.Kind) + " fields can not declare properties"}
	}
	if o.Format == "" {
		return nil
	}
	if o.Kind != KindString {
		return InvalidOptionError{Path: path, Reason: "only string fields can declare a format"}
	}
	if _, ok := format.Lookup(o.Format); !ok {
		return InvalidOptionError{Path: path, Reason: "unknown format " + strconv.Quote(string(o.Format))}
	}
	return nil
}

// FieldOption configures an Option built by one of the kind constructors.
type FieldOption func(*Option)

// Optional marks the field as not required.
func Optional() FieldOption {
	return func(o *Option) {
		o.Required = ptr.Ref(false)
	}
}

// Required explicitly marks the field as required.
func Required() FieldOption {
	return func(o *Option) {
		o.Required = ptr.Ref(true)
	}
}

// Default sets the value used when the field is missing from the input.
func Default(v any) FieldOption {
	return func(o *Option) {
		o.Default = v
	}
}

// Format constrains a string field to the named format.
func Format(name format.Name) FieldOption {
	return func(o *Option) {
		o.Format = name
	}
}

// Sensitive wraps the resolved value of the field in a [Secret].
func Sensitive() FieldOption {
	return func(o *Option) {
		o.Secret = true
	}
}

func newOption(kind Kind, props Schema, opts []FieldOption) Option {
	o := Option{
		Kind:       kind,
		Properties: props,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// String returns an Option for a string field.
func String(opts ...FieldOption) Option {
	return newOption(KindString, nil, opts)
}

// Boolean returns an Option for a boolean field.
func Boolean(opts ...FieldOption) Option {
	return newOption(KindBoolean, nil, opts)
}

// Number returns an Option for a number field.
func Number(opts ...FieldOption) Option {
	return newOption(KindNumber, nil, opts)
}

// Object returns an Option for a nested object field.
func Object(props Schema, opts ...FieldOption) Option {
	if props == nil {
		props = Schema{}
	}
	return newOption(KindObject, props, opts)
}
