// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// Redacted is printed in place of every Secret value.
const Redacted = "****"

// Secret holds a sensitive scalar. Every string, log and serialized
// representation of a Secret is [Redacted].
type Secret struct {
	value any
}

// NewSecret wraps v. Wrapping a Secret returns it unchanged.
func NewSecret(v any) Secret {
	if s, ok := v.(Secret); ok {
		return s
	}
	return Secret{value: v}
}

// Reveal returns the wrapped value.
func (s Secret) Reveal() any {
	return s.value
}

// String implements the fmt.Stringer interface.
func (s Secret) String() string {
	return Redacted
}

// GoString implements the fmt.GoStringer interface.
func (s Secret) GoString() string {
	return Redacted
}

// Format implements the fmt.Formatter interface so that no verb or flag
// can print the underlying value.
func (s Secret) Format(f fmt.State, verb rune) {
	io.WriteString(f, Redacted)
}

// MarshalJSON implements the json.Marshaler interface.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(Redacted)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(Redacted), nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (s Secret) MarshalYAML() (any, error) {
	return Redacted, nil
}

// LogValue implements the slog.LogValuer interface.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}
