// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import "fmt"

// Kind is the closed set of value types a field may declare.
type Kind string

const (
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindObject  Kind = "object"
)

func (k Kind) valid() bool {
	switch k {
	case KindString, KindBoolean, KindNumber, KindObject:
		return true
	default:
		return false
	}
}

func (k Kind) scalar() bool {
	return k.valid() && k != KindObject
}

// kindOf maps a parsed value onto its Kind. Numbers are accepted in any
// Go integer or float representation since parsers disagree on them.
func kindOf(v any) (Kind, bool) {
	switch v.(type) {
	case string:
		return KindString, true
	case bool:
		return KindBoolean, true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return KindNumber, true
	case map[string]any, Config:
		return KindObject, true
	default:
		return "", false
	}
}

func describe(v any) string {
	if v == nil {
		return "null"
	}
	if k, ok := kindOf(v); ok {
		return string(k)
	}
	return fmt.Sprintf("%T", v)
}

func asTree(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case Config:
		return map[string]any(x), true
	default:
		return nil, false
	}
}
