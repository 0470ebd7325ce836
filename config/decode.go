// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/z5labs/cfgschema/schema"

	"github.com/go-viper/mapstructure/v2"
)

// Decode copies a validated config into v, which must be a pointer
// to a struct or map. Struct fields are matched using the "config" tag.
//
// A secret is decoded as-is into any field which can hold a schema.Secret
// and revealed for every other field type. Strings are decoded into
// types implementing encoding.TextUnmarshaler and time.Duration fields
// accept duration strings, e.g. "5s", or integer nanoseconds.
func Decode(cfg schema.Config, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  v,
		DecodeHook: composeDecodeHooks(
			secretHookFunc(),
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(cfg)
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to unmarshal a config
// value to a struct field whose type does not match the config
// value type, up to, coercion.
type TypeCoercionError struct {
	From  reflect.Type
	To    reflect.Type
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.From, e.To, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

// composeDecodeHooks feeds the output of each applicable hook into the next.
// Hooks returning errInvalidDecodeCondition are skipped.
func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		from := f
		for _, h := range hs {
			if !from.IsValid() {
				return nil, nil
			}
			v, err := mapstructure.DecodeHookExec(h, from, t)
			if err == errInvalidDecodeCondition {
				continue
			}
			if err != nil {
				return nil, TypeCoercionError{
					From:  f.Type(),
					To:    t.Type(),
					Cause: err,
				}
			}
			from = reflect.ValueOf(v)
		}
		if !from.IsValid() {
			return nil, nil
		}
		return from.Interface(), nil
	}
}

var secretType = reflect.TypeOf(schema.Secret{})

func secretHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f != secretType || secretType.AssignableTo(t) {
			return nil, errInvalidDecodeCondition
		}
		return data.(schema.Secret).Reveal(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t)
		u, ok := result.Interface().(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(reflect.ValueOf(data).String()))
		if err != nil {
			return nil, err
		}
		return result.Elem().Interface(), nil
	}
}

var durationType = reflect.TypeOf(time.Duration(0))

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != durationType || f == durationType {
			return nil, errInvalidDecodeCondition
		}

		v := reflect.ValueOf(data)
		switch f.Kind() {
		case reflect.String:
			return time.ParseDuration(v.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return time.Duration(v.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return time.Duration(v.Uint()), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}
