// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"maps"
	"slices"

	"github.com/z5labs/cfgschema/config/key"
	"github.com/z5labs/cfgschema/format"
)

// Validate resolves every field of s against input and returns a freshly
// allocated Config. A nil input is treated as empty. Keys in input which
// are not part of s are ignored.
func Validate(s Schema, input map[string]any) (Config, error) {
	return validateTree(s, input, nil)
}

func validateTree(s Schema, input map[string]any, path key.Chain) (Config, error) {
	cfg := make(Config, len(s))
	for _, name := range slices.Sorted(maps.Keys(s)) {
		v, err := validateField(s[name], input, name, path.Append(name))
		if err != nil {
			return nil, err
		}
		cfg[name] = v
	}
	return cfg, nil
}

func validateField(opt Option, input map[string]any, name string, path key.Chain) (any, error) {
	err := opt.check(path)
	if err != nil {
		return nil, err
	}

	value, present := input[name]
	if !present && opt.required() && opt.Default == nil {
		return nil, MissingFieldError{Path: path}
	}

	resolved := value
	if resolved == nil {
		resolved = opt.Default
	}
	if resolved == nil {
		// only reachable for required fields when the input holds an explicit null
		if opt.required() {
			return nil, TypeMismatchError{Path: path, Expected: opt.Kind, Actual: describe(nil)}
		}
		if opt.Kind == KindObject {
			return validateTree(opt.Properties, nil, path)
		}
		return nil, nil
	}

	if opt.Kind == KindObject {
		tree, ok := asTree(resolved)
		if !ok {
			return nil, TypeMismatchError{Path: path, Expected: KindObject, Actual: describe(resolved)}
		}
		return validateTree(opt.Properties, tree, path)
	}

	actual, ok := kindOf(resolved)
	if !ok || actual != opt.Kind {
		return nil, TypeMismatchError{Path: path, Expected: opt.Kind, Actual: describe(resolved)}
	}

	if opt.Format != "" {
		s := resolved.(string)
		if ok, _ := format.Match(opt.Format, s); !ok {
			ferr := FormatError{Path: path, Format: opt.Format}
			if !opt.Secret {
				ferr.Value = s
			}
			return nil, ferr
		}
	}

	if opt.Secret {
		return NewSecret(resolved), nil
	}
	return resolved, nil
}
