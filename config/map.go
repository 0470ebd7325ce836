// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import "github.com/z5labs/cfgschema/config/key"

// Map is an ordinary map[string]any but implements the Source and Store interfaces.
type Map map[string]any

// Apply implements the Source interface. It recursively walks the underlying
// map to find key value pairs to set on the given store. Empty nested maps
// are set as-is so that a present but empty table stays present.
func (m Map) Apply(store Store) error {
	return walkMap(m, store, nil)
}

func walkMap(m map[string]any, store Store, chain key.Chain) error {
	for k, v := range m {
		path := chain.Append(k)

		sub, ok := asMap(v)
		if !ok {
			err := store.Set(path, v)
			if err != nil {
				return err
			}
			continue
		}
		if len(sub) == 0 {
			err := store.Set(path, map[string]any{})
			if err != nil {
				return err
			}
			continue
		}
		err := walkMap(sub, store, path)
		if err != nil {
			return err
		}
	}
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case Map:
		return x, true
	default:
		return nil, false
	}
}
