// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

// Config is a validated config tree. It holds exactly one entry per schema
// field whose value is a scalar, a [Secret], a nested Config or nil for
// optional fields which resolved to nothing.
type Config map[string]any

// Lookup walks nested objects along path.
func (c Config) Lookup(path ...string) (any, bool) {
	var cur any = c
	for _, name := range path {
		tree, ok := asTree(cur)
		if !ok {
			return nil, false
		}
		cur, ok = tree[name]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Reveal returns a deep copy of c as plain maps with every Secret replaced
// by its underlying value. The result is a valid input for [Validate].
func (c Config) Reveal() map[string]any {
	out := make(map[string]any, len(c))
	for name, v := range c {
		switch x := v.(type) {
		case Config:
			out[name] = x.Reveal()
		case Secret:
			out[name] = x.Reveal()
		default:
			out[name] = x
		}
	}
	return out
}
