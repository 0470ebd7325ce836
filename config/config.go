// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"github.com/z5labs/cfgschema/config/key"
	"github.com/z5labs/cfgschema/schema"
)

// Store represents a general key value structure.
type Store interface {
	Set(key.Keyer, any) error
}

// Source defines valid config sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// Manager holds the merged tree built from one or more Sources.
// A Manager is never modified after Read returns it.
type Manager struct {
	store Map
}

// Read applies every Source, in order, to an empty store.
// Subsequent sources override previous sources.
func Read(srcs ...Source) (*Manager, error) {
	store := make(Map)
	for _, src := range srcs {
		err := src.Apply(store)
		if err != nil {
			return nil, err
		}
	}
	m := &Manager{
		store: store,
	}
	return m, nil
}

// Apply implements the Source interface so a Manager can be
// layered underneath other Sources.
func (m *Manager) Apply(store Store) error {
	return m.store.Apply(store)
}

// Tree returns a deep copy of the merged config tree.
func (m *Manager) Tree() map[string]any {
	return copyTree(m.store)
}

// Validate validates the merged tree against s.
func (m *Manager) Validate(s schema.Schema) (schema.Config, error) {
	return schema.Validate(s, m.store)
}

// Unmarshal validates the merged tree against s and decodes
// the result into v. See [Decode] for the decoding rules.
func (m *Manager) Unmarshal(s schema.Schema, v any) error {
	cfg, err := m.Validate(s)
	if err != nil {
		return err
	}
	return Decode(cfg, v)
}

func copyTree(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			out[k] = copyTree(sub)
			continue
		}
		out[k] = v
	}
	return out
}
