// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package schemadoc decodes schemas written as YAML or JSON documents.
//
// Every top level key names a field and maps to its option:
//
//	port:
//	  kind: number
//	  default: 8080
//	db:
//	  kind: object
//	  properties:
//	    password:
//	      kind: string
//	      secret: true
package schemadoc

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/z5labs/cfgschema/config/key"
	"github.com/z5labs/cfgschema/format"
	"github.com/z5labs/cfgschema/schema"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// InvalidDocumentError occurs when a schema document cannot be decoded.
type InvalidDocumentError struct {
	Path  key.Chain
	Cause error
}

// Error implements the error interface.
func (e InvalidDocumentError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("invalid schema document: %s", e.Cause)
	}
	return fmt.Sprintf("invalid schema document at %s: %s", e.Path.Key(), e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidDocumentError) Unwrap() error {
	return e.Cause
}

type optionDoc struct {
	Kind       string         `mapstructure:"kind"`
	Required   *bool          `mapstructure:"required"`
	Default    any            `mapstructure:"default"`
	Format     string         `mapstructure:"format"`
	Secret     bool           `mapstructure:"secret"`
	Properties map[string]any `mapstructure:"properties"`
}

// Read decodes the YAML or JSON schema document read from r.
// Unknown option keys are rejected. An empty document is an empty schema.
func Read(r io.Reader) (schema.Schema, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	err = yaml.Unmarshal(b, &doc)
	if err != nil {
		return nil, InvalidDocumentError{Cause: err}
	}
	return decodeSchema(doc, nil)
}

func decodeSchema(doc map[string]any, path key.Chain) (schema.Schema, error) {
	s := make(schema.Schema, len(doc))
	for _, name := range slices.Sorted(maps.Keys(doc)) {
		fieldPath := path.Append(name)

		opt, err := decodeOption(doc[name], fieldPath)
		if err != nil {
			return nil, err
		}
		s[name] = opt
	}
	return s, nil
}

func decodeOption(v any, path key.Chain) (schema.Option, error) {
	var od optionDoc
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &od,
	})
	if err != nil {
		return schema.Option{}, err
	}
	err = dec.Decode(v)
	if err != nil {
		return schema.Option{}, InvalidDocumentError{Path: path, Cause: err}
	}

	opt := schema.Option{
		Kind:     schema.Kind(od.Kind),
		Required: od.Required,
		Default:  od.Default,
		Format:   format.Name(od.Format),
		Secret:   od.Secret,
	}
	if od.Properties != nil {
		opt.Properties, err = decodeSchema(od.Properties, path)
		if err != nil {
			return schema.Option{}, err
		}
	}
	return opt, nil
}
