// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schemadoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/z5labs/cfgschema/format"
	"github.com/z5labs/cfgschema/schema"

	"github.com/stretchr/testify/assert"
)

type readFunc func([]byte) (int, error)

func (f readFunc) Read(b []byte) (int, error) {
	return f(b)
}

func TestRead(t *testing.T) {
	t.Run("will decode every option", func(t *testing.T) {
		t.Run("if the document is YAML", func(t *testing.T) {
			s, err := Read(strings.NewReader(`
port:
  kind: number
  default: 8080
name:
  kind: string
  required: false
db:
  kind: object
  properties:
    url:
      kind: string
      format: url
    password:
      kind: string
      secret: true
`))
			if !assert.Nil(t, err) {
				return
			}

			optional := false
			expected := schema.Schema{
				"port": {Kind: schema.KindNumber, Default: 8080},
				"name": {Kind: schema.KindString, Required: &optional},
				"db": {
					Kind: schema.KindObject,
					Properties: schema.Schema{
						"url":      {Kind: schema.KindString, Format: format.URL},
						"password": {Kind: schema.KindString, Secret: true},
					},
				},
			}
			if !assert.Equal(t, expected, s) {
				return
			}
		})

		t.Run("if the document is JSON", func(t *testing.T) {
			s, err := Read(strings.NewReader(`{"debug": {"kind": "boolean", "default": false}, "empty": {"kind": "object", "properties": {}}}`))
			if !assert.Nil(t, err) {
				return
			}

			expected := schema.Schema{
				"debug": {Kind: schema.KindBoolean, Default: false},
				"empty": {Kind: schema.KindObject, Properties: schema.Schema{}},
			}
			if !assert.Equal(t, expected, s) {
				return
			}
		})
	})

	t.Run("will produce a schema usable by schema.Validate", func(t *testing.T) {
		s, err := Read(strings.NewReader(`
port:
  kind: number
  default: 8080
token:
  kind: string
  secret: true
`))
		if !assert.Nil(t, err) {
			return
		}

		cfg, err := schema.Validate(s, map[string]any{"token": "abc"})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, 8080, cfg["port"]) {
			return
		}
		if !assert.Equal(t, schema.NewSecret("abc"), cfg["token"]) {
			return
		}
	})

	t.Run("will return an empty schema", func(t *testing.T) {
		t.Run("if the document is empty", func(t *testing.T) {
			s, err := Read(strings.NewReader(``))
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Empty(t, s) {
				return
			}
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the io.Reader fails", func(t *testing.T) {
			readErr := errors.New("failed to read")
			_, err := Read(readFunc(func(b []byte) (int, error) {
				return 0, readErr
			}))
			if !assert.ErrorIs(t, err, readErr) {
				return
			}
		})

		t.Run("if the document is not valid YAML", func(t *testing.T) {
			_, err := Read(strings.NewReader(`port: [`))

			var ierr InvalidDocumentError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.Empty(t, ierr.Path) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
		})

		t.Run("if an option has an unknown key", func(t *testing.T) {
			_, err := Read(strings.NewReader(`
db:
  kind: object
  properties:
    host:
      kind: string
      type: string
`))

			var ierr InvalidDocumentError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.Equal(t, "db.host", ierr.Path.Key()) {
				return
			}
			if !assert.Contains(t, ierr.Error(), "db.host") {
				return
			}
		})

		t.Run("if an option is not a mapping", func(t *testing.T) {
			_, err := Read(strings.NewReader(`port: number`))

			var ierr InvalidDocumentError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.Equal(t, "port", ierr.Path.Key()) {
				return
			}
		})
	})
}
