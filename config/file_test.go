// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

type fsFunc func(string) (fs.File, error)

func (f fsFunc) Open(path string) (fs.File, error) {
	return f(path)
}

func TestFileReader_Read(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the fs.FS fails to open the file", func(t *testing.T) {
			openErr := errors.New("failed to open")
			fs := fsFunc(func(s string) (fs.File, error) {
				return nil, openErr
			})

			r := NewFileReader(fs, "config.yaml")
			_, err := io.ReadAll(r)
			if !assert.ErrorIs(t, err, openErr) {
				return
			}
		})
	})
}

func TestFileReader_Close(t *testing.T) {
	t.Run("will not return an error", func(t *testing.T) {
		t.Run("if Close is called before the underlying file has been opened", func(t *testing.T) {
			fs := fsFunc(func(s string) (fs.File, error) {
				return nil, nil
			})

			r := NewFileReader(fs, "config.yaml")
			err := r.Close()
			if !assert.Nil(t, err) {
				return
			}
		})
	})
}

func TestFileReader(t *testing.T) {
	t.Run("will read the file", func(t *testing.T) {
		t.Run("if it exists in the fs.FS", func(t *testing.T) {
			fsys := fstest.MapFS{
				"config.toml": &fstest.MapFile{Data: []byte(`a = 1`)},
			}

			r := NewFileReader(fsys, "config.toml")
			if !assert.Equal(t, "config.toml", r.Path()) {
				return
			}

			m, err := Read(FromToml(r))
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, map[string]any{"a": int64(1)}, m.Tree()) {
				return
			}
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if it is read after being closed", func(t *testing.T) {
			fsys := fstest.MapFS{
				"config.toml": &fstest.MapFile{Data: []byte(`a = 1`)},
			}

			r := NewFileReader(fsys, "config.toml")
			_, err := io.ReadAll(r)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Nil(t, r.Close()) {
				return
			}

			_, err = r.Read(make([]byte, 1))
			if !assert.ErrorIs(t, err, fs.ErrClosed) {
				return
			}
		})

		t.Run("on every read if the file does not exist", func(t *testing.T) {
			r := NewFileReader(fstest.MapFS{}, "config.toml")

			_, err := r.Read(make([]byte, 1))
			if !assert.ErrorIs(t, err, fs.ErrNotExist) {
				return
			}

			_, err = r.Read(make([]byte, 1))
			if !assert.ErrorIs(t, err, fs.ErrNotExist) {
				return
			}
		})
	})
}
