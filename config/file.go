// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"io"
	"io/fs"
	"sync"
)

// FileReader is an io.Reader that opens its file on the first call to Read.
// It pairs with the Sources in this package, which close their reader once
// it has been consumed.
type FileReader struct {
	fsys fs.FS
	path string

	openOnce sync.Once
	openErr  error
	file     fs.File
}

// NewFileReader configures a FileReader for the file at path within fsys.
func NewFileReader(fsys fs.FS, path string) *FileReader {
	return &FileReader{
		fsys: fsys,
		path: path,
	}
}

// Path returns the path of the file within its fs.FS.
func (r *FileReader) Path() string {
	return r.path
}

// Read implements the io.Reader interface.
func (r *FileReader) Read(b []byte) (int, error) {
	r.openOnce.Do(func() {
		r.file, r.openErr = r.fsys.Open(r.path)
	})
	if r.openErr != nil {
		return 0, r.openErr
	}
	if r.file == nil {
		return 0, fs.ErrClosed
	}
	return r.file.Read(b)
}

// Close implements the io.Closer interface. Closing a reader which
// was never read from is a no-op.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	return err
}

var _ io.ReadCloser = (*FileReader)(nil)
