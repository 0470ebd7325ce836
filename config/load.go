// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/z5labs/cfgschema/internal/noop"
	"github.com/z5labs/cfgschema/internal/try"
)

// LoadOption configures LoadToml.
type LoadOption func(*loadOptions)

type loadOptions struct {
	logHandler slog.Handler
}

// LogHandler sets the slog.Handler used to report what LoadToml reads.
// By default, nothing is logged.
func LogHandler(h slog.Handler) LoadOption {
	return func(lo *loadOptions) {
		lo.logHandler = h
	}
}

// LoadError occurs when LoadToml fails to produce a config tree.
type LoadError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e LoadError) Error() string {
	return fmt.Sprintf("failed to load config from %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e LoadError) Unwrap() error {
	return e.Cause
}

// LoadToml reads the TOML document at rel and returns it as a config tree
// ready for schema.Validate.
//
// A relative rel is resolved against base, which may be a directory, a file
// or a file:// URL. For a file, its directory is used, so a program can pass
// the path of one of its own files and keep config files beside it.
func LoadToml(base, rel string, opts ...LoadOption) (map[string]any, error) {
	lo := &loadOptions{
		logHandler: noop.LogHandler{},
	}
	for _, opt := range opts {
		opt(lo)
	}
	log := slog.New(lo.logHandler)

	path, err := resolvePath(base, rel)
	if err != nil {
		log.Error("failed to resolve config path", slog.String("base", base), slog.String("path", rel), slog.Any("error", err))
		return nil, LoadError{Path: rel, Cause: err}
	}

	log.Debug("loading config", slog.String("path", path))
	m, err := readToml(path)
	if err != nil {
		log.Error("failed to load config", slog.String("path", path), slog.Any("error", err))
		return nil, LoadError{Path: path, Cause: err}
	}
	log.LogAttrs(context.Background(), slog.LevelDebug, "loaded config", slog.String("path", path), slog.Int("keys", len(m)))
	return m, nil
}

func readToml(path string) (m map[string]any, err error) {
	r := NewFileReader(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	defer try.Close(&err, r)

	return parseToml(r)
}

func resolvePath(base, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel), nil
	}

	dir, err := baseDir(base)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, rel), nil
}

func baseDir(base string) (string, error) {
	if strings.HasPrefix(base, "file:") {
		u, err := url.Parse(base)
		if err != nil {
			return "", err
		}
		base = filepath.FromSlash(u.Path)
	}
	if base == "" {
		return os.Getwd()
	}

	info, err := os.Stat(base)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return filepath.Abs(base)
	}
	return filepath.Abs(filepath.Dir(base))
}
