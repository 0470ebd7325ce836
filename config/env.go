// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"io"
	"os"
	"strings"

	"github.com/z5labs/cfgschema/config/key"
	"github.com/z5labs/cfgschema/internal/try"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
//
// Only variables starting with the prefix are applied. The prefix is
// stripped, the rest is lower cased and "__" separates nested keys,
// e.g. APP_DATABASE__MAX_CONNS sets database.max_conns for prefix "APP_".
//
// A value which is a valid TOML literal keeps the literal's type, so
// 8080 is a number, true is a boolean and "8080" is the string 8080.
// Anything else is applied as a plain string.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source which will apply its config
// from the environment variables available to the
// current process.
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	vars := make(map[string]string)
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		vars[k] = v
	}
	return applyVars(store, src.prefix, vars)
}

// Dotenv represents a Source where its underlying format is a .env file.
// Keys are mapped the same way as [Env].
type Dotenv struct {
	r      io.Reader
	prefix string
}

// FromDotenv returns a Source which will apply its config from
// the variables in the .env document read from r.
// The reader is closed after it has been read if it implements io.Closer.
func FromDotenv(r io.Reader, prefix string) Dotenv {
	return Dotenv{
		r:      r,
		prefix: prefix,
	}
}

// Apply implements the Source interface.
func (src Dotenv) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	vars, err := godotenv.Parse(src.r)
	if err != nil {
		return err
	}
	return applyVars(store, src.prefix, vars)
}

func applyVars(store Store, prefix string, vars map[string]string) error {
	for name, value := range vars {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		chain := key.Parse(strings.ToLower(strings.ReplaceAll(rest, "__", ".")))
		if len(chain) == 0 {
			continue
		}
		err := store.Set(chain, literal(value))
		if err != nil {
			return err
		}
	}
	return nil
}

func literal(s string) any {
	if s == "" || strings.ContainsAny(s, "\r\n") {
		return s
	}

	var doc map[string]any
	err := toml.Unmarshal([]byte("v = "+s), &doc)
	if err != nil {
		return s
	}
	switch v := doc["v"].(type) {
	case string, bool, int64, float64:
		return v
	default:
		return s
	}
}
