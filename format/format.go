// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package format provides matchers for the named string formats a schema
// field may declare.
package format

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Name identifies a string format.
type Name string

const (
	// URL accepts any syntactically valid URL which has a scheme.
	URL Name = "url"

	// HTTP accepts a URL whose scheme is either http or https.
	HTTP Name = "http"

	// HTTPS accepts a URL whose scheme is https.
	HTTPS Name = "https"

	// Email accepts local-part@domain addresses whose domain has
	// at least one dot.
	Email Name = "email"
)

// Matcher reports whether a string conforms to a format.
type Matcher func(string) bool

var v = validator.New()

var matchers = map[Name]Matcher{
	URL:   isURL,
	HTTP:  schemeIn("http", "https"),
	HTTPS: schemeIn("https"),
	Email: isEmail,
}

// Names returns every supported format name.
func Names() []Name {
	return []Name{URL, HTTP, HTTPS, Email}
}

// Lookup returns the Matcher registered for the given name.
func Lookup(name Name) (Matcher, bool) {
	m, ok := matchers[name]
	return m, ok
}

// UnknownFormatError is returned when matching against a format
// which does not exist.
type UnknownFormatError struct {
	Name Name
}

// Error implements the error interface.
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown string format: %q", string(e.Name))
}

// Match reports whether s conforms to the named format.
func Match(name Name, s string) (bool, error) {
	m, ok := Lookup(name)
	if !ok {
		return false, UnknownFormatError{Name: name}
	}
	return m(s), nil
}

func isURL(s string) bool {
	if s == "" {
		return false
	}
	return v.Var(s, "url") == nil
}

func schemeIn(schemes ...string) Matcher {
	return func(s string) bool {
		if !isURL(s) {
			return false
		}
		u, err := url.Parse(s)
		if err != nil {
			return false
		}
		for _, scheme := range schemes {
			if strings.EqualFold(u.Scheme, scheme) {
				return true
			}
		}
		return false
	}
}

func isEmail(s string) bool {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	if v.Var(s, "email") != nil {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at < 1 {
		return false
	}
	labels := strings.Split(s[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}
	return true
}
