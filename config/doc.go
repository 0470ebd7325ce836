// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config loads loosely typed config trees and validates them against a [schema.Schema].
//
// The package is built around two small interfaces. A [Source] is anything which
// can apply its key value pairs to a [Store], and a [Store] is anything which can
// hold them. [Read] applies a list of sources, in order, to a fresh in-memory
// store so that values from later sources override values from earlier ones.
//
// # Sources
//
//   - [Map]: an in-memory tree.
//   - [FromToml], [FromJson], [FromYaml]: documents read from an io.Reader.
//   - [FromEnv]: environment variables, e.g. APP_DATABASE__HOST sets database.host.
//   - [FromDotenv]: the same mapping applied to a .env document.
//
// Readers can be layered in front of document sources, e.g. [NewFileReader] to lazily
// open a file from an fs.FS or [RenderTextTemplate] to render a text/template first.
//
// # Basic Usage
//
//	m, err := config.Read(
//	    config.FromToml(config.NewFileReader(os.DirFS("conf"), "app.toml")),
//	    config.FromEnv("APP_"),
//	)
//	if err != nil {
//	    return err
//	}
//	cfg, err := m.Validate(appSchema)
//
// A validated config can be decoded into a struct with [Decode]:
//
//	var app struct {
//	    Name     string        `config:"name"`
//	    Password schema.Secret `config:"password"`
//	}
//	err = config.Decode(cfg, &app)
//
// # Loading a single file
//
// [LoadToml] reads one TOML document relative to a base location and returns the
// parsed tree. Every failure is reported as a [LoadError].
package config
