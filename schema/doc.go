// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package schema validates loosely typed config trees against a declarative schema.
//
// A [Schema] maps field names to an [Option] describing the field's contract: its
// [Kind], whether it is required, a default value, a string format and whether
// the value is sensitive. Object fields nest another Schema in their properties.
//
// # Basic Usage
//
// Describe the expected shape of the config:
//
//	s := schema.Schema{
//	    "name": schema.String(),
//	    "port": schema.Number(schema.Default(8080)),
//	    "database": schema.Object(schema.Schema{
//	        "url":      schema.String(schema.Format(format.URL)),
//	        "password": schema.String(schema.Sensitive()),
//	    }),
//	}
//
// Then validate a tree produced by any parser:
//
//	cfg, err := schema.Validate(s, tree)
//	if err != nil {
//	    return err
//	}
//	password := cfg["database"].(schema.Config)["password"].(schema.Secret).Reveal()
//
// # Defaults and Presence
//
// A field which is missing from the input resolves to its default. A field without
// a default must be present unless it is explicitly optional, in which case it
// resolves to nil. Defaults never override a value which is present in the input,
// even when that value is "", 0 or false.
//
// # Secrets
//
// Sensitive fields are wrapped in a [Secret]. Printing, logging or serializing a
// Secret always produces [Redacted]; the value is only reachable via [Secret.Reveal].
//
// # Error Handling
//
// Validation stops at the first invalid field. Fields are visited in lexical order
// at every level, so the reported error is deterministic. Every validation error
// wraps [ErrInvalidConfig] and can be matched with errors.As:
//   - [MissingFieldError]
//   - [TypeMismatchError]
//   - [FormatError]
//   - [InvalidOptionError]
package schema
