// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"errors"
	"fmt"

	"github.com/z5labs/cfgschema/format"
)

func ExampleValidate() {
	s := Schema{
		"name": String(),
		"port": Number(Default(8080)),
		"database": Object(Schema{
			"url":      String(Format(format.URL)),
			"password": String(Sensitive()),
		}),
	}

	cfg, err := Validate(s, map[string]any{
		"name": "inventory",
		"database": map[string]any{
			"url":      "postgres://db.internal:5432/inventory",
			"password": "hunter2",
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	password, _ := cfg.Lookup("database", "password")
	fmt.Println(cfg["port"])
	fmt.Println(password)
	fmt.Println(password.(Secret).Reveal())
	// Output:
	// 8080
	// ****
	// hunter2
}

func ExampleValidate_missingField() {
	_, err := Validate(Schema{"name": String()}, nil)

	var merr MissingFieldError
	fmt.Println(errors.As(err, &merr))
	fmt.Println(err)
	// Output:
	// true
	// config item name not found
}
