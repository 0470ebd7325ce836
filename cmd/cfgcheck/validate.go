// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/z5labs/cfgschema/config"
	"github.com/z5labs/cfgschema/internal/fixedpool"
	"github.com/z5labs/cfgschema/internal/schemadoc"
	"github.com/z5labs/cfgschema/internal/try"
	"github.com/z5labs/cfgschema/schema"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	errMissingSchema = errors.New("a schema document must be provided with --schema")
	errInvalidFiles  = errors.New("one or more config files are invalid")
)

type overrides struct {
	dotenv    string
	envPrefix string
}

type result struct {
	File   string        `json:"file"`
	Config schema.Config `json:"config"`
}

func newValidateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [flags] FILE...",
		Short: "Validate TOML config files",
		Long: `Validates every TOML file against the schema document and prints
each validated config as a JSON line. Secret values are always redacted.

Values from the --dotenv file and from environment variables starting
with --env-prefix override the values of every file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.validate(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.String("schema", "", "Path to the YAML or JSON schema document")
	flags.String("env-prefix", "", "Apply environment variables with this prefix over every file")
	flags.String("dotenv", "", "Apply the variables of this .env file over every file")
	flags.Int("concurrency", 4, "Maximum number of files validated at once")

	return cmd
}

func (c *cli) validate(cmd *cobra.Command, files []string) error {
	schemaPath := c.v.GetString("schema")
	if schemaPath == "" {
		return errMissingSchema
	}

	s, err := readSchema(schemaPath)
	if err != nil {
		c.log.Error("failed to read schema", zap.String("path", schemaPath), zap.Error(err))
		return err
	}

	ov := overrides{
		dotenv:    c.v.GetString("dotenv"),
		envPrefix: c.v.GetString("env-prefix"),
	}

	results := make([]*result, len(files))
	tasks := make([]fixedpool.Task, len(files))
	for i, file := range files {
		tasks[i] = func(ctx context.Context) error {
			cfg, err := validateFile(s, file, ov)
			if err != nil {
				c.log.Error("invalid config file", zap.String("file", file), zap.Error(err))
				return err
			}
			c.log.Debug("validated config file", zap.String("file", file))
			results[i] = &result{File: file, Config: cfg}
			return nil
		}
	}

	err = fixedpool.Wait(cmd.Context(), c.v.GetInt("concurrency"), tasks...)

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, res := range results {
		if res == nil {
			continue
		}
		encErr := enc.Encode(res)
		if encErr != nil {
			return encErr
		}
	}
	if err != nil {
		return errInvalidFiles
	}
	return nil
}

func validateFile(s schema.Schema, file string, ov overrides) (schema.Config, error) {
	tree, err := config.LoadToml(".", file)
	if err != nil {
		return nil, err
	}

	srcs := []config.Source{config.Map(tree)}
	if ov.dotenv != "" {
		srcs = append(srcs, config.FromDotenv(openFile(ov.dotenv), ov.envPrefix))
	}
	if ov.envPrefix != "" {
		srcs = append(srcs, config.FromEnv(ov.envPrefix))
	}

	m, err := config.Read(srcs...)
	if err != nil {
		return nil, err
	}
	return m.Validate(s)
}

func readSchema(path string) (s schema.Schema, err error) {
	r := openFile(path)
	defer try.Close(&err, r)

	return schemadoc.Read(r)
}

func openFile(path string) *config.FileReader {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return config.NewFileReader(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}
