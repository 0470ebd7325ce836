// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type cli struct {
	v   *viper.Viper
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{
		v:   viper.New(),
		log: zap.NewNop(),
	}
	c.v.SetEnvPrefix("CFGCHECK")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "cfgcheck",
		Short:         "Validate config files against a schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := c.v.BindPFlags(cmd.Flags())
			if err != nil {
				return err
			}

			log, err := newLogger(cmd.ErrOrStderr(), c.v.GetString("log-level"))
			if err != nil {
				return err
			}
			c.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
	}
	cmd.PersistentFlags().String("log-level", "info", "Minimum level of logs written to stderr (debug, info, warn, error)")

	cmd.AddCommand(newValidateCmd(c))
	return cmd
}

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}
