// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package noop provides no-op implementations used as defaults
// when no real implementation is configured.
package noop

import (
	"context"
	"log/slog"
)

// LogHandler is a slog.Handler which discards every record.
type LogHandler struct{}

// Enabled always reports false so callers can skip building records.
func (LogHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (LogHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (h LogHandler) WithAttrs(_ []slog.Attr) slog.Handler        { return h }
func (h LogHandler) WithGroup(_ string) slog.Handler             { return h }
