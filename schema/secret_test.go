// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSecret_Reveal(t *testing.T) {
	testCases := []struct {
		name  string
		value any
	}{
		{name: "number", value: 123},
		{name: "string", value: "hunter2"},
		{name: "bool", value: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSecret(tc.value)
			require.Equal(t, tc.value, s.Reveal())
			require.Equal(t, tc.value, s.Reveal(), "reveal must not consume the value")
		})
	}
}

func TestNewSecret(t *testing.T) {
	t.Run("will not nest secrets", func(t *testing.T) {
		inner := NewSecret("hunter2")
		outer := NewSecret(inner)

		require.Equal(t, inner, outer)
		require.Equal(t, "hunter2", outer.Reveal())
	})
}

func TestSecret_Redaction(t *testing.T) {
	s := NewSecret(123)

	t.Run("will redact fmt verbs", func(t *testing.T) {
		verbs := []string{"%v", "%+v", "%#v", "%s", "%q", "%d", "%x", "%10v", "%T"}
		for _, verb := range verbs {
			out := fmt.Sprintf(verb, s)
			if verb == "%T" {
				require.Equal(t, "schema.Secret", out)
				continue
			}
			require.NotContains(t, out, "123", "verb %s leaked the secret", verb)
			require.Contains(t, out, Redacted)
		}
	})

	t.Run("will redact pointers", func(t *testing.T) {
		out := fmt.Sprintf("%v", &s)
		require.NotContains(t, out, "123")
	})

	t.Run("will redact when nested in a config", func(t *testing.T) {
		cfg := Config{"pin": s, "nested": Config{"pin": s}}
		out := fmt.Sprintf("%v %+v %#v", cfg, cfg, cfg)
		require.NotContains(t, out, "123")
	})

	t.Run("will redact json", func(t *testing.T) {
		b, err := json.Marshal(Config{"pin": s})
		require.NoError(t, err)
		require.JSONEq(t, `{"pin":"****"}`, string(b))
	})

	t.Run("will redact yaml", func(t *testing.T) {
		b, err := yaml.Marshal(Config{"pin": s})
		require.NoError(t, err)
		require.NotContains(t, string(b), "123")
		require.Contains(t, string(b), Redacted)
	})

	t.Run("will redact text", func(t *testing.T) {
		b, err := s.MarshalText()
		require.NoError(t, err)
		require.Equal(t, Redacted, string(b))
	})

	t.Run("will redact slog attrs", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{}))
		logger.Info("loaded", slog.Any("pin", s), slog.Any("config", Config{"pin": s}))

		var record struct {
			Pin    string         `json:"pin"`
			Config map[string]any `json:"config"`
		}
		err := json.Unmarshal(buf.Bytes(), &record)
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, Redacted, record.Pin) {
			return
		}
		if !assert.Equal(t, Redacted, record.Config["pin"]) {
			return
		}
		if !assert.NotContains(t, buf.String(), "123") {
			return
		}
	})

	t.Run("will redact the same way every time", func(t *testing.T) {
		first := s.String()
		for range 5 {
			require.Equal(t, first, s.String())
		}
		require.Equal(t, NewSecret("other").String(), first)
	})
}
