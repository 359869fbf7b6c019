package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecrc42/internal/platform/config"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter(&buf, config.LogConfig{}).Info("check created", "check_id", "c1")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "check created", line["msg"])
		assert.Equal(t, "c1", line["check_id"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter(&buf, config.LogConfig{Format: "text"}).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter(&buf, config.LogConfig{Level: "warn"}).Info("dropped")
		assert.Empty(t, buf.String())
	})
}
