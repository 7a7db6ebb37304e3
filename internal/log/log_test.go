package log_test

import (
	"encoding/json"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applog "missingfit/internal/log"
)

func TestSetupWritesJSONLinesToFile(t *testing.T) {
	oldW, oldFlags := stdlog.Writer(), stdlog.Flags()
	defer func() {
		stdlog.SetOutput(oldW)
		stdlog.SetFlags(oldFlags)
	}()
	stdlog.SetFlags(0)

	path := filepath.Join(t.TempDir(), "missingfit.log")
	closer := applog.Setup(path)
	applog.Info(nil, "catalog.load", map[string]any{"count": 3})
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var e struct {
		Level  string         `json:"level"`
		Action string         `json:"action"`
		Fields map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &e))
	assert.Equal(t, "info", e.Level)
	assert.Equal(t, "catalog.load", e.Action)
	assert.EqualValues(t, 3, e.Fields["count"])
}
