package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		level      string
		debugShown bool
	}{
		{name: "debug level shows debug", level: "debug", debugShown: true},
		{name: "info level hides debug", level: "info", debugShown: false},
		{name: "unknown level defaults to info", level: "loud", debugShown: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newLogger(tc.level, "text", &buf)

			logger.Debug("probe")

			assert.Equal(t, tc.debugShown, bytes.Contains(buf.Bytes(), []byte("probe")))
		})
	}
}

func TestNewLoggerJSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger("info", "json", &buf)

	logger.Info("probe", "k", "v")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "probe", record["msg"])
	assert.Equal(t, "v", record["k"])
}

func TestSessionShutdownRunsOnce(t *testing.T) {
	t.Parallel()

	flushes := 0
	s := &Session{flush: func() { flushes++ }}

	s.Shutdown()
	s.Shutdown()
	s.Shutdown()

	assert.Equal(t, 1, flushes, "only the first shutdown may act")
}

func TestInitializeTagsRecordsWithAppName(t *testing.T) {
	// Touches the process-wide default logger and registry values, so no
	// t.Parallel here.
	s := Initialize("hosttest")
	defer s.Shutdown()

	require.NotNil(t, s.Logger())
}
