package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel)
	l.Debugf("hidden %d", 1)
	require.Equal(t, 0, buf.Len())
	l.Infof("shown %d", 2)
	require.Contains(t, buf.String(), "[INFO] shown 2")
	l.Warnf("careful")
	require.Contains(t, buf.String(), "[WARN] careful")
}

func TestLogLevelToString(t *testing.T) {
	require.Equal(t, "TRACE", LogLevelToString(TraceLevel))
	require.Equal(t, "ERROR", LogLevelToString(ErrorLevel))
	require.False(t, Discard().Enabled(FatalLevel))
}
