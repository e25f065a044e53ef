package events

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureSink_RecordsInOrder(t *testing.T) {
	sink := NewCaptureSink()

	Emit(sink, LevelInfo, "test", "first", nil)
	Emit(sink, LevelError, "test", "second", map[string]any{"key": "value"})

	recorded := sink.Events()
	require.Len(t, recorded, 2)
	assert.Equal(t, "first", recorded[0].Message)
	assert.Equal(t, LevelInfo, recorded[0].Level)
	assert.False(t, recorded[0].Timestamp.IsZero())
	assert.Equal(t, "second", recorded[1].Message)
	assert.Equal(t, "value", recorded[1].Metadata["key"])
}

func TestCaptureSink_ByLevel(t *testing.T) {
	sink := NewCaptureSink()

	Emit(sink, LevelInfo, "test", "a", nil)
	Emit(sink, LevelWarning, "test", "b", nil)
	Emit(sink, LevelWarning, "test", "c", nil)

	warnings := sink.ByLevel(LevelWarning)
	require.Len(t, warnings, 2)
	assert.Equal(t, "b", warnings[0].Message)
	assert.Equal(t, "c", warnings[1].Message)
	assert.Empty(t, sink.ByLevel(LevelError))
}

func TestCaptureSink_Reset(t *testing.T) {
	sink := NewCaptureSink()
	Emit(sink, LevelInfo, "test", "a", nil)

	sink.Reset()
	assert.Empty(t, sink.Events())
}

func TestEmit_NilSinkIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		Emit(nil, LevelInfo, "test", "dropped", nil)
	})
}

func TestLogSink_WritesStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "info")

	Emit(sink, LevelError, "executor", "action failed", map[string]any{"action": "echo"})

	out := buf.String()
	assert.Contains(t, out, "action failed")
	assert.Contains(t, out, "executor")
	assert.Contains(t, out, "echo")
}

func TestLogSink_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "error")

	Emit(sink, LevelInfo, "test", "quiet", nil)
	assert.Empty(t, buf.String())

	Emit(sink, LevelError, "test", "loud", nil)
	assert.Contains(t, buf.String(), "loud")
}

func TestLogSink_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, "not-a-level")

	Emit(sink, LevelInfo, "test", "visible", nil)
	assert.Contains(t, buf.String(), "visible")
}
