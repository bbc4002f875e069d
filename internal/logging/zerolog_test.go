package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_LevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn", "err", errors.New("boom"))
	log.Error(ctx, "err", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "dbg", lines[0]["message"])
	assert.EqualValues(t, 1, lines[0]["a"])

	assert.Equal(t, "two", lines[1]["b"])
	assert.Equal(t, "boom", lines[2]["err"])

	assert.Equal(t, "error", lines[3]["level"])
	_, has := lines[3]["dangling"]
	assert.False(t, has)
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf)).With("component", "session")
	log.Info(context.Background(), "hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "session", lines[0]["component"])
}

func TestZerologLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))
	log.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(&buf, FormatText, "info")
	require.NoError(t, err)
	l.Info(context.Background(), "text-line", "k", "v")
	assert.Contains(t, buf.String(), "msg=text-line")

	buf.Reset()
	l, err = New(&buf, FormatZerolog, "debug")
	require.NoError(t, err)
	l.Debug(context.Background(), "json-line")
	assert.Contains(t, buf.String(), `"message":"json-line"`)

	_, err = New(&buf, "xml", "info")
	require.Error(t, err)

	_, err = New(&buf, FormatText, "loud")
	require.Error(t, err)

	_, err = New(&buf, FormatZerolog, "loud")
	require.Error(t, err)
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	ctx := context.Background()
	l.Debug(ctx, "x")
	l.With("a", 1).Error(ctx, "y")
}
