package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("console"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestWith_MergesFieldsAndSkipsBlankKeys(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"module": "rescues"})

	l.Error("insert failed", map[string]any{
		"err": errors.New("boom"),
		" ":   "ignored",
		"id":  "r-1",
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "insert failed", entry.Message)

	ctx := entry.ContextMap()
	assert.Equal(t, "rescues", ctx["module"])
	assert.Equal(t, "r-1", ctx["id"])
	assert.Equal(t, "boom", ctx["err"])
	assert.NotContains(t, ctx, " ")
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.Info("x", nil)
	assert.Same(t, l, l.With(nil))
}
