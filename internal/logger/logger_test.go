package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_DefaultLevel(t *testing.T) {
	l, err := New(false)
	require.NoError(t, err)

	core := l.Desugar().Core()
	assert.True(t, core.Enabled(zapcore.InfoLevel), "operational events must be recorded by default")
	assert.False(t, core.Enabled(zapcore.DebugLevel))
}

func TestNew_Verbose(t *testing.T) {
	l, err := New(true)
	require.NoError(t, err)

	assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
}
