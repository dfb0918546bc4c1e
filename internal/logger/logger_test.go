package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	assert.NoError(t, Init("warn"))
	assert.True(t, Logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))

	assert.NoError(t, Init("debug"))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))

	assert.Error(t, Init("loud"))
}
