package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"demandcast/internal/config"
	"demandcast/internal/logger"
)

func TestNew_ConsoleFormat(t *testing.T) {
	log, err := logger.New(config.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_JSONFormat(t *testing.T) {
	log, err := logger.New(config.LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(config.LogConfig{Level: "loud", Format: "console"})
	assert.Error(t, err)
}
