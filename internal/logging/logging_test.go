package logging

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevels(t *testing.T) {
	logger, err := New("debug", "json")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = New("warn", "")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("loud", "console")
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.ErrorContains(t, err, "xml")
}

type syncCounter struct {
	zapcore.Core
	syncs int
}

func (s *syncCounter) Sync() error {
	s.syncs++
	return s.Core.Sync()
}

func TestFailSyncsBeforeExit(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	core := &syncCounter{Core: obs}

	var code int
	var syncsAtExit int
	exit = func(c int) {
		code = c
		syncsAtExit = core.syncs
	}
	t.Cleanup(func() { exit = os.Exit })

	Fail(zap.New(core), "invalid config", errors.New("grid size 0x0"))

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, syncsAtExit)
	entries := logs.FilterMessage("invalid config").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "grid size 0x0", entries[0].ContextMap()["error"])
}
