package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsNoop(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Infow("loaded", "rows", 3)
		Errorw("failed", "error", "boom")
	})
}

func TestUseRoutesHelpersToLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Use(zap.New(core))
	defer Use(nil)

	Infow("dataset registered", "name", "listings", "rows", 3)
	Debugw("hidden below info")
	Warnw("empty result", "query", "zzz")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "dataset registered", entries[0].Message)
	assert.Equal(t, "listings", entries[0].ContextMap()["name"])
	assert.Equal(t, "empty result", entries[1].Message)
}

func TestInitializeJSON(t *testing.T) {
	require.NoError(t, Initialize(true))
	defer Use(nil)
	assert.True(t, JSONOutput)
}
