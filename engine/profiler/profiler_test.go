package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTickLogsOncePerInterval(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewProfiler(WithLogger(zap.New(core)), WithInterval(time.Second))
	start := time.Now()
	p.lastTime = start

	for i := 1; i < 90; i++ {
		assert.False(t, p.tick(start.Add(time.Duration(i)*10*time.Millisecond)))
	}
	require.True(t, p.tick(start.Add(time.Second)))
	assert.InDelta(t, 90, p.Last().FPS, 1e-9)

	entries := logs.FilterMessage("frame stats").All()
	require.Len(t, entries, 1)
	assert.InDelta(t, 90.0, entries[0].ContextMap()["fps"], 1e-9)

	assert.False(t, p.tick(start.Add(1500*time.Millisecond)))
}

func TestDefaults(t *testing.T) {
	p := NewProfiler(WithInterval(-1), WithLogger(nil))
	assert.Equal(t, time.Second, p.interval)
	assert.NotNil(t, p.logger)
	assert.False(t, p.Tick())
}
