package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunTicksUntilQuit(t *testing.T) {
	e := NewEngine(WithTickRate(500))
	var ticks atomic.Int32
	e.SetTickCallback(func(dt float32) {
		assert.Greater(t, dt, float32(0))
		assert.LessOrEqual(t, dt, float32(maxDelta))
		if ticks.Add(1) == 5 {
			e.Quit()
		}
	})

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, int32(5), ticks.Load())
	assert.Nil(t, e.Window())

	// quit stays latched
	assert.NotPanics(t, e.Quit)
	require.NoError(t, e.Run(context.Background()))
}

func TestRunStopsOnContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := NewEngine(WithTickRate(1000), WithLogger(zap.New(core)))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var ticks atomic.Int32
	e.SetTickCallback(func(float32) { ticks.Add(1) })
	require.NoError(t, e.Run(ctx))
	assert.Positive(t, ticks.Load())
	assert.Equal(t, 1, logs.FilterMessage("engine started").Len())
	assert.Equal(t, 1, logs.FilterMessage("engine stopped").Len())
}

func TestRunRejectsConcurrentRun(t *testing.T) {
	e := NewEngine(WithTickRate(1000))
	started := make(chan struct{})
	var once atomic.Bool
	e.SetTickCallback(func(float32) {
		if once.CompareAndSwap(false, true) {
			close(started)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()
	<-started

	assert.ErrorIs(t, e.Run(ctx), ErrRunning)
	cancel()
	assert.NoError(t, <-done)
}

func TestSetTickRateWhileRunning(t *testing.T) {
	e := NewEngine(WithTickRate(1), WithProfiling(true), WithProfileInterval(time.Millisecond))
	var ticks atomic.Int32
	e.SetTickCallback(func(float32) {
		if ticks.Add(1) == 3 {
			e.Quit()
		}
	})

	go func() {
		assert.Eventually(t, func() bool { return e.(*engine).running.Load() }, time.Second, time.Millisecond)
		e.SetTickRate(1000)
		e.SetTickRate(500)
	}()

	start := time.Now()
	require.NoError(t, e.Run(context.Background()))
	// at 1 Hz three ticks would take three seconds
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestProfilerToggle(t *testing.T) {
	e := NewEngine().(*engine)
	assert.False(t, e.profilingEnabled.Load())
	e.EnableProfiler()
	assert.True(t, e.profilingEnabled.Load())
	e.DisableProfiler()
	assert.False(t, e.profilingEnabled.Load())

	e.SetTickRate(0)
	assert.Equal(t, time.Second/60, e.engineTickRate)
}
