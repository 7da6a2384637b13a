package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-vr/engine/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloaderAppliesPendingConfig(t *testing.T) {
	ch := make(chan *config.Config, 1)
	var got []*config.Config
	rl := &reloader{ch: ch, apply: func(c *config.Config) { got = append(got, c) }}

	rl.poll()
	assert.Empty(t, got)

	cfg := config.Default()
	ch <- cfg
	rl.poll()
	rl.poll()
	require.Len(t, got, 1)
	assert.Same(t, cfg, got[0])
}

func TestReloaderDetachesWhenWatcherStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  tick_rate: 60\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := config.Watch(ctx, path, nil)
	require.NoError(t, err)

	calls := 0
	rl := &reloader{ch: ch, apply: func(c *config.Config) {
		assert.NotNil(t, c)
		calls++
	}}

	cancel()
	require.Eventually(t, func() bool {
		rl.poll()
		return rl.ch == nil
	}, 3*time.Second, 10*time.Millisecond)

	rl.poll()
	assert.Zero(t, calls)
}
