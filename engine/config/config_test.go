package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-vr/engine/interaction"
	"github.com/Carmen-Shannon/oxy-vr/engine/locomotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sampleYAML = `locomotion:
  move_speed: 4.5
  ground_miss: zero
  snap_rearm: 0
interaction:
  climb_anchor: fixed
loader:
  manifests: [worlds/forest.yaml]
  rules:
    scale:
      Stump: 0.5
logging:
  level: debug
engine:
  tick_rate: 72
`

const sampleTOML = `[locomotion]
move_speed = 2.0
gravity_enabled = false

[interaction]
grip_radius = 0.2

[input]
dead_zone = 0.25
joystick = -1
`

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), "oxy.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, float32(4.5), cfg.Locomotion.MoveSpeed)
	assert.Equal(t, locomotion.GroundMissZero, cfg.Locomotion.GroundMiss)
	assert.Zero(t, cfg.Locomotion.SnapRearm)
	assert.Equal(t, locomotion.DefaultSettings().SnapAngle, cfg.Locomotion.SnapAngle)
	assert.Equal(t, interaction.ClimbAnchorFixed, cfg.Interaction.ClimbAnchor)
	assert.Equal(t, []string{"worlds/forest.yaml"}, cfg.Loader.Manifests)
	assert.Equal(t, float32(0.5), cfg.Loader.Rules.Scale["Stump"])
	assert.Equal(t, float32(0.2), cfg.Loader.Rules.Scale["Rocks"])
	assert.Equal(t, []string{"Plane"}, cfg.Loader.Rules.GroundPrefixes)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 72, cfg.Engine.TickRate)
	assert.Equal(t, 1280, cfg.Engine.Width)
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), "oxy.toml", sampleTOML))
	require.NoError(t, err)

	assert.Equal(t, float32(2), cfg.Locomotion.MoveSpeed)
	assert.False(t, cfg.Locomotion.GravityEnabled)
	assert.Equal(t, float32(0.2), cfg.Interaction.GripRadius)
	assert.Equal(t, float32(0.25), cfg.Input.DeadZone)
	assert.Equal(t, -1, cfg.Input.Joystick)
	assert.True(t, cfg.Input.Keyboard)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeConfig(t, dir, "oxy.json", "{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, dir, "typo.yaml", "locomotion:\n  move_sped: 3\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, dir, "typo.toml", "[engine]\ntickrate = 3\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, dir, "bad.yaml", "locomotion:\n  ground_miss: bounce\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, dir, "slow.yaml", "locomotion:\n  move_speed: -1\nengine:\n  tick_rate: 0\n"))
	assert.ErrorIs(t, err, locomotion.ErrInvalidSettings)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseEmptyYAMLGivesDefaults(t *testing.T) {
	cfg, err := Parse(nil, ".yml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// replace writes content next to path and renames it over path.
func replace(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatchDeliversValidEdits(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "oxy.yaml", sampleYAML)
	core, logs := observer.New(zapcore.InfoLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := Watch(ctx, path, zap.New(core))
	require.NoError(t, err)

	// sibling files are ignored
	writeConfig(t, dir, "other.yaml", "engine:\n  tick_rate: 1\n")

	replace(t, path, "locomotion:\n  move_speed: 5\n")
	var last *Config
	require.Eventually(t, func() bool {
		select {
		case c := <-ch:
			last = c
		default:
		}
		return last != nil && last.Locomotion.MoveSpeed == 5
	}, 3*time.Second, 10*time.Millisecond)

	replace(t, path, "locomotion:\n  move_speed: -5\n")
	require.Eventually(t, func() bool {
		return logs.FilterMessage("config reload failed").Len() > 0
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "oxy.yaml"), nil)
	assert.Error(t, err)
}

func TestDeliverKeepsLatest(t *testing.T) {
	out := make(chan *Config, 1)
	a, b := Default(), Default()
	b.Engine.TickRate = 30

	deliver(out, a)
	deliver(out, b)
	assert.Same(t, b, <-out)
}
