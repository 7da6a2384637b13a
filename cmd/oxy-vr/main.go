// Command oxy-vr is a desktop simulator for the VR rig: a window whose keyboard and gamepad
// drive a pair of emulated controllers through the locomotion and interaction systems.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine"
	"github.com/Carmen-Shannon/oxy-vr/engine/camera"
	"github.com/Carmen-Shannon/oxy-vr/engine/config"
	"github.com/Carmen-Shannon/oxy-vr/engine/loader"
	"github.com/Carmen-Shannon/oxy-vr/engine/logging"
	"github.com/Carmen-Shannon/oxy-vr/engine/rig"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/Carmen-Shannon/oxy-vr/engine/window"
	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML or TOML config file (defaults are used when empty)")
	manifests := flag.String("manifest", "", "Comma-separated world manifests, loaded after the ones in the config")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	flag.Parse()

	if err := run(*configPath, splitList(*manifests), *watch); err != nil {
		fmt.Fprintln(os.Stderr, "oxy-vr:", err)
		os.Exit(1)
	}
}

func run(configPath string, manifests []string, watch bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sc := scene.NewScene("world")
	ld := loader.NewLoader(sc,
		loader.WithWorkers(cfg.Loader.Workers),
		loader.WithRules(cfg.Loader.Rules),
		loader.WithDefaultGround(cfg.Loader.DefaultGround),
		loader.WithLogger(logger.Named("loader")),
	)
	defer ld.Close()
	for _, m := range slices.Concat(cfg.Loader.Manifests, manifests) {
		if err := ld.Submit(m); err != nil {
			return err
		}
	}

	height := cfg.Locomotion.PlayerHeight
	vp := camera.NewViewpoint(camera.WithPosition(0, height, 0), camera.WithRealWorldHeight(height))
	collider := scene.NewBody("playerCollider",
		scene.WithPosition(0, height/2, 0),
		scene.WithSize(0.4, height, 0.4),
		scene.WithPickable(false),
	)
	sc.Add(collider)

	hub := xr.NewHub(xr.WithLogger(logger.Named("xr")))
	left, right := xr.NewEmulatedPair("desktop", vp)
	input := newDesktopInput(hub, left, right, cfg.Input.Keyboard, cfg.Input.Joystick, cfg.Input.DeadZone, logger.Named("input"))

	r := rig.NewRig(vp, sc, hub,
		rig.WithLocomotionSettings(cfg.Locomotion),
		rig.WithInteractionSettings(cfg.Interaction),
		rig.WithCollider(collider),
		rig.WithLogger(logger.Named("rig")),
	)
	defer r.Close()

	win, err := window.NewWindow(window.WithTitle("oxy-vr"), window.WithSize(cfg.Engine.Width, cfg.Engine.Height))
	if err != nil {
		return err
	}
	defer func() { _ = win.Close() }()
	win.SetKeyDownCallback(input.keys.Press)
	win.SetKeyUpCallback(input.keys.Release)
	win.SetJoystickCallback(input.onJoystick)

	if cfg.Input.Keyboard {
		input.connect()
	} else if _, ok := win.Gamepad(cfg.Input.Joystick); ok {
		input.connect()
	}

	var reloads <-chan *config.Config
	if watch && configPath != "" {
		if reloads, err = config.Watch(ctx, configPath, logger.Named("config")); err != nil {
			return err
		}
	}

	eng := engine.NewEngine(
		engine.WithTickRate(float64(cfg.Engine.TickRate)),
		engine.WithWindow(win),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithProfileInterval(time.Duration(cfg.Engine.ProfileIntervalMs)*time.Millisecond),
		engine.WithLogger(logger),
	)
	rl := &reloader{ch: reloads, apply: func(next *config.Config) {
		apply(next, r, eng, input, logger)
	}}
	eng.SetTickCallback(func(dt float32) {
		ld.Poll()
		rl.poll()
		input.frame(win, dt)
		r.Update(dt)
	})

	logger.Info("simulator ready",
		zap.String("config", common.Coalesce(configPath, "defaults")),
		zap.Int("manifests", len(cfg.Loader.Manifests)+len(manifests)),
	)
	return eng.Run(ctx)
}

// apply hands a reloaded config to the running systems. Loader and window settings need a restart.
func apply(cfg *config.Config, r rig.Rig, eng engine.Engine, input *desktopInput, logger *zap.Logger) {
	if err := r.SetLocomotionSettings(cfg.Locomotion); err != nil {
		logger.Warn("locomotion settings rejected", zap.Error(err))
	}
	if err := r.SetInteractionSettings(cfg.Interaction); err != nil {
		logger.Warn("interaction settings rejected", zap.Error(err))
	}
	eng.SetTickRate(float64(cfg.Engine.TickRate))
	if cfg.Engine.Profiling {
		eng.EnableProfiler()
	} else {
		eng.DisableProfiler()
	}
	input.setDeadZone(cfg.Input.DeadZone)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
