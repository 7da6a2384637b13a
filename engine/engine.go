// Package engine runs the fixed-rate frame loop of the simulator.
package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-vr/engine/profiler"
	"github.com/Carmen-Shannon/oxy-vr/engine/window"
	"go.uber.org/zap"
)

// ErrRunning is returned by Run while another Run is active.
var ErrRunning = errors.New("engine: already running")

// maxDelta caps the frame time handed to the tick callback after a stall.
const maxDelta = 0.25

// engine implements the Engine interface.
type engine struct {
	tickRateChannel chan time.Duration

	running atomic.Bool

	quitChannel chan struct{}
	quitOnce    sync.Once

	window window.Window
	logger *zap.Logger

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool
	profileInterval  time.Duration

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
}

// Engine drives the simulation. One goroutine pumps window events and calls the tick callback
// at a fixed rate, so everything the callback touches is single-threaded.
type Engine interface {
	// Window returns the window pumped by Run, or nil when headless.
	Window() window.Window

	// EnableProfiler starts logging frame stats.
	EnableProfiler()

	// DisableProfiler stops logging frame stats.
	DisableProfiler()

	// SetTickRate sets the tick rate in ticks per second. Takes effect immediately when running.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each tick. Set it before Run.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Run blocks running the loop until ctx is done, Quit is called or the window closes.
	//
	// Parameters:
	//   - ctx: stops the loop when done
	//
	// Returns:
	//   - error: ErrRunning if the loop is already running, nil otherwise
	Run(ctx context.Context) error

	// Quit stops the loop. Safe to call multiple times and from any goroutine.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates an Engine with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		logger:          zap.NewNop(),
		profileInterval: time.Second,
		engineTickRate:  time.Second / 60,
	}
	for _, opt := range options {
		opt(e)
	}
	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger.Named("profiler")), profiler.WithInterval(e.profileInterval))

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			e.logger.Debug("window resized", zap.Int("width", width), zap.Int("height", height))
		})
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer e.running.Store(false)

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()
	e.logger.Info("engine started", zap.Duration("tick", e.engineTickRate))

	lastTick := time.Now()
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("engine stopped", zap.Error(ctx.Err()))
			return nil
		case <-e.quitChannel:
			e.logger.Info("engine stopped", zap.String("reason", "quit"))
			return nil
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		case now := <-ticker.C:
			if e.window != nil && !e.window.PollEvents() {
				e.logger.Info("engine stopped", zap.String("reason", "window closed"))
				return nil
			}

			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			if dt > maxDelta {
				dt = maxDelta
			}
			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
			if e.profilingEnabled.Load() {
				e.profiler.Tick()
			}
		}
	}
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)
	if !e.running.Load() {
		e.engineTickRate = newRate
		return
	}

	// replace any pending update
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
