// Package loader reads world manifests off the frame thread and applies them to a scene.
// Manifests are decoded and turned into bodies by a worker pool; Poll, called from the frame
// loop, moves finished work into the scene so the scene is only mutated by one goroutine.
package loader

import (
	"errors"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"go.uber.org/zap"
)

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("loader: closed")

const (
	defaultWorkers = 2
	queueSize      = 64
)

// Result is the outcome of one submitted manifest, reported through the finish callback.
type Result struct {
	Path   string
	Bodies int
	Err    error
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu     *sync.Mutex
	scene  scene.Scene
	pool   worker.DynamicWorkerPool
	logger *zap.Logger

	workers  int
	rules    Rules
	ground   float32
	onFinish func(Result)

	nextTask int
	pending  int
	closed   bool
	done     []loaded
}

type loaded struct {
	path   string
	bodies []placement
	err    error
}

// Loader loads world manifests asynchronously into a scene.
// Thread-safe for concurrent access.
type Loader interface {
	// Submit queues the manifest at path for loading. The format is checked up front; decoding
	// happens on a worker.
	//
	// Parameters:
	//   - path: a .yaml, .yml or .toml manifest
	//
	// Returns:
	//   - error: ErrUnsupportedFormat or ErrClosed
	Submit(path string) error

	// Poll adds every finished manifest's bodies to the scene and reports each result.
	// Call it from the goroutine that owns the scene.
	//
	// Returns:
	//   - int: the number of bodies added
	Poll() int

	// Pending returns the number of submitted manifests not yet applied by Poll.
	Pending() int

	// Close stops the worker pool. Finished but unpolled work is discarded.
	Close()
}

var _ Loader = &loader{}

// NewLoader creates a Loader that fills sc. Panics if sc is nil.
//
// Parameters:
//   - sc: the scene to fill
//   - options: functional options to configure the loader
//
// Returns:
//   - Loader: the created loader
func NewLoader(sc scene.Scene, options ...LoaderBuilderOption) Loader {
	if sc == nil {
		panic("loader: scene is required")
	}

	l := &loader{
		mu:      &sync.Mutex{},
		scene:   sc,
		logger:  zap.NewNop(),
		workers: defaultWorkers,
		rules:   DefaultRules(),
	}
	for _, opt := range options {
		opt(l)
	}

	if l.ground > 0 {
		sc.AddGround(scene.NewBody("ground", scene.WithSize(l.ground, 0, l.ground), scene.WithMass(0)))
	}
	l.pool = worker.NewDynamicWorkerPool(l.workers, queueSize, time.Second)
	return l
}

func (l *loader) Submit(path string) error {
	if _, err := resolveBackend(path); err != nil {
		return err
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	id := l.nextTask
	l.nextTask++
	l.pending++
	rules := l.rules
	l.mu.Unlock()

	l.logger.Debug("manifest queued", zap.String("path", path), zap.Int("task", id))
	l.pool.SubmitTask(worker.Task{
		ID:      id,
		Payload: path,
		Do: func() (any, error) {
			m, err := ReadManifest(path)
			res := loaded{path: path, err: err}
			if err == nil {
				res.bodies = m.build(rules)
			}
			l.mu.Lock()
			if !l.closed {
				l.done = append(l.done, res)
			}
			l.mu.Unlock()
			return nil, err
		},
	})
	return nil
}

func (l *loader) Poll() int {
	l.mu.Lock()
	done := l.done
	l.done = nil
	l.pending -= len(done)
	onFinish := l.onFinish
	l.mu.Unlock()

	added := 0
	for _, res := range done {
		if res.err != nil {
			l.logger.Error("manifest failed", zap.String("path", res.path), zap.Error(res.err))
		} else {
			for _, p := range res.bodies {
				l.place(p)
			}
			added += len(res.bodies)
			l.logger.Info("manifest loaded", zap.String("path", res.path), zap.Int("bodies", len(res.bodies)))
		}
		if onFinish != nil {
			onFinish(Result{Path: res.path, Bodies: len(res.bodies), Err: res.err})
		}
	}
	return added
}

func (l *loader) place(p placement) {
	switch p.class {
	case ClassGround:
		l.scene.AddGround(p.body)
	case ClassGrabbable:
		l.scene.AddGrabbable(p.body)
	case ClassClimbable:
		l.scene.AddClimbable(p.body)
	default:
		l.scene.Add(p.body)
	}
}

func (l *loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

func (l *loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.done = nil
	l.pending = 0
	l.mu.Unlock()
	l.pool.Stop()
}
