package rig

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-vr/engine/camera"
	"github.com/Carmen-Shannon/oxy-vr/engine/interaction"
	"github.com/Carmen-Shannon/oxy-vr/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
	"go.uber.org/zap"
)

type rig struct {
	mu    *sync.Mutex
	state State
	env   Env
	subs  []xr.Subscription
}

// Rig owns a State and Env and runs Step each frame. It also follows controller hot-plug: the
// teleport beam attaches to the most recently connected controller, and a hand whose controller
// disconnects lets go of what it holds.
// Thread-safe for concurrent access.
type Rig interface {
	// Update advances the rig by one frame.
	//
	// Parameters:
	//   - dt: the frame time in seconds
	Update(dt float32)

	// State returns a copy of the current rig state.
	//
	// Returns:
	//   - State: the state snapshot
	State() State

	// Viewpoint returns the viewpoint the rig moves.
	Viewpoint() camera.Viewpoint

	// SetLocomotionSettings swaps the locomotion tuning after validating it.
	//
	// Parameters:
	//   - s: the new settings
	//
	// Returns:
	//   - error: the validation error, the current settings are kept on error
	SetLocomotionSettings(s locomotion.Settings) error

	// SetInteractionSettings swaps the hand tuning after validating it.
	//
	// Parameters:
	//   - s: the new settings
	//
	// Returns:
	//   - error: the validation error, the current settings are kept on error
	SetInteractionSettings(s interaction.Settings) error

	// Close unsubscribes from the hub. The rig keeps working but no longer follows hot-plug.
	Close()
}

var _ Rig = &rig{}

// NewRig creates a Rig driving vp through sc with input from hub. Panics if vp is nil; sc and hub may be nil.
//
// Parameters:
//   - vp: the viewpoint to move
//   - sc: the scene to query
//   - hub: the controller hub
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the created rig
func NewRig(vp camera.Viewpoint, sc scene.Scene, hub xr.Hub, options ...RigBuilderOption) Rig {
	if vp == nil {
		panic("rig: viewpoint is required")
	}

	r := &rig{
		mu:    &sync.Mutex{},
		state: NewState(),
		env: Env{
			Viewpoint:   vp,
			Scene:       sc,
			Input:       hub,
			Locomotion:  locomotion.DefaultSettings(),
			Interaction: interaction.DefaultSettings(),
			Logger:      zap.NewNop(),
		},
	}
	for _, opt := range options {
		opt(r)
	}

	if hub != nil {
		r.subs = append(r.subs,
			hub.OnConnected(r.onConnected),
			hub.OnDisconnected(r.onDisconnected),
		)
		if hub.Controller(xr.HandLeft) != nil {
			r.state.Locomotion.Beam.Source = xr.HandLeft
		}
	}
	return r
}

func (r *rig) Update(dt float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	Step(&r.state, r.env, dt)
}

func (r *rig) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *rig) Viewpoint() camera.Viewpoint {
	return r.env.Viewpoint
}

func (r *rig) SetLocomotionSettings(s locomotion.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.env.Locomotion = s
	return nil
}

func (r *rig) SetInteractionSettings(s interaction.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.env.Interaction = s
	return nil
}

func (r *rig) Close() {
	r.mu.Lock()
	subs := r.subs
	r.subs = nil
	r.mu.Unlock()
	for _, s := range subs {
		s.Release()
	}
}

func (r *rig) onConnected(c xr.Controller) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Locomotion.Beam.Source = c.Handedness()
}

func (r *rig) onDisconnected(c xr.Controller) {
	r.mu.Lock()
	defer r.mu.Unlock()

	loc := &r.state.Locomotion
	if loc.Beam.Source == c.Handedness() {
		loc.Beam.Hide()
		loc.Beam.Source = xr.HandNone
		loc.Target = locomotion.TeleportTarget{}
	}
	if hand := r.state.Hand(c.Handedness()); hand != nil && interaction.Release(hand) {
		r.env.Logger.Info("released on disconnect", zap.Stringer("hand", c.Handedness()))
	}
}
