// Package rig ties input, locomotion and interaction together into one per-frame update.
// State is explicit: Step reads the controllers from Env and mutates the State it is given.
package rig

import (
	"github.com/Carmen-Shannon/oxy-vr/engine/camera"
	"github.com/Carmen-Shannon/oxy-vr/engine/interaction"
	"github.com/Carmen-Shannon/oxy-vr/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// State is everything the rig carries between frames.
type State struct {
	Locomotion locomotion.State
	Left       interaction.Hand
	Right      interaction.Hand
}

// NewState returns the initial rig state: view-directed steering, smooth turning, open hands.
func NewState() State {
	return State{
		Left:  interaction.NewHand(xr.HandLeft),
		Right: interaction.NewHand(xr.HandRight),
	}
}

// Hand returns the state of hand h, or nil for HandNone.
func (s *State) Hand(h xr.Handedness) *interaction.Hand {
	switch h {
	case xr.HandLeft:
		return &s.Left
	case xr.HandRight:
		return &s.Right
	}
	return nil
}

// Env is what Step reads from and writes to besides State.
type Env struct {
	Viewpoint   camera.Viewpoint
	Scene       scene.Scene
	Input       xr.Hub
	Locomotion  locomotion.Settings
	Interaction interaction.Settings
	// Collider, when set, is kept under the viewpoint on the horizontal plane.
	Collider scene.Body
	Logger   *zap.Logger
}

// Step advances the rig by one frame. Inputs are processed in a fixed order: triggers, squeezes,
// climbing, left stick, right stick, the A and B mode buttons, then gravity and the collider.
// Missing controllers or components skip their part of the frame.
//
// Parameters:
//   - st: the rig state, mutated in place
//   - env: the world and input the frame runs against
//   - dt: the frame time in seconds
func Step(st *State, env Env, dt float32) {
	if env.Viewpoint == nil {
		return
	}
	logger := env.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var left, right xr.Controller
	if env.Input != nil {
		left = env.Input.Controller(xr.HandLeft)
		right = env.Input.Controller(xr.HandRight)
	}

	logTrigger(logger, right)
	logTrigger(logger, left)
	squeeze(logger, &st.Right, &st.Left, right, env)
	squeeze(logger, &st.Left, &st.Right, left, env)

	interaction.Climb(&st.Right, right, env.Viewpoint, env.Interaction)
	interaction.Climb(&st.Left, left, env.Viewpoint, env.Interaction)
	climbing := interaction.AnyClimbing(&st.Left, &st.Right)

	if stick := component(left, xr.ComponentThumbstick); stick != nil && !climbing {
		move(logger, st, env, left, stick.Axes(), dt)
	}

	if stick := component(right, xr.ComponentThumbstick); stick != nil {
		loc := &st.Locomotion
		locomotion.Rotate(loc.Rotation, &loc.Snap, env.Viewpoint, stick.Axes().X(), dt, env.Locomotion)
	}

	if a := component(right, xr.ComponentA); a != nil && a.PressEdge() {
		mode := st.Locomotion.CycleMode()
		logger.Info("locomotion mode changed", zap.Stringer("mode", mode))
	}
	if b := component(right, xr.ComponentB); b != nil && b.PressEdge() {
		mode := st.Locomotion.CycleRotation()
		logger.Info("rotation mode changed", zap.Stringer("mode", mode))
	}

	ground := locomotion.GroundSampler{Scene: env.Scene, Settings: env.Locomotion}
	if climbing {
		st.Locomotion.VerticalVelocity = 0
	} else {
		locomotion.ApplyGravity(&st.Locomotion.VerticalVelocity, env.Viewpoint, ground, dt, env.Locomotion)
	}

	if env.Collider != nil {
		pos := env.Collider.Position()
		head := env.Viewpoint.Position()
		pos[0], pos[2] = head.X(), head.Z()
		env.Collider.SetPosition(pos)
	}
}

func move(logger *zap.Logger, st *State, env Env, left xr.Controller, axes mgl32.Vec2, dt float32) {
	loc := &st.Locomotion
	if loc.Mode == locomotion.Teleport {
		if axes.Y() <= -env.Locomotion.TeleportThreshold {
			loc.Beam.Source = xr.HandLeft
		}
		if locomotion.UpdateTeleport(&loc.Target, &loc.Beam, env.Scene, left.Pointer(), env.Viewpoint, axes.Y(), env.Locomotion) {
			loc.VerticalVelocity = 0
			p := env.Viewpoint.Position()
			logger.Info("teleported", zap.Float32s("position", p[:]))
		}
		return
	}

	ground := locomotion.GroundSampler{Scene: env.Scene, Settings: env.Locomotion}
	forward, right := locomotion.SteeringAxes(loc.Mode, env.Viewpoint, left.Pointer())
	locomotion.Steer(env.Viewpoint, forward, right, axes, dt, env.Locomotion, ground)
}

func squeeze(logger *zap.Logger, hand, other *interaction.Hand, c xr.Controller, env Env) {
	sq := component(c, xr.ComponentSqueeze)
	if sq == nil {
		return
	}

	switch {
	case sq.PressEdge():
		logger.Info("squeeze pressed", zap.Stringer("hand", hand.Handedness))
		switch interaction.Grab(hand, other, c, env.Scene, env.Interaction) {
		case interaction.GrabBody:
			logger.Info("grabbed", zap.Stringer("hand", hand.Handedness), zap.String("body", hand.Held.Name()))
		case interaction.GrabSurface:
			logger.Info("climbing", zap.Stringer("hand", hand.Handedness), zap.String("surface", hand.Surface.Name()))
		}
	case sq.ReleaseEdge():
		logger.Info("squeeze released", zap.Stringer("hand", hand.Handedness))
		interaction.Release(hand)
	}
}

func logTrigger(logger *zap.Logger, c xr.Controller) {
	t := component(c, xr.ComponentTrigger)
	if t == nil {
		return
	}
	switch {
	case t.PressEdge():
		logger.Info("trigger pressed", zap.Stringer("hand", c.Handedness()))
	case t.ReleaseEdge():
		logger.Info("trigger released", zap.Stringer("hand", c.Handedness()))
	}
}

func component(c xr.Controller, id xr.ComponentID) *xr.Component {
	if c == nil {
		return nil
	}
	return c.Component(id)
}
