package locomotion

import (
	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/camera"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
	"github.com/go-gl/mathgl/mgl32"
)

// TeleportTarget is the pending teleport destination.
type TeleportTarget struct {
	Point mgl32.Vec3
	Valid bool
}

// Beam is the aiming laser shown while teleporting. Renderers read it, locomotion writes it.
type Beam struct {
	// Visible is true while the beam should be drawn.
	Visible bool
	// Length is the distance from the pointer to the target.
	Length float32
	// Source is the controller the beam is attached to, HandNone when detached.
	Source xr.Handedness
}

// Hide turns the beam off without detaching it.
func (b *Beam) Hide() {
	b.Visible = false
	b.Length = 0
}

// Aim updates the pending target while the stick is pushed past the teleport threshold. The ray is
// cast from the pointer along its forward; only a ground body as the nearest hit makes a valid target.
// Any other outcome clears the target and hides the beam.
//
// Parameters:
//   - target: the pending target, updated in place
//   - beam: the aiming beam, updated in place
//   - sc: the scene to cast into
//   - pointer: the aiming node
//   - s: the locomotion settings
func Aim(target *TeleportTarget, beam *Beam, sc scene.Scene, pointer scene.Node, s Settings) {
	if sc == nil || pointer == nil {
		*target = TeleportTarget{}
		beam.Hide()
		return
	}

	ray := common.NewRay(pointer.Position(), pointer.Forward(), s.TeleportRange)
	info := sc.PickWithRay(ray, nil)
	if info.Hit && sc.IsGround(info.Body) {
		target.Point = info.Point
		target.Valid = true
		beam.Visible = true
		beam.Length = info.Distance
		return
	}

	*target = TeleportTarget{}
	beam.Hide()
}

// Commit hides the beam and, if a target is pending, moves the viewpoint onto it at standing height.
// The target is consumed so one aim produces at most one jump.
//
// Parameters:
//   - target: the pending target, cleared in place
//   - beam: the aiming beam, hidden in place
//   - vp: the viewpoint to move
//
// Returns:
//   - bool: true if a jump happened
func Commit(target *TeleportTarget, beam *Beam, vp camera.Viewpoint) bool {
	beam.Hide()
	if !target.Valid {
		return false
	}

	p := target.Point
	vp.SetPosition(mgl32.Vec3{p.X(), p.Y() + vp.RealWorldHeight(), p.Z()})
	*target = TeleportTarget{}
	return true
}

// UpdateTeleport runs one frame of teleport input: aims while the stick is pushed forward past the
// threshold (inclusive) and commits once it returns exactly to zero. Deflections in between leave the target as is.
//
// Parameters:
//   - target: the pending target
//   - beam: the aiming beam
//   - sc: the scene to cast into
//   - pointer: the aiming node, may be nil
//   - vp: the viewpoint
//   - axisY: the left thumbstick Y axis
//   - s: the locomotion settings
//
// Returns:
//   - bool: true if the viewpoint jumped this frame
func UpdateTeleport(target *TeleportTarget, beam *Beam, sc scene.Scene, pointer scene.Node, vp camera.Viewpoint, axisY float32, s Settings) bool {
	switch {
	case axisY <= -s.TeleportThreshold:
		Aim(target, beam, sc, pointer, s)
	case axisY == 0:
		return Commit(target, beam, vp)
	}
	return false
}
