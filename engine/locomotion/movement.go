package locomotion

import (
	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/camera"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// SteeringAxes returns the horizontal forward and right axes that steering follows in mode m.
// HandDirected uses the pointer, falling back to the view when the pointer is nil or vertical.
//
// Parameters:
//   - m: the locomotion mode
//   - vp: the viewpoint
//   - pointer: the left controller pointer, may be nil
//
// Returns:
//   - mgl32.Vec3: the flattened forward axis
//   - mgl32.Vec3: the flattened right axis
func SteeringAxes(m Mode, vp camera.Viewpoint, pointer scene.Node) (mgl32.Vec3, mgl32.Vec3) {
	if m == HandDirected && pointer != nil {
		forward := common.Flatten(pointer.Forward())
		if forward.Len() > 0 {
			// right is derived from forward so a rolled controller still steers level
			return forward, forward.Cross(common.WorldUp).Mul(-1)
		}
	}
	return vp.HorizontalForward(), vp.HorizontalRight()
}

// Steer moves the viewpoint along the stick direction and pins it to the ground.
// Pushing the stick forward reads axes.y = -1.
//
// Parameters:
//   - vp: the viewpoint to move
//   - forward: the horizontal forward axis
//   - right: the horizontal right axis
//   - axes: the left thumbstick value
//   - dt: the frame time in seconds
//   - s: the locomotion settings
//   - ground: the ground sampler used to pin the height
//
// Returns:
//   - bool: true if the viewpoint moved
func Steer(vp camera.Viewpoint, forward, right mgl32.Vec3, axes mgl32.Vec2, dt float32, s Settings, ground GroundSampler) bool {
	dir := forward.Mul(-axes.Y()).Add(right.Mul(axes.X()))
	dir = common.ClampLength(dir, 1)
	if dir.Len() == 0 || dt <= 0 {
		return false
	}

	pos := vp.Position().Add(dir.Mul(s.MoveSpeed * dt))
	pos[1] = ground.Height(pos)
	vp.SetPosition(pos)
	return true
}
