package locomotion

import (
	"github.com/Carmen-Shannon/oxy-vr/engine/camera"
)

// ApplyGravity integrates vertical velocity for one frame and lands the viewpoint on the ground height
// below it, zeroing the velocity on contact. The viewpoint never ends a frame below the sampled ground.
// When the probe misses, GroundMissPassthrough holds the current height with zero velocity and
// GroundMissZero falls to a floor at y=0.
//
// Parameters:
//   - velocity: the vertical velocity, updated in place
//   - vp: the viewpoint
//   - ground: the ground sampler
//   - dt: the frame time in seconds
//   - s: the locomotion settings
func ApplyGravity(velocity *float32, vp camera.Viewpoint, ground GroundSampler, dt float32, s Settings) {
	if !s.GravityEnabled || dt <= 0 {
		return
	}

	pos := vp.Position()
	floor, ok := ground.Sample(pos)
	if !ok {
		if s.GroundMiss == GroundMissPassthrough {
			*velocity = 0
			return
		}
		floor = 0
	}

	*velocity -= s.Gravity * dt
	pos[1] += *velocity * dt
	if pos.Y() <= floor {
		pos[1] = floor
		*velocity = 0
	}
	vp.SetPosition(pos)
}
