package interaction

import (
	"github.com/Carmen-Shannon/oxy-vr/engine/camera"
	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
	"github.com/go-gl/mathgl/mgl32"
)

// Climb moves the viewpoint opposite to the hand's motion since the reference, scaled by ClimbScale:
// pulling the hand down lifts the user. With the incremental anchor the reference is re-sampled after
// the move; with the fixed anchor it stays where the surface was grabbed.
//
// Parameters:
//   - h: the climbing hand
//   - ctrl: the hand's controller, may be nil
//   - vp: the viewpoint to move
//   - s: the hand settings
//
// Returns:
//   - mgl32.Vec3: the viewpoint displacement applied
func Climb(h *Hand, ctrl xr.Controller, vp camera.Viewpoint, s Settings) mgl32.Vec3 {
	if !h.Climbing || ctrl == nil || vp == nil {
		return mgl32.Vec3{}
	}
	pointer := ctrl.Pointer()
	if pointer == nil {
		return mgl32.Vec3{}
	}

	move := h.Reference.Sub(pointer.Position()).Mul(s.ClimbScale)
	vp.SetPosition(vp.Position().Add(move))

	if s.ClimbAnchor == ClimbAnchorIncremental {
		h.Reference = pointer.Position()
	}
	return move
}
