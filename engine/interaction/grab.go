package interaction

import (
	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
)

// GrabResult says what a grab attempt caught.
type GrabResult int

const (
	// GrabNothing means the grip volume was empty or the hand was already holding something.
	GrabNothing GrabResult = iota
	// GrabBody means a grabbable body was picked up.
	GrabBody
	// GrabSurface means a climbable surface was gripped.
	GrabSurface
)

// Grab closes the hand and tries to take hold of something inside the grip volume. Grabbables are
// scanned first in registration order, then climbables; the first overlap wins. A grabbed body is put
// to sleep and parented to the grip, keeping its world pose. If the other hand held that body it lets go.
// A hand that already holds something ignores the attempt.
//
// Parameters:
//   - h: the grabbing hand
//   - other: the opposite hand, may be nil
//   - ctrl: the hand's controller, may be nil
//   - sc: the scene holding the grabbable and climbable sets
//   - s: the hand settings
//
// Returns:
//   - GrabResult: what was grabbed
func Grab(h, other *Hand, ctrl xr.Controller, sc scene.Scene, s Settings) GrabResult {
	h.Pose = PoseClosed
	if h.Holding() || ctrl == nil || sc == nil {
		return GrabNothing
	}
	grip := ctrl.Grip()
	if grip == nil {
		return GrabNothing
	}

	volume := common.Sphere{Center: grip.Position(), Radius: s.GripRadius}
	for _, b := range sc.Grabbables() {
		if !sc.IntersectsSphere(volume, b) {
			continue
		}
		if other != nil && other.Held == b {
			other.Held = nil
		}
		b.Sleep()
		b.SetParent(grip)
		h.Held = b
		return GrabBody
	}

	for _, b := range sc.Climbables() {
		if !sc.IntersectsSphere(volume, b) {
			continue
		}
		h.Surface = b
		h.Climbing = true
		if pointer := ctrl.Pointer(); pointer != nil {
			h.Reference = pointer.Position()
		} else {
			h.Reference = grip.Position()
		}
		return GrabSurface
	}
	return GrabNothing
}

// Release opens the hand and lets go of whatever it holds. A held body is detached from the grip,
// keeping its world pose, and woken up.
//
// Parameters:
//   - h: the releasing hand
//
// Returns:
//   - bool: true if the hand was holding something
func Release(h *Hand) bool {
	h.Pose = PoseOpen
	was := h.Holding()
	if h.Held != nil {
		h.Held.SetParent(nil)
		h.Held.WakeUp()
		h.Held = nil
	}
	h.Surface = nil
	h.Climbing = false
	return was
}
