package locomotion

import (
	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/camera"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SnapGate latches after a snap turn so one flick turns once.
type SnapGate struct {
	// Direction is the sign of the last snap, zero while armed.
	Direction float32
}

// Armed reports whether the next flick will turn.
func (g SnapGate) Armed() bool {
	return g.Direction == 0
}

// SmoothTurn yaws the viewpoint by SmoothTurnRate scaled by the stick and frame time.
//
// Parameters:
//   - vp: the viewpoint
//   - axisX: the right thumbstick X axis
//   - dt: the frame time in seconds
//   - s: the locomotion settings
func SmoothTurn(vp camera.Viewpoint, axisX, dt float32, s Settings) {
	if axisX == 0 || dt <= 0 {
		return
	}
	vp.Turn(mgl32.DegToRad(s.SmoothTurnRate) * axisX * dt)
}

// SnapTurn yaws the viewpoint by one SnapAngle step when the stick passes SnapThreshold with the gate
// armed, then disarms the gate until the stick falls back to SnapRearm or below.
//
// Parameters:
//   - gate: the snap latch, updated in place
//   - vp: the viewpoint
//   - axisX: the right thumbstick X axis
//   - s: the locomotion settings
//
// Returns:
//   - bool: true if a snap turn happened
func SnapTurn(gate *SnapGate, vp camera.Viewpoint, axisX float32, s Settings) bool {
	mag := math32.Abs(axisX)
	if mag <= s.SnapRearm {
		gate.Direction = 0
	}
	if mag <= s.SnapThreshold || !gate.Armed() {
		return false
	}

	sign := common.Sign(axisX)
	vp.Turn(sign * mgl32.DegToRad(s.SnapAngle))
	gate.Direction = sign
	return true
}

// Rotate dispatches one frame of right stick input to the active rotation mode.
//
// Parameters:
//   - mode: the rotation mode
//   - gate: the snap latch
//   - vp: the viewpoint
//   - axisX: the right thumbstick X axis
//   - dt: the frame time in seconds
//   - s: the locomotion settings
func Rotate(mode RotationMode, gate *SnapGate, vp camera.Viewpoint, axisX, dt float32, s Settings) {
	switch mode {
	case Smooth:
		SmoothTurn(vp, axisX, dt, s)
	case Snap:
		SnapTurn(gate, vp, axisX, s)
	}
}
