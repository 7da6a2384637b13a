package xr

import (
	"github.com/go-gl/mathgl/mgl32"
)

// EmulatedAim tilts the pointers of emulated controllers about their local X axis. Desktop input has no
// tracked hand pose, so the right stick's Y axis stands in for raising and lowering the hands.
type EmulatedAim struct {
	// Pitch is the current tilt in radians, positive aims below the horizon.
	Pitch float32
	// Rate is the pitch speed in radians per second at full stick deflection.
	Rate float32
	// MinPitch and MaxPitch bound Pitch.
	MinPitch, MaxPitch float32
}

// NewEmulatedAim returns an aim that starts level, turns at 90°/s and stays within 60° up and 80° down.
func NewEmulatedAim() EmulatedAim {
	return EmulatedAim{
		Rate:     mgl32.DegToRad(90),
		MinPitch: mgl32.DegToRad(-60),
		MaxPitch: mgl32.DegToRad(80),
	}
}

// Update integrates one frame of stick input into Pitch and writes the tilt onto each controller's pointer.
// Pulling the stick back (+Y) lowers the aim. Nil controllers and controllers without a pointer are skipped.
//
// Parameters:
//   - axisY: the stick Y axis, already dead-zoned
//   - dt: the frame time in seconds
//   - controllers: the controllers whose pointers follow the aim
func (a *EmulatedAim) Update(axisY, dt float32, controllers ...Controller) {
	a.Pitch = mgl32.Clamp(a.Pitch+axisY*a.Rate*dt, a.MinPitch, a.MaxPitch)

	tilt := mgl32.QuatRotate(a.Pitch, mgl32.Vec3{1, 0, 0})
	for _, c := range controllers {
		if c == nil || c.Pointer() == nil {
			continue
		}
		local := c.Pointer().LocalTransform()
		local.Rotation = tilt
		c.Pointer().SetLocalTransform(local)
	}
}
