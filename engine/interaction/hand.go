package interaction

import (
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
	"github.com/go-gl/mathgl/mgl32"
)

// HandPose is the visible state of a hand model.
type HandPose int

const (
	// PoseOpen is the resting hand.
	PoseOpen HandPose = iota
	// PoseClosed is a fist, held from squeeze press to release.
	PoseClosed
)

func (p HandPose) String() string {
	if p == PoseClosed {
		return "closed"
	}
	return "open"
}

// Hand is the per-controller interaction state carried between frames.
type Hand struct {
	Handedness xr.Handedness
	// Held is the grabbed body, parented to the grip while held.
	Held scene.Body
	// Surface is the climbable body being held.
	Surface scene.Body
	// Climbing is true while Surface is held.
	Climbing bool
	// Reference is the pointer position climbing measures hand motion against.
	Reference mgl32.Vec3
	Pose      HandPose
}

// NewHand creates an open, empty hand.
func NewHand(h xr.Handedness) Hand {
	return Hand{Handedness: h}
}

// Holding reports whether the hand holds a body or a surface.
func (h *Hand) Holding() bool {
	return h.Held != nil || h.Surface != nil
}

// AnyClimbing reports whether any of the hands is climbing.
func AnyClimbing(hands ...*Hand) bool {
	for _, h := range hands {
		if h != nil && h.Climbing {
			return true
		}
	}
	return false
}
