// Package locomotion moves the viewpoint: continuous steering, teleporting, yaw turns,
// ground height sampling and gravity. Every function here runs on the frame thread and
// treats a missing input as "do nothing".
package locomotion

import (
	"fmt"
	"strings"
)

// Mode selects how the left thumbstick moves the user.
type Mode int

const (
	// ViewDirected steers relative to where the user is looking.
	ViewDirected Mode = iota
	// HandDirected steers relative to where the left controller points.
	HandDirected
	// Teleport aims a beam with the left controller and jumps on release.
	Teleport
	modeCount
)

// Next returns the mode that follows m in the cycle ViewDirected, HandDirected, Teleport.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

func (m Mode) String() string {
	switch m {
	case ViewDirected:
		return "view-directed"
	case HandDirected:
		return "hand-directed"
	case Teleport:
		return "teleport"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// RotationMode selects how the right thumbstick turns the user.
type RotationMode int

const (
	// Smooth turns continuously at a rate proportional to the stick.
	Smooth RotationMode = iota
	// Snap turns in fixed steps, one per stick flick.
	Snap
)

// Next toggles between Smooth and Snap.
func (r RotationMode) Next() RotationMode {
	if r == Smooth {
		return Snap
	}
	return Smooth
}

func (r RotationMode) String() string {
	switch r {
	case Smooth:
		return "smooth"
	case Snap:
		return "snap"
	}
	return fmt.Sprintf("RotationMode(%d)", int(r))
}

// GroundMissPolicy decides the height reported when the ground probe hits nothing.
type GroundMissPolicy int

const (
	// GroundMissPassthrough keeps the caller's current height.
	GroundMissPassthrough GroundMissPolicy = iota
	// GroundMissZero reports a height of zero.
	GroundMissZero
)

func (p GroundMissPolicy) String() string {
	switch p {
	case GroundMissPassthrough:
		return "passthrough"
	case GroundMissZero:
		return "zero"
	}
	return fmt.Sprintf("GroundMissPolicy(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p GroundMissPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting "passthrough" or "zero".
func (p *GroundMissPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "passthrough":
		*p = GroundMissPassthrough
	case "zero":
		*p = GroundMissZero
	default:
		return fmt.Errorf("locomotion: unknown ground miss policy %q", text)
	}
	return nil
}
