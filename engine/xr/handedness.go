package xr

import "strings"

// Handedness identifies which hand a controller is held in.
type Handedness int

const (
	// HandNone is a controller with no recognizable hand.
	HandNone Handedness = iota
	// HandLeft is the left hand.
	HandLeft
	// HandRight is the right hand.
	HandRight
)

// String returns "left", "right" or "none".
func (h Handedness) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	}
	return "none"
}

// Other returns the opposite hand. HandNone has no opposite and returns itself.
func (h Handedness) Other() Handedness {
	switch h {
	case HandLeft:
		return HandRight
	case HandRight:
		return HandLeft
	}
	return HandNone
}

// HandednessFromID derives the hand from a controller's unique ID, which by convention ends in "left" or "right".
//
// Parameters:
//   - id: the controller ID
//
// Returns:
//   - Handedness: the hand, or HandNone when the suffix is not recognized
func HandednessFromID(id string) Handedness {
	lower := strings.ToLower(id)
	switch {
	case strings.HasSuffix(lower, "left"):
		return HandLeft
	case strings.HasSuffix(lower, "right"):
		return HandRight
	}
	return HandNone
}
