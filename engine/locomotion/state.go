package locomotion

// State is the locomotion state carried between frames.
type State struct {
	Mode             Mode
	Rotation         RotationMode
	Target           TeleportTarget
	Beam             Beam
	Snap             SnapGate
	VerticalVelocity float32
}

// CycleMode advances to the next locomotion mode. Leaving teleport drops any pending target and hides the beam.
//
// Returns:
//   - Mode: the new mode
func (s *State) CycleMode() Mode {
	if s.Mode == Teleport {
		s.Target = TeleportTarget{}
		s.Beam.Hide()
	}
	s.Mode = s.Mode.Next()
	return s.Mode
}

// CycleRotation toggles the rotation mode and re-arms the snap gate.
//
// Returns:
//   - RotationMode: the new rotation mode
func (s *State) CycleRotation() RotationMode {
	s.Rotation = s.Rotation.Next()
	s.Snap = SnapGate{}
	return s.Rotation
}
