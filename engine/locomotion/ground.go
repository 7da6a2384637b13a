package locomotion

import (
	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// GroundSampler finds the viewpoint height above the ground set below a position.
type GroundSampler struct {
	Scene    scene.Scene
	Settings Settings
}

// Sample probes straight down from just above pos, hitting ground bodies only.
//
// Parameters:
//   - pos: the world position to sample under
//
// Returns:
//   - float32: the hit height plus PlayerHeight
//   - bool: false when nothing was hit or no scene is set
func (g GroundSampler) Sample(pos mgl32.Vec3) (float32, bool) {
	if g.Scene == nil {
		return 0, false
	}
	origin := pos.Add(mgl32.Vec3{0, g.Settings.GroundProbeHeight, 0})
	info := g.Scene.PickWithRay(common.NewRay(origin, mgl32.Vec3{0, -1, 0}, g.Settings.GroundProbeLength), g.Scene.IsGround)
	if !info.Hit {
		return 0, false
	}
	return info.Point.Y() + g.Settings.PlayerHeight, true
}

// Height is Sample with the miss policy applied.
//
// Parameters:
//   - pos: the world position to sample under
//
// Returns:
//   - float32: the viewpoint height for pos
func (g GroundSampler) Height(pos mgl32.Vec3) float32 {
	if h, ok := g.Sample(pos); ok {
		return h
	}
	if g.Settings.GroundMiss == GroundMissZero {
		return 0
	}
	return pos.Y()
}
