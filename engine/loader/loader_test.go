package loader

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forestYAML = `name: forest
meshes:
  - name: Plane.001
    size: [20, 0, 20]
  - name: Crate
    parent: Props
    position: [1, 0.5, 1]
    size: [0.4, 0.4, 0.4]
  - name: rpgpp_lt_table_01
    parent: Props
    position: [2, 0.4, 0]
    size: [1, 0.8, 1]
  - name: Rocks.003
    position: [-3, 0.5, 0]
    size: [5, 5, 5]
  - name: Ladder.001
    position: [0, 2, 3]
    rotation: [0, 90, 0]
    size: [1, 4, 0.1]
  - name: skybox
    size: [500, 500, 500]
`

const yardTOML = `name = "yard"

[[meshes]]
name = "Plane"
size = [10.0, 0.0, 10.0]

[[meshes]]
name = "Ball"
parent = "Props"
position = [0.0, 0.2, 1.0]
size = [0.2, 0.2, 0.2]
mass = 3.0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func drain(t *testing.T, l Loader) int {
	t.Helper()
	added := 0
	require.Eventually(t, func() bool {
		added += l.Poll()
		return l.Pending() == 0
	}, 2*time.Second, 5*time.Millisecond)
	return added
}

func TestLoadYAMLManifest(t *testing.T) {
	sc := scene.NewScene("forest")
	var results []Result
	var mu sync.Mutex
	l := NewLoader(sc, WithWorkers(2), WithOnFinish(func(r Result) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	}))
	defer l.Close()

	require.NoError(t, l.Submit(writeFile(t, "forest.yaml", forestYAML)))
	assert.Equal(t, 6, drain(t, l))
	assert.Equal(t, 6, sc.Count())

	mu.Lock()
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 6, results[0].Bodies)
	mu.Unlock()

	plane := sc.Find("Plane.001")
	require.NotNil(t, plane)
	assert.True(t, sc.IsGround(plane))

	crate := sc.Find("Crate")
	require.NotNil(t, crate)
	assert.True(t, sc.IsGrabbable(crate))
	assert.True(t, crate.Sleeping())
	assert.Equal(t, float32(1), crate.Mass())

	table := sc.Find("rpgpp_lt_table_01")
	require.NotNil(t, table)
	assert.False(t, sc.IsGrabbable(table))
	assert.True(t, table.Pickable())

	rocks := sc.Find("Rocks.003")
	require.NotNil(t, rocks)
	assertVec3(t, mgl32.Vec3{0.5, 0.5, 0.5}, rocks.HalfExtents(), 1e-6)

	ladder := sc.Find("Ladder.001")
	require.NotNil(t, ladder)
	assert.True(t, sc.IsClimbable(ladder))
	assertVec3(t, mgl32.Vec3{1, 0, 0}, ladder.Forward(), 1e-5)

	assert.False(t, sc.Find("skybox").Pickable())
}

func TestLoadTOMLManifest(t *testing.T) {
	sc := scene.NewScene("yard")
	l := NewLoader(sc)
	defer l.Close()

	require.NoError(t, l.Submit(writeFile(t, "yard.toml", yardTOML)))
	assert.Equal(t, 2, drain(t, l))

	ball := sc.Find("Ball")
	require.NotNil(t, ball)
	assert.True(t, sc.IsGrabbable(ball))
	assert.Equal(t, float32(3), ball.Mass())
	assert.Len(t, sc.Ground(), 1)
}

func TestLoadFailuresAreReported(t *testing.T) {
	sc := scene.NewScene("broken")
	var got []Result
	l := NewLoader(sc, WithOnFinish(func(r Result) { got = append(got, r) }))
	defer l.Close()

	require.NoError(t, l.Submit(writeFile(t, "typo.yaml", "name: x\nmeshs: []\n")))
	require.NoError(t, l.Submit(writeFile(t, "negative.yml", "meshes:\n  - name: a\n    size: [1, -1, 1]\n")))
	require.NoError(t, l.Submit(filepath.Join(t.TempDir(), "missing.toml")))

	assert.Zero(t, drain(t, l))
	assert.Zero(t, sc.Count())
	require.Len(t, got, 3)
	for _, r := range got {
		assert.Error(t, r.Err, r.Path)
	}
}

func TestSubmitRejectsUnknownFormatAndClosedLoader(t *testing.T) {
	l := NewLoader(scene.NewScene("s"))

	assert.ErrorIs(t, l.Submit("world.json"), ErrUnsupportedFormat)
	assert.Zero(t, l.Pending())

	l.Close()
	l.Close()
	assert.ErrorIs(t, l.Submit("world.yaml"), ErrClosed)
}

func TestDefaultGround(t *testing.T) {
	sc := scene.NewScene("s")
	l := NewLoader(sc, WithDefaultGround(200))
	defer l.Close()

	ground := sc.Ground()
	require.Len(t, ground, 1)
	assert.Equal(t, mgl32.Vec3{100, 0, 100}, ground[0].HalfExtents())
}

func TestNewLoaderRequiresScene(t *testing.T) {
	assert.Panics(t, func() { NewLoader(nil) })
}

func TestReadManifest(t *testing.T) {
	m, err := ReadManifest(writeFile(t, "forest.yml", forestYAML))
	require.NoError(t, err)
	assert.Equal(t, "forest", m.Name)
	assert.Len(t, m.Meshes, 6)

	empty, err := ReadManifest(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, empty.Meshes)

	_, err = ReadManifest(writeFile(t, "anon.toml", "[[meshes]]\nsize = [1.0, 1.0, 1.0]\n"))
	assert.ErrorIs(t, err, ErrInvalidManifest)
}

func TestClassify(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		mesh MeshSpec
		want Class
	}{
		{MeshSpec{Name: "Plane"}, ClassGround},
		{MeshSpec{Name: "Plane.014"}, ClassGround},
		{MeshSpec{Name: "Barrel", Parent: "Props"}, ClassGrabbable},
		{MeshSpec{Name: "Barrel"}, ClassStatic},
		{MeshSpec{Name: "rpgpp_lt_table_01", Parent: "Props"}, ClassStatic},
		{MeshSpec{Name: "Wall.north"}, ClassClimbable},
		{MeshSpec{Name: "Plane.Props", Parent: "Props"}, ClassGround},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rules.Classify(tt.mesh), tt.mesh.Name)
	}

	assert.Equal(t, float32(0.2), rules.ScaleFor("Shrub.02"))
	assert.Equal(t, float32(1), rules.ScaleFor("Tree"))

	rules.Scale["Rocks.big"] = 2
	assert.Equal(t, float32(2), rules.ScaleFor("Rocks.big.1"))
	assert.Equal(t, "grabbable", ClassGrabbable.String())
}

// assertVec3 compares vectors component by component with an absolute tolerance.
func assertVec3(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}
