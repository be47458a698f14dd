package editor

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/demo"
	"github.com/Faultbox/scenekit/internal/demo/demotest"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/scene"
	"github.com/Faultbox/scenekit/internal/shape"
	"github.com/Faultbox/scenekit/pkg/math"
)

const (
	winW, winH = 800, 600
	imgW, imgH = 400, 300
)

type fixture struct {
	e     *Editor
	ctx   *demo.Context
	clock *demotest.Clock
	s     *demotest.Surface
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Default()
	cfg.Assets.Dir = "/assets"
	cfg.Simulation.Seed = 7
	tex := &demotest.Textures{Sizes: map[string][2]int{"/assets/starbuck.bmp": {imgW, imgH}}}
	ctx, clock := demotest.NewContext(cfg, tex, winW, winH)

	e := New()
	require.NoError(t, e.Init(ctx))
	t.Cleanup(e.Close)
	return &fixture{e: e, ctx: ctx, clock: clock, s: demotest.NewSurface(winW, winH)}
}

// click releases button b over scene position (x, y).
func (f *fixture) click(b input.Button, x, y int) bool {
	return f.e.HandleEvent(input.MouseUp(b, x, winH-1-y))
}

func (f *fixture) key(c rune) bool {
	return f.e.HandleEvent(input.Char(c, 0, 0))
}

// keyAt types c with the pointer over scene position (x, y).
func (f *fixture) keyAt(c rune, x, y int) bool {
	return f.e.HandleEvent(input.Char(c, x, winH-1-y))
}

func (f *fixture) triangle(t *testing.T) *shape.Triangle {
	t.Helper()
	f.click(input.ButtonLeft, 10, 10)
	f.click(input.ButtonLeft, 10, 70)
	f.click(input.ButtonLeft, 70, 10)
	require.NotEmpty(t, f.e.Triangles())
	return f.e.Triangles()[len(f.e.Triangles())-1]
}

func (f *fixture) render() {
	f.s.Reset()
	f.e.Render(f.s)
}

// observe swaps the editor logger for one recording every entry.
func (f *fixture) observe() *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	f.e.log = zap.New(core)
	return logs
}

func vertices(t *shape.Triangle) []math.Vec2 {
	var out []math.Vec2
	for _, p := range t.Points() {
		out = append(out, p.Vertex)
	}
	return out
}

func assertNear(t *testing.T, want, got math.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4)
	assert.InDelta(t, want.Y, got.Y, 1e-4)
}

func TestInitRequiresBackground(t *testing.T) {
	cfg := config.Default()
	ctx, _ := demotest.NewContext(cfg, &demotest.Textures{}, winW, winH)
	assert.Error(t, New().Init(ctx))
}

func TestInitStartsInDesign(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "design", f.e.Mode())
	assert.Equal(t, float32(imgW), f.e.Bounds().Width)
	assert.Equal(t, float32(imgH), f.e.Bounds().Height)
	assert.True(t, f.e.BackgroundShown())
	assert.False(t, f.e.Running())
}

func TestThreePointsMakeCounterClockwiseTriangle(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.click(input.ButtonLeft, 10, 10))
	assert.True(t, f.click(input.ButtonLeft, 10, 70))
	assert.Len(t, f.e.Points(), 2)
	f.click(input.ButtonLeft, 70, 10)

	require.Len(t, f.e.Triangles(), 1)
	assert.Empty(t, f.e.Points())

	tri := f.e.Triangles()[0]
	// Clicked clockwise, stored counter-clockwise.
	assert.Equal(t, []math.Vec2{{X: 10, Y: 10}, {X: 70, Y: 10}, {X: 10, Y: 70}}, vertices(tri))
	assert.Equal(t, math.Vec2{X: 70.0 / imgW, Y: 10.0 / imgH}, tri.Points()[1].TexCoord)
	assert.Equal(t, math.Red, tri.Color())
	assert.Less(t, tri.Velocity().Length(), float32(32))
}

func TestVelocitiesFollowSeed(t *testing.T) {
	a, b := newFixture(t), newFixture(t)
	for i := 0; i < 5; i++ {
		ta, tb := a.triangle(t), b.triangle(t)
		assert.Equal(t, ta.Velocity(), tb.Velocity())
	}
}

func TestDesignKeys(t *testing.T) {
	f := newFixture(t)
	f.click(input.ButtonLeft, 1, 1)
	f.click(input.ButtonRight, 0, 0)
	assert.Empty(t, f.e.Points())

	assert.True(t, f.keyAt('1', 5, 6))
	assert.Equal(t, []math.Vec2{{X: 5, Y: 6}}, f.e.Points())
	assert.True(t, f.key('u'))
	assert.Empty(t, f.e.Points())
	assert.True(t, f.key('u'), "removing from no points is harmless")

	f.keyAt('1', 5, 6)
	assert.True(t, f.key('c'))
	assert.Empty(t, f.e.Points())
	f.keyAt('1', 5, 6)
	assert.True(t, f.key('3'))
	assert.Empty(t, f.e.Points())
	assert.False(t, f.key('2'))

	f.triangle(t)
	assert.True(t, f.key('k'))
	assert.Empty(t, f.e.Triangles())
}

func TestModesNeedTriangles(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.key('s'))
	assert.False(t, f.key('a'))
	assert.Equal(t, "design", f.e.Mode())
	assert.False(t, f.key('d'), "already in design")

	f.triangle(t)
	assert.True(t, f.key('s'))
	assert.Equal(t, "selection", f.e.Mode())
}

func TestSelectAndMove(t *testing.T) {
	f := newFixture(t)
	tri := f.triangle(t)
	require.True(t, f.key('s'))

	f.click(input.ButtonLeft, 300, 300)
	_, ok := f.e.Selected()
	assert.False(t, ok)

	f.click(input.ButtonLeft, 30, 30)
	sel, ok := f.e.Selected()
	require.True(t, ok)
	assert.Same(t, tri, sel)
	assert.Equal(t, math.Green, tri.Color())

	// Right keeps the texture.
	before := tri.Points()[0].TexCoord
	f.click(input.ButtonRight, 100, 100)
	assertNear(t, math.Vec2{X: 100, Y: 100}, tri.Center())
	assert.Equal(t, before, tri.Points()[0].TexCoord)

	// Middle retextures from the new place.
	f.click(input.ButtonMiddle, 200, 150)
	assertNear(t, math.Vec2{X: 200, Y: 150}, tri.Center())
	for _, p := range tri.Points() {
		assert.InDelta(t, p.Vertex.X/imgW, p.TexCoord.X, 1e-6)
		assert.InDelta(t, p.Vertex.Y/imgH, p.TexCoord.Y, 1e-6)
	}

	// The moved triangle is picked at its new place.
	f.click(input.ButtonLeft, 30, 30)
	_, ok = f.e.Selected()
	assert.False(t, ok)
	assert.Equal(t, math.Red, tri.Color())
	f.keyAt('1', 200, 150)
	_, ok = f.e.Selected()
	assert.True(t, ok)
}

func TestRemoveSelected(t *testing.T) {
	f := newFixture(t)
	first := f.triangle(t)
	f.click(input.ButtonLeft, 200, 200)
	f.click(input.ButtonLeft, 200, 260)
	f.click(input.ButtonLeft, 260, 200)
	require.Len(t, f.e.Triangles(), 2)
	require.True(t, f.key('s'))

	f.click(input.ButtonLeft, 220, 220)
	assert.True(t, f.key('e'))
	assert.Equal(t, []*shape.Triangle{first}, f.e.Triangles())
	_, ok := f.e.Selected()
	assert.False(t, ok)

	assert.True(t, f.key('e'), "removing with nothing selected is harmless")
	assert.Len(t, f.e.Triangles(), 1)
}

func TestLeavingSelectionRestoresColor(t *testing.T) {
	f := newFixture(t)
	tri := f.triangle(t)
	f.key('s')
	f.click(input.ButtonLeft, 30, 30)
	require.Equal(t, math.Green, tri.Color())

	f.key('d')
	assert.Equal(t, math.Red, tri.Color())
}

func TestAnimation(t *testing.T) {
	f := newFixture(t)
	tri := f.triangle(t)
	tri.SetVelocity(math.Vec2{X: 5, Y: 0})
	start := tri.Center()

	require.True(t, f.key('a'))
	assert.Equal(t, "animation", f.e.Mode())
	assert.True(t, f.e.Running())
	assert.False(t, f.ctx.Timer.Fire(f.clock.Now()))

	f.clock.Advance(40 * time.Millisecond)
	require.True(t, f.ctx.Timer.Fire(f.clock.Now()))
	assert.True(t, f.e.Step())
	assert.Equal(t, start.Add(math.Vec2{X: 5}), tri.Center())
	assert.True(t, f.ctx.Timer.Armed())

	assert.False(t, f.key('p'), "single step while running")
	assert.True(t, f.key('m'))
	assert.False(t, f.e.Running())
	assert.False(t, f.ctx.Timer.Armed())
	assert.False(t, f.e.Step())

	assert.True(t, f.key('p'))
	assertNear(t, start.Add(math.Vec2{X: 10}), tri.Center())

	f.key('m')
	assert.True(t, f.key('d'))
	assert.False(t, f.e.Running())
	assert.False(t, f.ctx.Timer.Armed())
}

func TestAnimationBouncesOffBounds(t *testing.T) {
	f := newFixture(t)
	tri := f.triangle(t)
	tri.SetPosition(math.Vec2{X: imgW - 10, Y: 100})
	tri.SetVelocity(math.Vec2{X: 20, Y: 3})

	f.key('a')
	f.key('m')
	f.key('p')
	assert.Equal(t, math.Vec2{X: -20, Y: 3}, tri.Velocity())
	f.key('p')
	assert.InDelta(t, imgW-10, tri.Center().X, 1e-4)
}

func TestRenderDesign(t *testing.T) {
	f := newFixture(t)
	tri := f.triangle(t)
	f.click(input.ButtonLeft, 5, 5)
	f.render()

	require.Len(t, f.s.Figures, 3)
	bg := f.s.Figures[0]
	assert.Equal(t, scene.FigureStyle{Texture: 1}, bg.Style)
	assert.Equal(t, float32(imgW), bg.Figure.(*shape.Rectangle).Right())

	assert.Same(t, tri, f.s.Figures[1].Figure)
	assert.Equal(t, scene.FigureStyle{Hidden: true, Border: true, Center: true}, f.s.Figures[1].Style)

	dot := f.s.Figures[2]
	assert.Equal(t, math.Vec2{X: 5, Y: 5}, dot.Figure.Center())
	assert.Equal(t, math.Green, dot.Figure.Color())
	assert.Equal(t, scene.FigureStyle{Hidden: true, Center: true}, dot.Style)

	assert.False(t, f.s.DepthTest)
	assert.False(t, f.s.Lighting)
	assert.Equal(t, float32(2), f.s.PointSize)
	want := mgl32.Ortho(0, winW, 0, winH, -10, 10)
	assert.InDeltaSlice(t, want[:], f.s.Projection[:], 1e-6)
	assert.Equal(t, 0, f.s.Depth())
}

func TestRenderSelectionAndAnimation(t *testing.T) {
	f := newFixture(t)
	f.triangle(t)

	f.key('s')
	f.render()
	require.Len(t, f.s.Figures, 2)
	assert.Equal(t, scene.FigureStyle{Texture: 1, Border: true}, f.s.Figures[1].Style)

	assert.True(t, f.key('b'))
	f.render()
	require.Len(t, f.s.Figures, 1)

	f.key('a')
	f.render()
	require.Len(t, f.s.Figures, 1)
	assert.Equal(t, scene.FigureStyle{Texture: 1}, f.s.Figures[0].Style)

	f.key('b')
	f.render()
	assert.Len(t, f.s.Figures, 2)

	// Design always shows the background.
	f.key('b')
	f.key('d')
	f.render()
	assert.Len(t, f.s.Figures, 2)
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	f.triangle(t)
	f.click(input.ButtonLeft, 1, 1)
	f.key('a')
	f.key('b')

	require.True(t, f.key('r'))
	assert.Equal(t, "design", f.e.Mode())
	assert.Empty(t, f.e.Triangles())
	assert.Empty(t, f.e.Points())
	assert.True(t, f.e.BackgroundShown())
	assert.False(t, f.e.Running())

	f.triangle(t)
	assert.True(t, f.e.HandleEvent(input.Press(input.KeyF5)))
	assert.Empty(t, f.e.Triangles())
}

func TestResize(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.e.HandleEvent(input.Resize(400, 200)))
	f.e.HandleEvent(input.MouseUp(input.ButtonLeft, 10, 0))
	assert.Equal(t, []math.Vec2{{X: 10, Y: 199}}, f.e.Points())
}

func TestPointsAreLogged(t *testing.T) {
	f := newFixture(t)
	logs := f.observe()

	f.click(input.ButtonLeft, 10, 10)
	f.click(input.ButtonLeft, 10, 70)

	points := logs.FilterMessage("point").All()
	require.Len(t, points, 2)
	assert.Equal(t, zapcore.InfoLevel, points[0].Level)
	assert.Equal(t, map[string]interface{}{"n": int64(1), "x": float32(10), "y": float32(10)}, points[0].ContextMap())
	assert.Equal(t, int64(2), points[1].ContextMap()["n"])
	assert.Equal(t, float32(70), points[1].ContextMap()["y"])
}

func TestRenderLogsNoErrors(t *testing.T) {
	f := newFixture(t)
	logs := f.observe()

	f.triangle(t)
	f.render()

	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
