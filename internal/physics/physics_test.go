package physics

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/scenekit/pkg/math"
)

type particle struct {
	center, velocity math.Vec2
}

func (p *particle) Center() math.Vec2       { return p.center }
func (p *particle) Velocity() math.Vec2     { return p.velocity }
func (p *particle) SetVelocity(v math.Vec2) { p.velocity = v }
func (p *particle) Move(offset math.Vec2)   { p.center = p.center.Add(offset) }

var area = Bounds{Width: 800, Height: 600}

func TestClassify(t *testing.T) {
	tests := []struct {
		p    math.Vec2
		want Region
	}{
		{math.Vec2{X: 0, Y: 0}, Inside},
		{math.Vec2{X: 799.9, Y: 599.9}, Inside},
		{math.Vec2{X: -1, Y: 300}, Left},
		{math.Vec2{X: 800, Y: 300}, Right},
		{math.Vec2{X: 400, Y: -0.1}, Bottom},
		{math.Vec2{X: 400, Y: 600}, Top},
		{math.Vec2{X: -1, Y: -1}, Corner},
		{math.Vec2{X: 800, Y: 600}, Corner},
		{math.Vec2{X: -5, Y: 700}, Corner},
	}
	for _, tt := range tests {
		if got := area.Classify(tt.p); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestStepBounces(t *testing.T) {
	tests := []struct {
		name   string
		start  math.Vec2
		vel    math.Vec2
		region Region
		want   math.Vec2
	}{
		{"left edge", math.Vec2{X: 2, Y: 300}, math.Vec2{X: -5, Y: 3}, Left, math.Vec2{X: 5, Y: 3}},
		{"right edge", math.Vec2{X: 798, Y: 300}, math.Vec2{X: 5, Y: 3}, Right, math.Vec2{X: -5, Y: 3}},
		{"bottom edge", math.Vec2{X: 400, Y: 2}, math.Vec2{X: 4, Y: -5}, Bottom, math.Vec2{X: 4, Y: 5}},
		{"top edge", math.Vec2{X: 400, Y: 598}, math.Vec2{X: 4, Y: 5}, Top, math.Vec2{X: 4, Y: -5}},
		{"corner", math.Vec2{X: 2, Y: 2}, math.Vec2{X: -5, Y: -5}, Corner, math.Vec2{X: 5, Y: 5}},
		{"no contact", math.Vec2{X: 400, Y: 300}, math.Vec2{X: 5, Y: 5}, Inside, math.Vec2{X: 5, Y: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &particle{center: tt.start, velocity: tt.vel}
			got := Step(p, area)

			assert.Equal(t, tt.region, got)
			assert.InDelta(t, tt.want.X, p.velocity.X, 1e-5)
			assert.InDelta(t, tt.want.Y, p.velocity.Y, 1e-5)
			assert.Equal(t, tt.start.Add(tt.vel), p.center)
		})
	}
}

func TestStepReturnsInside(t *testing.T) {
	p := &particle{center: math.Vec2{X: 1, Y: 300}, velocity: math.Vec2{X: -3, Y: 0}}

	Step(p, area)
	assert.Equal(t, Left, area.Classify(p.center))
	Step(p, area)
	assert.Equal(t, Inside, area.Classify(p.center))
}

func TestBounceKeepsSpeed(t *testing.T) {
	v := math.Vec2{X: 7, Y: -24}
	for _, r := range []Region{Left, Right, Bottom, Top, Corner} {
		assert.InDelta(t, v.Length(), Bounce(v, r).Length(), 1e-4, r.String())
	}
}

func TestStepAll(t *testing.T) {
	ps := []*particle{
		{center: math.Vec2{X: 10, Y: 10}, velocity: math.Vec2{X: 1, Y: 2}},
		{center: math.Vec2{X: 20, Y: 20}, velocity: math.Vec2{X: -1, Y: -2}},
	}
	StepAll(ps, area)
	assert.Equal(t, math.Vec2{X: 11, Y: 12}, ps[0].center)
	assert.Equal(t, math.Vec2{X: 19, Y: 18}, ps[1].center)
}

func TestRandomVelocity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		v := RandomVelocity(rng, 32)
		assert.Less(t, v.Length(), float32(32))
	}
	assert.Equal(t, math.Vec2{}, RandomVelocity(rng, 0))
}
