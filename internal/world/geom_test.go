package world

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2(t *testing.T) {
	a := Vec2{3, 4}
	assert.Equal(t, 5.0, a.Len())
	assert.Equal(t, Vec2{4, 6}, a.Add(Vec2{1, 2}))
	assert.Equal(t, Vec2{2, 2}, a.Sub(Vec2{1, 2}))
	assert.InDelta(t, 1.0, a.Norm().Len(), 1e-9)
	assert.Equal(t, Vec2{}, Vec2{}.Norm())
	assert.Equal(t, 5.0, Vec2{}.Dist(a))
	assert.Equal(t, 11.0, a.Dot(Vec2{1, 2}))
	assert.True(t, Vec2{}.IsZero())
	assert.Equal(t, 3.0, Vec2{-3, 0}.AbsX())
}

func TestDirAndPolar(t *testing.T) {
	assert.InDelta(t, 90.0, Vec2{0, 2}.Dir(), 1e-9)
	assert.InDelta(t, 180.0, Vec2{-1, 0}.Dir(), 1e-9)
	assert.Equal(t, 0.0, Vec2{}.Dir())

	p := Polar(2, 90)
	assert.InDelta(t, 0.0, p.X, 1e-9)
	assert.InDelta(t, 2.0, p.Y, 1e-9)
}

func TestAngles(t *testing.T) {
	assert.Equal(t, 180.0, NormalizeAngle(-180))
	assert.Equal(t, -90.0, NormalizeAngle(270))
	assert.Equal(t, 20.0, AngleDiff(170, -170))
	assert.Equal(t, 45.0, AngleDiff(0, 45))
	assert.Equal(t, 180.0, NormalizeAngle(540))
	assert.Equal(t, 180.0, NormalizeAngle(180))
	assert.InDelta(t, -10.0, NormalizeAngle(350+360*5), 1e-9)
}

func TestNormalizeAngleExtremes(t *testing.T) {
	for _, deg := range []float64{1e20, -1e20, math.MaxFloat64, -math.MaxFloat64} {
		n := NormalizeAngle(deg)
		assert.Greater(t, n, -180.0)
		assert.LessOrEqual(t, n, 180.0)
	}
	assert.Equal(t, 0.0, NormalizeAngle(math.Inf(1)))
	assert.Equal(t, 0.0, NormalizeAngle(math.Inf(-1)))
	assert.Equal(t, 0.0, NormalizeAngle(math.NaN()))
	assert.LessOrEqual(t, AngleDiff(0, 1e20), 180.0)
}
