package world

import "math"

type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Len() float64    { return math.Hypot(a.X, a.Y) }
func (a Vec2) AbsX() float64   { return math.Abs(a.X) }
func (a Vec2) AbsY() float64   { return math.Abs(a.Y) }
func (a Vec2) Norm() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dist(b Vec2) float64  { return a.Sub(b).Len() }
func (a Vec2) IsZero() bool         { return a.X == 0 && a.Y == 0 }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }

// Dir returns the direction of a in degrees, (-180, 180].
func (a Vec2) Dir() float64 {
	if a.IsZero() {
		return 0
	}
	return math.Atan2(a.Y, a.X) * 180 / math.Pi
}

// Polar builds a vector of length r pointing at deg degrees.
func Polar(r, deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{r * math.Cos(rad), r * math.Sin(rad)}
}

// NormalizeAngle wraps deg into (-180, 180]. Non-finite angles map to 0.
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Remainder(deg, 360)
	if deg <= -180 {
		deg += 360
	}
	return deg
}

// AngleDiff is the absolute difference between two directions in degrees.
func AngleDiff(a, b float64) float64 {
	return math.Abs(NormalizeAngle(a - b))
}
