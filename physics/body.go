// Package physics holds the float kinematics and overlap tests of the arena
package physics

import (
	"math"

	"github.com/lixenwraith/star-defense/vmath"
)

// Body is a moving circle
type Body struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
}

// Integrate advances position by velocity over dt seconds
func (b *Body) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Overlap reports whether two circles touch
func Overlap(a, b Body) bool {
	r := a.Radius + b.Radius
	return vmath.DistSq(a.Pos, b.Pos) <= r*r
}

// OverlapAt is Overlap for loose positions and radii
func OverlapAt(p vmath.Vec2, pr float64, q vmath.Vec2, qr float64) bool {
	r := pr + qr
	return vmath.DistSq(p, q) <= r*r
}

// Arrive moves pos toward target at speed, stopping inside radius
// Returns the new position
func Arrive(pos, target vmath.Vec2, speed, radius, dt float64) vmath.Vec2 {
	d := vmath.Dist(pos, target)
	if d <= radius {
		return pos
	}
	step := speed * dt
	if step >= d-radius {
		step = d - radius
	}
	return pos.Add(target.Sub(pos).Normalize().Scale(step))
}

// Seek returns a velocity of magnitude speed pointing from pos to target
func Seek(pos, target vmath.Vec2, speed float64) vmath.Vec2 {
	return vmath.Toward(pos, target, speed)
}

// Steer rotates vel toward target by at most turnRate×dt radians, keeping its speed
func Steer(pos, vel, target vmath.Vec2, turnRate, dt float64) vmath.Vec2 {
	speed := vel.Len()
	if speed == 0 {
		return vel
	}
	want := target.Sub(pos).Angle()
	angle := vmath.RotateTo(vel.Angle(), want, turnRate*dt)
	return vmath.FromAngle(angle, speed)
}

// Push moves pos directly away from center by speed×dt when within radius
func Push(pos, center vmath.Vec2, radius, speed, dt float64) vmath.Vec2 {
	off := pos.Sub(center)
	d2 := off.LenSq()
	if d2 > radius*radius {
		return pos
	}
	if d2 == 0 {
		off = vmath.Vec2{X: 1}
	}
	return pos.Add(off.Normalize().Scale(speed * dt))
}

// OrbitPoint returns the position at angle on a circle around center
func OrbitPoint(center vmath.Vec2, radius, angle float64) vmath.Vec2 {
	return center.Add(vmath.FromAngle(angle, radius))
}

// WrapAngle folds an angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
