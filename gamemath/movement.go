package gamemath

import "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned rectangle given by its inclusive edges.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectFromCenter builds a rectangle from its center and full size.
func RectFromCenter(cx, cy, width, height float64) Rect {
	return Rect{
		MinX: cx - width/2,
		MinY: cy - height/2,
		MaxX: cx + width/2,
		MaxY: cy + height/2,
	}
}

// Center returns the rectangle's center point.
func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p math.Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Clamp returns p moved onto the nearest point inside r.
func (r Rect) Clamp(p math.Vec2) math.Vec2 {
	return math.Vec2{
		X: ClampFloat(p.X, r.MinX, r.MaxX),
		Y: ClampFloat(p.Y, r.MinY, r.MaxY),
	}
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Directions is the held state of the four movement inputs.
type Directions struct {
	Up, Down, Left, Right bool
}

// StepDelta returns the per-axis offset for the held directions. Opposite
// directions cancel; diagonals are not normalized.
func StepDelta(dirs Directions, step float64) (dx, dy float64) {
	if dirs.Left {
		dx -= step
	}
	if dirs.Right {
		dx += step
	}
	if dirs.Up {
		dy -= step
	}
	if dirs.Down {
		dy += step
	}
	return dx, dy
}

// MoveWithin applies one frame of movement and keeps the result inside bounds.
func MoveWithin(pos math.Vec2, dirs Directions, step float64, bounds Rect) math.Vec2 {
	dx, dy := StepDelta(dirs, step)
	if dx == 0 && dy == 0 {
		return pos
	}
	return bounds.Clamp(math.Vec2{X: pos.X + dx, Y: pos.Y + dy})
}
