package gamemath

import (
	stdmath "math"
	"time"

	"github.com/yohamta/donburi/features/math"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b math.Vec2) float64 {
	return stdmath.Hypot(b.X-a.X, b.Y-a.Y)
}

// FlightDuration returns how long a projectile takes to cover the straight
// line from origin to target at millisPerUnit milliseconds per unit.
func FlightDuration(origin, target math.Vec2, millisPerUnit float64) time.Duration {
	ms := Distance(origin, target) * millisPerUnit
	if ms <= 0 || stdmath.IsNaN(ms) {
		return 0
	}
	return time.Duration(ms * float64(time.Millisecond))
}

// WithinRadius reports whether a and b are strictly closer than radius.
func WithinRadius(a, b math.Vec2, radius float64) bool {
	return Distance(a, b) < radius
}

// AnchorOffset returns the top-left corner of a box of the given size whose
// anchor (0..1 on each axis) sits at pos.
func AnchorOffset(pos math.Vec2, width, height, anchorX, anchorY float64) (x, y float64) {
	return pos.X - width*anchorX, pos.Y - height*anchorY
}
