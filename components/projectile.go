package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProjectileData is one dragon fire in flight. The target is captured when
// the projectile is launched and never changes afterwards.
type ProjectileData struct {
	Origin   math.Vec2
	Target   math.Vec2
	Duration time.Duration
	Elapsed  time.Duration

	// Tweens run in milliseconds
	TweenX *gween.Tween
	TweenY *gween.Tween
}

var Projectile = donburi.NewComponentType[ProjectileData]()
