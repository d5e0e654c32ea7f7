package factory

import (
	"time"

	"github.com/automoto/dragonfire/archetypes"
	"github.com/automoto/dragonfire/components"
	"github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/gamemath"
	"github.com/automoto/dragonfire/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile launches one dragon fire from origin toward target. The
// target is fixed at launch; flight time grows linearly with distance.
func CreateProjectile(ecs *ecs.ECS, origin, target math.Vec2) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	duration := gamemath.FlightDuration(origin, target, config.Spawner.MillisPerUnit)
	ms := float32(float64(duration) / float64(time.Millisecond))

	components.Projectile.SetValue(p, components.ProjectileData{
		Origin:   origin,
		Target:   target,
		Duration: duration,
		TweenX:   gween.New(float32(origin.X), float32(target.X), ms, ease.Linear),
		TweenY:   gween.New(float32(origin.Y), float32(target.Y), ms, ease.Linear),
	})

	sprite := components.SpriteData{
		Kind:    components.SpriteFire,
		Width:   config.Spawner.FrameWidth * config.Spawner.Scale,
		Height:  config.Spawner.FrameHeight * config.Spawner.Scale,
		AnchorX: config.Spawner.AnchorX,
		AnchorY: config.Spawner.AnchorY,
		Color:   config.Spawner.Color,
		Visible: true,
	}
	components.Sprite.SetValue(p, sprite)
	components.Position.SetValue(p, origin)

	x, y := gamemath.AnchorOffset(origin, sprite.Width, sprite.Height, sprite.AnchorX, sprite.AnchorY)
	obj := resolv.NewObject(x, y, sprite.Width, sprite.Height, tags.ResolvProjectile)
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return p
}
