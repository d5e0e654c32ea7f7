package systems

import (
	"time"

	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateProjectiles advances every projectile's flight. A projectile that
// reaches its target publishes an ImpactEvent and is destroyed.
func UpdateProjectiles(ecs *ecs.ECS) {
	tick := cfg.C.TickDuration
	dt := float32(float64(tick) / float64(time.Millisecond))

	type landing struct {
		entity donburi.Entity
		at     math.Vec2
	}
	var landed []landing
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		pos := components.Position.Get(e)

		x, doneX := p.TweenX.Update(dt)
		y, doneY := p.TweenY.Update(dt)
		p.Elapsed += tick
		pos.X, pos.Y = float64(x), float64(y)

		if doneX && doneY {
			landed = append(landed, landing{entity: e.Entity(), at: *pos})
		}
	})

	for _, l := range landed {
		Impact.Publish(ecs.World, ImpactEvent{Position: l.at})
		destroyProjectile(ecs, l.entity)
	}
}

// PlayerPosition returns the player's anchor position.
func PlayerPosition(e *ecs.ECS) (math.Vec2, bool) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return math.Vec2{}, false
	}
	return *components.Position.Get(entry), true
}

func destroyProjectile(ecs *ecs.ECS, entity donburi.Entity) {
	if !ecs.World.Valid(entity) {
		return
	}
	entry := ecs.World.Entry(entity)
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(entity)
}
