package systems

import (
	"github.com/automoto/dragonfire/components"
	"github.com/automoto/dragonfire/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each collision object to match its entity's position
// and sprite anchor.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		if e.HasComponent(components.Position) && e.HasComponent(components.Sprite) {
			pos := components.Position.Get(e)
			sprite := components.Sprite.Get(e)
			obj.X, obj.Y = gamemath.AnchorOffset(*pos, sprite.Width, sprite.Height, sprite.AnchorX, sprite.AnchorY)
		}
		obj.Update()
	})
}
