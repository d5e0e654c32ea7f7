package factory

import (
	"github.com/automoto/dragonfire/archetypes"
	"github.com/automoto/dragonfire/components"
	"github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/gamemath"
	"github.com/automoto/dragonfire/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns the dragon at pos. It never moves afterwards.
func CreateEnemy(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	sprite := components.SpriteData{
		Kind:    components.SpriteEnemy,
		Width:   config.Enemy.FrameWidth * config.Enemy.Scale,
		Height:  config.Enemy.FrameHeight * config.Enemy.Scale,
		AnchorX: config.Enemy.AnchorX,
		AnchorY: config.Enemy.AnchorY,
		Color:   config.Enemy.Color,
	}
	components.Sprite.SetValue(enemy, sprite)
	components.Position.SetValue(enemy, pos)
	components.Enemy.SetValue(enemy, components.EnemyData{})

	x, y := gamemath.AnchorOffset(pos, sprite.Width, sprite.Height, sprite.AnchorX, sprite.AnchorY)
	obj := resolv.NewObject(x, y, sprite.Width, sprite.Height, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return enemy
}
