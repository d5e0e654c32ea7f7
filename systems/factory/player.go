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

// CreatePlayer spawns the player at pos. The player starts hidden and is
// revealed when the session starts.
func CreatePlayer(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	sprite := components.SpriteData{
		Kind:    components.SpritePlayer,
		Width:   config.Player.FrameWidth * config.Player.Scale,
		Height:  config.Player.FrameHeight * config.Player.Scale,
		AnchorX: config.Player.AnchorX,
		AnchorY: config.Player.AnchorY,
		Color:   config.Player.Color,
	}
	components.Sprite.SetValue(player, sprite)
	components.Position.SetValue(player, pos)
	components.Player.SetValue(player, components.PlayerData{
		Step: config.Player.Step,
	})

	x, y := gamemath.AnchorOffset(pos, sprite.Width, sprite.Height, sprite.AnchorX, sprite.AnchorY)
	obj := resolv.NewObject(x, y, sprite.Width, sprite.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}
