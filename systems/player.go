package systems

import (
	"github.com/automoto/dragonfire/components"
	"github.com/automoto/dragonfire/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player by one step per held direction, keeping it
// inside the arena. Wrap with WithSessionPlaying so movement stops once the
// session ends.
func UpdatePlayer(ecs *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	bounds := components.Arena.Get(arenaEntry).Bounds
	dirs := HeldDirections(getOrCreateInput(ecs))

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		pos := components.Position.Get(e)
		*pos = gamemath.MoveWithin(*pos, dirs, player.Step, bounds)
	})
}
