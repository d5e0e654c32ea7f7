package factory

import (
	"github.com/automoto/dragonfire/archetypes"
	"github.com/automoto/dragonfire/assets"
	"github.com/automoto/dragonfire/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena spawns the arena entity holding the background bounds and the
// spawn points from layout.
func CreateArena(ecs *ecs.ECS, layout assets.ArenaLayout) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Name:        layout.Name,
		Bounds:      layout.Bounds,
		PlayerSpawn: layout.PlayerSpawn,
		EnemySpawn:  layout.EnemySpawn,
	})
	return arena
}
