package systems

import (
	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// handleSpawnTick launches one projectile from the enemy toward the player's
// current position.
func handleSpawnTick(e *ecs.ECS) {
	if !GetOrCreateSession(e).Playing() {
		return
	}
	enemyEntry, ok := components.Enemy.First(e.World)
	if !ok {
		return
	}
	target, ok := PlayerPosition(e)
	if !ok {
		return
	}

	origin := *components.Position.Get(enemyEntry)
	factory.CreateProjectile(e, origin, target)
	components.Enemy.Get(enemyEntry).Launched++
	PlaySFX(e, cfg.SoundFireLaunch)
}
