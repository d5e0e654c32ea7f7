package systems

import (
	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// handleImpact ends the session in defeat when an impact lands strictly
// within the hit radius of the player's current position.
func handleImpact(e *ecs.ECS, ev ImpactEvent) {
	if !GetOrCreateSession(e).Playing() {
		return
	}
	playerPos, ok := PlayerPosition(e)
	if !ok {
		return
	}
	if !gamemath.WithinRadius(playerPos, ev.Position, cfg.Collision.HitRadius) {
		return
	}
	_ = EndSession(e, components.OutcomeDefeat)
}
