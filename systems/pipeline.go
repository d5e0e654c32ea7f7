package systems

import (
	cfg "github.com/automoto/dragonfire/config"
	"github.com/yohamta/donburi/ecs"
)

// AddGameplaySystems registers the per-frame systems in their fixed order.
// Projectiles advance and impacts resolve before the timers fire, so a hit
// landing on the same frame as the winning score tick is a defeat, and fire
// launched on a frame starts moving on the next one.
func AddGameplaySystems(e *ecs.ECS) {
	addGameplaySystems(e, UpdateInput)
}

// addGameplaySystems registers the gameplay order with poll as the input
// source.
func addGameplaySystems(e *ecs.ECS, poll ecs.System) {
	e.AddSystem(poll)
	e.AddSystem(UpdateStart)
	e.AddSystem(UpdateDebugToggle)
	e.AddSystem(UpdateMuteToggle)

	e.AddSystem(WithSessionPlaying(UpdatePlayer))
	e.AddSystem(WithSessionPlaying(UpdateProjectiles))
	e.AddSystem(ResolveImpacts)
	e.AddSystem(WithSessionPlaying(UpdateTimers))
	e.AddSystem(ResolveScoreTicks)
	e.AddSystem(ResolveSpawnTicks)
	e.AddSystem(WithSessionPlaying(UpdateSessionClock))

	e.AddSystem(UpdateObjects)
	e.AddSystem(UpdateEndScreen)
}

// AddRenderers registers the arena and sprites on the default layer and the
// HUD, end screen and debug overlay above them.
func AddRenderers(e *ecs.ECS) {
	e.AddRenderer(cfg.Default, DrawArena)
	e.AddRenderer(cfg.Default, DrawSprites)
	e.AddRenderer(cfg.Overlay, DrawDebug)
	e.AddRenderer(cfg.Overlay, DrawHUD)
	e.AddRenderer(cfg.Overlay, DrawEndScreen)
}
