package systems

import (
	"github.com/automoto/dragonfire/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// ImpactEvent is published when a projectile reaches its target.
type ImpactEvent struct {
	Position math.Vec2
}

// TimerEvent is published every time a timer fires.
type TimerEvent struct {
	Kind components.TimerKind
}

var (
	Impact    = events.NewEventType[ImpactEvent]()
	SpawnTick = events.NewEventType[TimerEvent]()
	ScoreTick = events.NewEventType[TimerEvent]()
)

// RegisterEventHandlers subscribes the session's handlers to the world's
// event queues. Call once per world.
func RegisterEventHandlers(e *ecs.ECS) {
	Impact.Subscribe(e.World, func(w donburi.World, ev ImpactEvent) {
		handleImpact(e, ev)
	})
	ScoreTick.Subscribe(e.World, func(w donburi.World, ev TimerEvent) {
		handleScoreTick(e)
	})
	SpawnTick.Subscribe(e.World, func(w donburi.World, ev TimerEvent) {
		handleSpawnTick(e)
	})
}

// ResolveImpacts drains queued impacts. Runs before the timers so a hit
// landing in the same frame as the winning score tick ends in defeat.
func ResolveImpacts(e *ecs.ECS) {
	Impact.ProcessEvents(e.World)
}

// ResolveScoreTicks drains queued score ticks.
func ResolveScoreTicks(e *ecs.ECS) {
	ScoreTick.ProcessEvents(e.World)
}

// ResolveSpawnTicks drains queued spawn ticks. Runs last so new projectiles
// start moving on the following frame.
func ResolveSpawnTicks(e *ecs.ECS) {
	SpawnTick.ProcessEvents(e.World)
}
