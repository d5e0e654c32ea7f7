package systems

import (
	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances every timer by one tick and publishes an event for
// each firing. A timer whose period fits several times into one tick fires
// several times.
func UpdateTimers(ecs *ecs.ECS) {
	tick := cfg.C.TickDuration

	components.Timer.Each(ecs.World, func(e *donburi.Entry) {
		timer := components.Timer.Get(e)
		if timer.Done || timer.Period <= 0 {
			return
		}

		timer.Elapsed += tick
		for timer.Elapsed >= timer.Period && !timer.Done {
			timer.Elapsed -= timer.Period
			timer.Fired++
			publishTimer(ecs, timer.Kind)
			if !timer.Repeat {
				timer.Done = true
			}
		}
	})
}

func publishTimer(ecs *ecs.ECS, kind components.TimerKind) {
	ev := TimerEvent{Kind: kind}
	switch kind {
	case components.TimerSpawn:
		SpawnTick.Publish(ecs.World, ev)
	case components.TimerScore:
		ScoreTick.Publish(ecs.World, ev)
	}
}
