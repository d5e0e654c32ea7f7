package factory

import (
	"time"

	"github.com/automoto/dragonfire/archetypes"
	"github.com/automoto/dragonfire/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTimer arms a frame-driven timer of the given kind.
func CreateTimer(ecs *ecs.ECS, kind components.TimerKind, period time.Duration, repeat bool) *donburi.Entry {
	timer := archetypes.Timer.Spawn(ecs)
	components.Timer.SetValue(timer, components.TimerData{
		Kind:   kind,
		Period: period,
		Repeat: repeat,
	})
	return timer
}
