package factory

import (
	"github.com/automoto/dragonfire/archetypes"
	"github.com/automoto/dragonfire/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton in the Ready state.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		State: components.SessionReady,
	})
	return session
}
