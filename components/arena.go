package components

import (
	"github.com/automoto/dragonfire/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ArenaData is the background rectangle the player is confined to.
type ArenaData struct {
	Name        string
	Bounds      gamemath.Rect
	PlayerSpawn math.Vec2
	EnemySpawn  math.Vec2
}

var Arena = donburi.NewComponentType[ArenaData]()
