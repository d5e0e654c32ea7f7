package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space shared by every object in the arena.
var Space = donburi.NewComponentType[resolv.Space]()

// Position is the logical anchor point of an entity. Its Object box is
// derived from it each frame.
var Position = donburi.NewComponentType[math.Vec2]()
