package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Step float64 // Units per frame per held direction
}

var Player = donburi.NewComponentType[PlayerData]()
