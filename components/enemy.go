package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Launched int // Projectiles fired this session
}

var Enemy = donburi.NewComponentType[EnemyData]()
