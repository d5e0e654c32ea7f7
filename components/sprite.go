package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteKind selects which generated image an entity is drawn with
type SpriteKind int

const (
	SpriteNone SpriteKind = iota
	SpritePlayer
	SpriteEnemy
	SpriteFire
)

type SpriteData struct {
	Kind    SpriteKind
	Width   float64
	Height  float64
	AnchorX float64 // 0 = left, 1 = right
	AnchorY float64 // 0 = top, 1 = bottom
	Color   color.RGBA
	Visible bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
