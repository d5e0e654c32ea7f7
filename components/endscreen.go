package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// EndScreenData is the terminal message drawn once the session has ended
type EndScreenData struct {
	Lines    []string
	Color    color.RGBA
	Position math.Vec2 // Center of the first line
	Fade     *gween.Tween
	Alpha    float32
}

var EndScreen = donburi.NewComponentType[EndScreenData]()
