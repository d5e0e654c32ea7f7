package systems

import (
	"image/color"

	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDebug returns the singleton Debug component, creating if needed
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{Enabled: cfg.Debug.Enabled})
	}
	return components.Debug.Get(entry)
}

// UpdateDebugToggle flips the collision overlay.
func UpdateDebugToggle(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionToggleDebug).JustPressed {
		debug := GetOrCreateDebug(e)
		debug.Enabled = !debug.Enabled
	}
}

// DrawDebug outlines every collision object and the player's hit radius.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Enabled {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Debug.ObjectColor
			switch {
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255} // Blue
			case obj.HasTags(tags.ResolvEnemy):
				c = color.RGBA{255, 0, 0, 255} // Red
			case obj.HasTags(tags.ResolvProjectile):
				c = color.RGBA{255, 200, 0, 255} // Yellow
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	if pos, ok := PlayerPosition(ecs); ok {
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(cfg.Collision.HitRadius), 1, cfg.Debug.RadiusColor, true)
	}
}
