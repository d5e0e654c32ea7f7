package systems

import (
	"github.com/automoto/dragonfire/assets"
	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

const arenaEdgeWidth = 2

// DrawArena fills the background rectangle the player is confined to.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	bounds := components.Arena.Get(entry).Bounds

	vector.FillRect(screen,
		float32(bounds.MinX), float32(bounds.MinY),
		float32(bounds.Width()), float32(bounds.Height()),
		cfg.Arena.FillColor, false)
	vector.StrokeRect(screen,
		float32(bounds.MinX), float32(bounds.MinY),
		float32(bounds.Width()), float32(bounds.Height()),
		arenaEdgeWidth, cfg.Arena.EdgeColor, false)
}

// DrawSprites draws every visible sprite at its anchored position. The
// player is drawn last so fire passes beneath it.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	var player *donburi.Entry
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Player) {
			player = e
			return
		}
		drawSprite(e, screen)
	})
	if player != nil {
		drawSprite(player, screen)
	}
}

func drawSprite(e *donburi.Entry, screen *ebiten.Image) {
	sprite := components.Sprite.Get(e)
	if !sprite.Visible || !e.HasComponent(components.Position) {
		return
	}
	img := assets.SpriteImage(sprite)
	if img == nil {
		return
	}

	pos := components.Position.Get(e)
	x, y := gamemath.AnchorOffset(*pos, sprite.Width, sprite.Height, sprite.AnchorX, sprite.AnchorY)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}
