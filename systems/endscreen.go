package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dragonfire/archetypes"
	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v1 takes font.Face directly
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// createEndScreen spawns the terminal message above the player.
func createEndScreen(e *ecs.ECS, session *components.SessionData) *donburi.Entry {
	c := cfg.EndScreen.DefeatColor
	if session.Outcome == components.OutcomeVictory {
		c = cfg.EndScreen.VictoryColor
	}

	var pos math.Vec2
	if playerPos, ok := PlayerPosition(e); ok {
		pos = math.NewVec2(playerPos.X, playerPos.Y-cfg.EndScreen.OffsetY)
	}

	entry := archetypes.EndScreen.Spawn(e)
	components.EndScreen.SetValue(entry, components.EndScreenData{
		Lines:    EndScreenLines(session),
		Color:    c,
		Position: pos,
		Fade:     gween.New(0, 1, cfg.EndScreen.FadeInDuration, ease.OutQuad),
	})
	return entry
}

// EndScreenLines returns the terminal message for an ended session.
func EndScreenLines(session *components.SessionData) []string {
	headline := cfg.EndScreen.DefeatText
	if session.Outcome == components.OutcomeVictory {
		headline = cfg.EndScreen.VictoryText
	}
	return []string{headline, fmt.Sprintf("Final Score: %d", session.Score)}
}

// UpdateEndScreen fades the terminal message in.
func UpdateEndScreen(e *ecs.ECS) {
	entry, ok := components.EndScreen.First(e.World)
	if !ok {
		return
	}
	screen := components.EndScreen.Get(entry)
	if screen.Fade == nil {
		screen.Alpha = 1
		return
	}
	alpha, done := screen.Fade.Update(float32(cfg.C.TickDuration.Seconds()))
	screen.Alpha = alpha
	if done {
		screen.Fade = nil
	}
}

// DrawEndScreen renders the terminal message centered on its position.
func DrawEndScreen(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.EndScreen.First(e.World)
	if !ok {
		return
	}
	data := components.EndScreen.Get(entry)

	face := fonts.Title.Get()
	c := fadeColor(data.Color, data.Alpha)
	for i, line := range data.Lines {
		bounds := text.BoundString(face, line)
		x := int(data.Position.X) - bounds.Dx()/2
		y := int(data.Position.Y + float64(i)*cfg.EndScreen.LineHeight)
		text.Draw(screen, line, face, x, y, c)
	}
}

func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	// RGBA is premultiplied
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
