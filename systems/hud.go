package systems

import (
	"fmt"

	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v1 takes font.Face directly
	"github.com/yohamta/donburi/ecs"
)

// ScoreLabel returns the text of the score label.
func ScoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// DrawHUD renders the score label centered at the top of the screen. The
// label stays hidden until the session starts.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(ecs)
	if session.State == components.SessionReady {
		return
	}

	face := fonts.HUD.Get()
	label := ScoreLabel(session.Score)
	bounds := text.BoundString(face, label)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := int(cfg.HUD.ScoreY) + bounds.Dy()
	text.Draw(screen, label, face, x, y, cfg.HUD.TextColor)
}
