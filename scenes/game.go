package scenes

import (
	"image/color"
	"log/slog"
	"sync"

	"github.com/automoto/dragonfire/assets"
	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/systems"
	"github.com/automoto/dragonfire/systems/factory"
	"github.com/automoto/dragonfire/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 16

// GameScene is the arena: one session from the Play button to the end
// message.
type GameScene struct {
	ecs     *ecs.ECS
	startUI *ui.StartUI
	once    sync.Once
}

// NewGameScene creates the arena scene. The world is built on first Update.
func NewGameScene() *GameScene {
	return &GameScene{}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	if gs.startUI.Visible() {
		gs.startUI.Update()
	}
	gs.ecs.Update()

	if gs.startUI.Visible() && systems.GetOrCreateSession(gs.ecs).State != components.SessionReady {
		gs.startUI.Hide()
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.startUI.Draw(screen)
}

// Score returns the current score, or zero before the scene is built.
func (gs *GameScene) Score() int {
	if gs.ecs == nil {
		return 0
	}
	return systems.GetOrCreateSession(gs.ecs).Score
}

func (gs *GameScene) configure() {
	// Render the sound effects up front (slow under WASM)
	systems.PreloadAllSFX()

	layout := assets.MustLoadArena(cfg.Arena.LayoutPath)

	e := ecs.NewECS(donburi.NewWorld())

	// Audio runs first so sounds queued last frame play immediately
	e.AddSystem(systems.UpdateAudio)
	systems.AddGameplaySystems(e)
	systems.AddRenderers(e)

	gs.ecs = e

	factory.CreateArena(e, layout)
	factory.CreateSpace(e, layout.Width, layout.Height, spaceCellSize, spaceCellSize)
	factory.CreateSession(e)
	factory.CreatePlayer(e, layout.PlayerSpawn)
	factory.CreateEnemy(e, layout.EnemySpawn)
	systems.RegisterEventHandlers(e)

	gs.startUI = ui.NewStartUI(func() {
		if err := systems.StartSession(gs.ecs); err != nil {
			slog.Warn("start ignored", slog.Any("err", err))
		}
	})

	systems.PlayMusic(e)

	slog.Info("arena loaded",
		slog.String("name", layout.Name),
		slog.Any("bounds", layout.Bounds),
	)
}
