package systems

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/automoto/dragonfire/assets"
	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/gamemath"
	"github.com/automoto/dragonfire/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const testTick = 50 * time.Millisecond

var testBounds = gamemath.Rect{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 600}

// scriptedInput replaces the keyboard poll with actions set by the test.
type scriptedInput struct {
	held [cfg.ActionCount]bool
}

func (s *scriptedInput) poll(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = s.held
}

func (s *scriptedInput) hold(actions ...cfg.ActionID) {
	s.held = [cfg.ActionCount]bool{}
	for _, a := range actions {
		s.held[a] = true
	}
}

type testGame struct {
	ecs   *ecs.ECS
	input *scriptedInput
}

type worldOpts struct {
	player   math.Vec2
	enemy    math.Vec2
	noEnemy  bool
	noPlayer bool
}

// newTestGame builds a world the way the game scene does, minus rendering
// and audio output. The tick is fixed at 50ms so tween sums are exact.
func newTestGame(t *testing.T, opts worldOpts) *testGame {
	t.Helper()

	prevTick := cfg.C.TickDuration
	cfg.C.TickDuration = testTick
	prevLogger := logger
	SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() {
		cfg.C.TickDuration = prevTick
		SetLogger(prevLogger)
	})

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, int(testBounds.MaxX), int(testBounds.MaxY), 16, 16)
	factory.CreateArena(e, assetsLayout(opts))
	factory.CreateSession(e)
	if !opts.noPlayer {
		factory.CreatePlayer(e, opts.player)
	}
	if !opts.noEnemy {
		factory.CreateEnemy(e, opts.enemy)
	}
	RegisterEventHandlers(e)

	in := &scriptedInput{}
	addGameplaySystems(e, in.poll)
	return &testGame{ecs: e, input: in}
}

func (g *testGame) start(t *testing.T) {
	t.Helper()
	if err := StartSession(g.ecs); err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
}

func (g *testGame) step(frames int) {
	for i := 0; i < frames; i++ {
		g.ecs.Update()
	}
}

func (g *testGame) session() *components.SessionData {
	return GetOrCreateSession(g.ecs)
}

func (g *testGame) playerPos() math.Vec2 {
	pos, _ := PlayerPosition(g.ecs)
	return pos
}

func (g *testGame) projectiles() []*components.ProjectileData {
	var out []*components.ProjectileData
	components.Projectile.Each(g.ecs.World, func(e *donburi.Entry) {
		out = append(out, components.Projectile.Get(e))
	})
	return out
}

func (g *testGame) timers() []*components.TimerData {
	var out []*components.TimerData
	components.Timer.Each(g.ecs.World, func(e *donburi.Entry) {
		out = append(out, components.Timer.Get(e))
	})
	return out
}

func (g *testGame) timer(kind components.TimerKind) *components.TimerData {
	for _, tm := range g.timers() {
		if tm.Kind == kind {
			return tm
		}
	}
	return nil
}

func assetsLayout(opts worldOpts) assets.ArenaLayout {
	return assets.ArenaLayout{
		Name:        "test arena",
		Width:       int(testBounds.MaxX),
		Height:      int(testBounds.MaxY),
		Bounds:      testBounds,
		PlayerSpawn: opts.player,
		EnemySpawn:  opts.enemy,
	}
}
