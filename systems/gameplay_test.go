package systems

import (
	"testing"
	"time"

	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/gamemath"
	"github.com/automoto/dragonfire/systems/factory"
	"github.com/yohamta/donburi/features/math"
)

// Frames at the 50ms test tick
const (
	spawnFrame     = 10 // first 500ms spawn timer firing
	scoreFrames    = 20 // 1000ms between score ticks
	firstHitFrame  = 50 // spawnFrame + 2000ms flight
	farEnemyOffset = 200
)

func TestPlayerMovementClamped(t *testing.T) {
	tests := []struct {
		name  string
		start math.Vec2
		hold  []cfg.ActionID
		want  math.Vec2
	}{
		{"right", math.NewVec2(500, 300), []cfg.ActionID{cfg.ActionMoveRight}, math.NewVec2(505, 300)},
		{"up left", math.NewVec2(500, 300), []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveLeft}, math.NewVec2(495, 295)},
		{"opposite cancels", math.NewVec2(500, 300), []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, math.NewVec2(500, 300)},
		{"left edge", math.NewVec2(2, 300), []cfg.ActionID{cfg.ActionMoveLeft}, math.NewVec2(0, 300)},
		{"right edge", math.NewVec2(1000, 300), []cfg.ActionID{cfg.ActionMoveRight}, math.NewVec2(1000, 300)},
		{"top edge", math.NewVec2(500, 3), []cfg.ActionID{cfg.ActionMoveUp}, math.NewVec2(500, 0)},
		{"bottom corner", math.NewVec2(0, 600), []cfg.ActionID{cfg.ActionMoveDown, cfg.ActionMoveLeft}, math.NewVec2(0, 600)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, worldOpts{player: tt.start, noEnemy: true})
			g.start(t)
			g.input.hold(tt.hold...)
			g.step(1)

			if got := g.playerPos(); got != tt.want {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayerStaysInArena(t *testing.T) {
	dirs := [][]cfg.ActionID{
		{cfg.ActionMoveUp},
		{cfg.ActionMoveDown},
		{cfg.ActionMoveLeft},
		{cfg.ActionMoveRight},
	}
	g := newTestGame(t, worldOpts{player: math.NewVec2(500, 300), noEnemy: true})
	g.start(t)

	for _, d := range dirs {
		g.input.hold(d...)
		for i := 0; i < 150; i++ {
			g.step(1)
			if pos := g.playerPos(); !testBounds.Contains(pos) {
				t.Fatalf("player left the arena holding %v: %v", d, pos)
			}
		}
	}
}

func TestCollisionObjectFollowsPlayer(t *testing.T) {
	g := newTestGame(t, worldOpts{player: math.NewVec2(500, 300), noEnemy: true})
	g.start(t)
	g.input.hold(cfg.ActionMoveRight, cfg.ActionMoveDown)
	g.step(4)

	entry, _ := components.Player.First(g.ecs.World)
	obj := components.Object.Get(entry)
	sprite := components.Sprite.Get(entry)
	wantX, wantY := gamemath.AnchorOffset(math.NewVec2(520, 320), sprite.Width, sprite.Height, sprite.AnchorX, sprite.AnchorY)
	if obj.X != wantX || obj.Y != wantY {
		t.Errorf("object at (%v, %v), want (%v, %v)", obj.X, obj.Y, wantX, wantY)
	}
}

func TestSpawnCapturesTarget(t *testing.T) {
	player := math.NewVec2(100, 100)
	enemy := math.NewVec2(100+farEnemyOffset, 100)
	g := newTestGame(t, worldOpts{player: player, enemy: enemy})
	g.start(t)

	g.step(spawnFrame - 1)
	if n := len(g.projectiles()); n != 0 {
		t.Fatalf("projectiles = %d before first spawn, want 0", n)
	}

	g.step(1)
	ps := g.projectiles()
	if len(ps) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(ps))
	}
	p := ps[0]
	if p.Origin != enemy || p.Target != player {
		t.Errorf("flight %v -> %v, want %v -> %v", p.Origin, p.Target, enemy, player)
	}
	if p.Duration != 2*time.Second {
		t.Errorf("Duration = %v, want 2s", p.Duration)
	}

	// Moving after launch does not retarget
	g.input.hold(cfg.ActionMoveDown)
	g.step(5)
	if p := g.projectiles()[0]; p.Target != player {
		t.Errorf("Target = %v after move, want %v", p.Target, player)
	}

	entry, _ := components.Enemy.First(g.ecs.World)
	if n := components.Enemy.Get(entry).Launched; n != 1 {
		t.Errorf("Launched = %d, want 1", n)
	}
}

func TestProjectileMovesLinearly(t *testing.T) {
	g := newTestGame(t, worldOpts{player: math.NewVec2(100, 100), enemy: math.NewVec2(300, 100)})
	g.start(t)
	g.step(spawnFrame + 20) // halfway through a 2s flight

	var found bool
	for _, p := range g.projectiles() {
		if p.Elapsed != time.Second {
			continue
		}
		found = true
		x, _ := p.TweenX.Update(0)
		if x != 200 {
			t.Errorf("x halfway = %v, want 200", x)
		}
	}
	if !found {
		t.Error("no projectile one second into its flight")
	}
}

func TestZeroDistanceSpawn(t *testing.T) {
	g := newTestGame(t, worldOpts{player: math.NewVec2(100, 100), enemy: math.NewVec2(100, 100)})
	g.start(t)
	g.step(spawnFrame)

	ps := g.projectiles()
	if len(ps) != 1 || ps[0].Duration != 0 {
		t.Fatalf("projectiles = %v, want one with zero duration", ps)
	}

	g.step(1)
	if got := g.session().Outcome; got != components.OutcomeDefeat {
		t.Errorf("Outcome = %v, want defeat on next frame", got)
	}
}

func TestImpactRadius(t *testing.T) {
	tests := []struct {
		name   string
		impact math.Vec2
		want   components.SessionState
	}{
		{"exactly 30 misses", math.NewVec2(130, 100), components.SessionPlaying},
		{"3-4-5 at 30 misses", math.NewVec2(118, 124), components.SessionPlaying},
		{"just inside hits", math.NewVec2(129.9, 100), components.SessionEnded},
		{"direct hit", math.NewVec2(100, 100), components.SessionEnded},
		{"far away", math.NewVec2(400, 400), components.SessionPlaying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, worldOpts{player: math.NewVec2(100, 100), noEnemy: true})
			g.start(t)

			Impact.Publish(g.ecs.World, ImpactEvent{Position: tt.impact})
			ResolveImpacts(g.ecs)

			if got := g.session().State; got != tt.want {
				t.Errorf("State = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStationaryPlayerHitAtTwoSeconds(t *testing.T) {
	g := newTestGame(t, worldOpts{player: math.NewVec2(100, 100), enemy: math.NewVec2(300, 100)})
	g.start(t)

	g.step(firstHitFrame - 1)
	if !g.session().Playing() {
		t.Fatalf("session ended before the first arrival: %v", g.session().Outcome)
	}

	g.step(1)
	s := g.session()
	if s.State != components.SessionEnded || s.Outcome != components.OutcomeDefeat {
		t.Fatalf("session = %v/%v, want ended/defeat", s.State, s.Outcome)
	}
	if s.Score != 60 {
		t.Errorf("Score = %d, want 60", s.Score)
	}
}

func TestMovedPlayerSurvivesFirstArrival(t *testing.T) {
	g := newTestGame(t, worldOpts{player: math.NewVec2(100, 100), enemy: math.NewVec2(300, 100)})
	g.start(t)

	g.step(spawnFrame)
	g.input.hold(cfg.ActionMoveDown)
	g.step(8) // 40 units away from the first target
	g.input.hold()
	g.step(firstHitFrame - spawnFrame - 8)

	if !g.session().Playing() {
		t.Fatalf("session = %v/%v at first arrival, want playing", g.session().State, g.session().Outcome)
	}
	if got := g.playerPos(); got != math.NewVec2(100, 140) {
		t.Errorf("player = %v, want (100, 140)", got)
	}
}

func TestNoInputFirstArrivalDefeats(t *testing.T) {
	g := newTestGame(t, worldOpts{player: math.NewVec2(512, 288), enemy: math.NewVec2(850, 106)})
	g.start(t)

	for frame := 1; frame <= 400 && g.session().Playing(); frame++ {
		g.step(1)
	}
	if got := g.session().Outcome; got != components.OutcomeDefeat {
		t.Errorf("Outcome = %v, want defeat", got)
	}
}

func TestScoreReachesVictory(t *testing.T) {
	g := newTestGame(t, worldOpts{player: math.NewVec2(100, 100), noEnemy: true})
	g.start(t)

	for tick := 1; tick <= 16; tick++ {
		g.step(scoreFrames)
		if got, want := g.session().Score, tick*cfg.Scorer.Increment; got != want {
			t.Fatalf("Score after tick %d = %d, want %d", tick, got, want)
		}
		if !g.session().Playing() {
			t.Fatalf("session ended at tick %d", tick)
		}
	}

	g.step(scoreFrames)
	s := g.session()
	if s.Score != 510 {
		t.Errorf("Score = %d, want 510", s.Score)
	}
	if s.Outcome != components.OutcomeVictory {
		t.Errorf("Outcome = %v, want victory", s.Outcome)
	}
}

func TestDefeatBeatsVictoryOnSameFrame(t *testing.T) {
	g := newTestGame(t, worldOpts{player: math.NewVec2(100, 100), noEnemy: true})
	g.start(t)
	g.session().Score = cfg.Scorer.Threshold - cfg.Scorer.Increment + 10

	score := g.timer(components.TimerScore)
	score.Elapsed = score.Period - testTick
	factory.CreateProjectile(g.ecs, math.NewVec2(100, 100), math.NewVec2(100, 100))

	g.step(1)
	s := g.session()
	if s.Outcome != components.OutcomeDefeat {
		t.Errorf("Outcome = %v, want defeat", s.Outcome)
	}
	if s.Score != cfg.Scorer.Threshold-cfg.Scorer.Increment+10 {
		t.Errorf("Score = %d, want unchanged", s.Score)
	}
}

func TestNothingChangesAfterEnd(t *testing.T) {
	g := newTestGame(t, worldOpts{player: math.NewVec2(100, 100), enemy: math.NewVec2(300, 100)})
	g.start(t)
	g.step(firstHitFrame)
	if !g.session().Defeated() {
		t.Fatal("session did not end")
	}

	pos := g.playerPos()
	score := g.session().Score
	frames := g.session().Frames

	g.input.hold(cfg.ActionMoveRight)
	g.step(200)

	if got := g.playerPos(); got != pos {
		t.Errorf("player moved after end: %v -> %v", pos, got)
	}
	if got := g.session().Score; got != score {
		t.Errorf("Score changed after end: %d -> %d", score, got)
	}
	if got := g.session().Frames; got != frames {
		t.Errorf("Frames advanced after end: %d -> %d", frames, got)
	}
	if n := len(g.projectiles()); n != 0 {
		t.Errorf("projectiles = %d after end", n)
	}
	if n := len(g.timers()); n != 0 {
		t.Errorf("timers = %d after end", n)
	}
	if got := g.session().Outcome; got != components.OutcomeDefeat {
		t.Errorf("Outcome = %v, want defeat", got)
	}
}

func TestTimerFiring(t *testing.T) {
	g := newTestGame(t, worldOpts{noPlayer: true, noEnemy: true})

	once := factory.CreateTimer(g.ecs, components.TimerSpawn, 100*time.Millisecond, false)
	fast := factory.CreateTimer(g.ecs, components.TimerScore, 20*time.Millisecond, true)

	for i := 0; i < 5; i++ {
		UpdateTimers(g.ecs)
	}

	if tm := components.Timer.Get(once); tm.Fired != 1 || !tm.Done {
		t.Errorf("one-shot timer fired %d done=%v, want 1 true", tm.Fired, tm.Done)
	}
	// 250ms at 20ms per firing
	if tm := components.Timer.Get(fast); tm.Fired != 12 {
		t.Errorf("repeating timer fired %d, want 12", tm.Fired)
	}
}
