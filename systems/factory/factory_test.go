package factory

import (
	"testing"
	"time"

	"github.com/automoto/dragonfire/components"
	"github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func newWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 1024, 576, 16, 16)
	return e
}

func TestCreatePlayerHidden(t *testing.T) {
	e := newWorld()
	p := CreatePlayer(e, math.NewVec2(174, 470))

	sprite := components.Sprite.Get(p)
	if sprite.Visible {
		t.Error("player visible before start")
	}
	if got := components.Player.Get(p).Step; got != config.Player.Step {
		t.Errorf("Step = %v, want %v", got, config.Player.Step)
	}

	// Bottom-left anchor: the box sits above and to the right of the spawn
	obj := components.Object.Get(p)
	if obj.X != 174 || obj.Y != 470-sprite.Height {
		t.Errorf("object at (%v, %v), want (174, %v)", obj.X, obj.Y, 470-sprite.Height)
	}
	if !obj.HasTags(tags.ResolvPlayer) {
		t.Error("player object missing resolv tag")
	}
}

func TestCreateEnemyAnchor(t *testing.T) {
	e := newWorld()
	enemy := CreateEnemy(e, math.NewVec2(850, 106))

	sprite := components.Sprite.Get(enemy)
	obj := components.Object.Get(enemy)
	if obj.X != 850-sprite.Width || obj.Y != 106 {
		t.Errorf("object at (%v, %v), want (%v, 106)", obj.X, obj.Y, 850-sprite.Width)
	}
}

func TestCreateProjectile(t *testing.T) {
	tests := []struct {
		name   string
		origin math.Vec2
		target math.Vec2
		want   time.Duration
	}{
		{"horizontal 200", math.NewVec2(300, 100), math.NewVec2(100, 100), 2 * time.Second},
		{"3-4-5", math.NewVec2(0, 0), math.NewVec2(30, 40), 500 * time.Millisecond},
		{"same spot", math.NewVec2(50, 50), math.NewVec2(50, 50), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newWorld()
			entry := CreateProjectile(e, tt.origin, tt.target)

			p := components.Projectile.Get(entry)
			if p.Duration != tt.want {
				t.Errorf("Duration = %v, want %v", p.Duration, tt.want)
			}
			if p.Origin != tt.origin || p.Target != tt.target {
				t.Errorf("flight %v -> %v, want %v -> %v", p.Origin, p.Target, tt.origin, tt.target)
			}
			if got := *components.Position.Get(entry); got != tt.origin {
				t.Errorf("Position = %v, want origin %v", got, tt.origin)
			}
			if !components.Sprite.Get(entry).Visible {
				t.Error("fire not visible")
			}

			// Tweens end on the captured target
			x, _ := p.TweenX.Update(float32(tt.want/time.Millisecond) + 1)
			y, _ := p.TweenY.Update(float32(tt.want/time.Millisecond) + 1)
			if float64(x) != tt.target.X || float64(y) != tt.target.Y {
				t.Errorf("tween end = (%v, %v), want %v", x, y, tt.target)
			}

			spaceEntry, _ := components.Space.First(e.World)
			if n := len(components.Space.Get(spaceEntry).Objects()); n != 1 {
				t.Errorf("space objects = %d, want 1", n)
			}
		})
	}
}

func TestCreateTimer(t *testing.T) {
	e := newWorld()
	timer := components.Timer.Get(CreateTimer(e, components.TimerScore, time.Second, true))
	if timer.Kind != components.TimerScore || timer.Period != time.Second || !timer.Repeat {
		t.Errorf("timer = %+v", timer)
	}
	if timer.Elapsed != 0 || timer.Fired != 0 || timer.Done {
		t.Errorf("timer not fresh: %+v", timer)
	}
}

func TestCreateSessionReady(t *testing.T) {
	e := newWorld()
	s := components.Session.Get(CreateSession(e))
	if s.State != components.SessionReady || s.Score != 0 {
		t.Errorf("session = %+v, want ready with zero score", s)
	}
}
