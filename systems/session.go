package systems

import (
	"errors"
	"log/slog"

	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// ErrAlreadyStarted is returned when starting a session that is playing.
	ErrAlreadyStarted = errors.New("session already started")
	// ErrSessionEnded is returned for any transition out of the ended state.
	ErrSessionEnded = errors.New("session has ended")
	// ErrNotPlaying is returned when ending a session that never started.
	ErrNotPlaying = errors.New("session is not playing")
	// ErrNoOutcome is returned when ending a session without an outcome.
	ErrNoOutcome = errors.New("session outcome required")
)

// GetOrCreateSession returns the singleton Session component, creating if needed
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = factory.CreateSession(e)
	}
	return components.Session.Get(entry)
}

// WithSessionPlaying wraps a system so it only runs while the session is
// playing. Ending the session pauses every wrapped system.
func WithSessionPlaying(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetOrCreateSession(e).Playing() {
			return
		}
		system(e)
	}
}

// UpdateStart starts the session when the start action is pressed.
func UpdateStart(e *ecs.ECS) {
	if GetOrCreateSession(e).State != components.SessionReady {
		return
	}
	if GetAction(getOrCreateInput(e), cfg.ActionStart).JustPressed {
		if err := StartSession(e); err != nil {
			logger.Warn("start ignored", slog.Any("err", err))
		}
	}
}

// StartSession moves the session from Ready to Playing: the player, enemy
// and score are revealed and the spawn and score timers are armed.
func StartSession(e *ecs.ECS) error {
	session := GetOrCreateSession(e)
	switch session.State {
	case components.SessionPlaying:
		return ErrAlreadyStarted
	case components.SessionEnded:
		return ErrSessionEnded
	}

	session.State = components.SessionPlaying

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		components.Sprite.Get(entry).Visible = true
	})

	factory.CreateTimer(e, components.TimerSpawn, cfg.Spawner.Interval, true)
	factory.CreateTimer(e, components.TimerScore, cfg.Scorer.Interval, true)

	PlaySFX(e, cfg.SoundStart)
	logger.Info("session started",
		slog.Duration("spawnInterval", cfg.Spawner.Interval),
		slog.Duration("scoreInterval", cfg.Scorer.Interval),
	)
	return nil
}

// EndSession moves a playing session to Ended with the given outcome. Every
// timer and projectile still alive is removed, music stops and the terminal
// message is created.
func EndSession(e *ecs.ECS, outcome components.Outcome) error {
	session := GetOrCreateSession(e)
	switch session.State {
	case components.SessionEnded:
		return ErrSessionEnded
	case components.SessionReady:
		return ErrNotPlaying
	}
	if outcome == components.OutcomeNone {
		return ErrNoOutcome
	}

	session.State = components.SessionEnded
	session.Outcome = outcome

	timers, projectiles := cancelPending(e)

	StopMusic(e)
	if outcome == components.OutcomeVictory {
		PlaySFX(e, cfg.SoundVictory)
	} else {
		PlaySFX(e, cfg.SoundHit)
	}

	createEndScreen(e, session)

	logger.Info("session ended",
		slog.String("outcome", outcome.String()),
		slog.Int("score", session.Score),
		slog.Int("frames", session.Frames),
		slog.Int("cancelledTimers", timers),
		slog.Int("cancelledProjectiles", projectiles),
	)
	return nil
}

// cancelPending removes every timer and in-flight projectile.
func cancelPending(e *ecs.ECS) (timers, projectiles int) {
	var toRemove []donburi.Entity
	components.Timer.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry.Entity())
	})
	timers = len(toRemove)
	for _, entity := range toRemove {
		e.World.Remove(entity)
	}

	toRemove = toRemove[:0]
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry.Entity())
	})
	projectiles = len(toRemove)
	for _, entity := range toRemove {
		destroyProjectile(e, entity)
	}
	return timers, projectiles
}

// UpdateSessionClock counts frames spent playing.
func UpdateSessionClock(e *ecs.ECS) {
	GetOrCreateSession(e).Frames++
}
