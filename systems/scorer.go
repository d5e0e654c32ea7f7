package systems

import (
	"log/slog"

	"github.com/automoto/dragonfire/components"
	cfg "github.com/automoto/dragonfire/config"
	"github.com/yohamta/donburi/ecs"
)

// handleScoreTick adds the score increment and ends the session in victory
// once the threshold is reached.
func handleScoreTick(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if !session.Playing() {
		return
	}

	session.Score += cfg.Scorer.Increment
	logger.Debug("score", slog.Int("score", session.Score))

	if session.Score >= cfg.Scorer.Threshold {
		_ = EndSession(e, components.OutcomeVictory)
	}
}
