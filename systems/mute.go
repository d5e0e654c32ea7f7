package systems

import (
	cfg "github.com/automoto/dragonfire/config"
	"github.com/yohamta/donburi/ecs"
)

var muted bool

// UpdateMuteToggle silences or restores music and sound effects.
func UpdateMuteToggle(e *ecs.ECS) {
	if !GetAction(getOrCreateInput(e), cfg.ActionToggleMute).JustPressed {
		return
	}
	muted = !muted
	if muted {
		SetMusicVolume(0)
		SetSFXVolume(0)
		return
	}
	SetMusicVolume(cfg.Audio.DefaultMusicVol)
	SetSFXVolume(cfg.Audio.DefaultSFXVol)
}
