package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/dragonfire/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const bytesPerFrame = 4 // 16-bit little endian, stereo

// fadeMillis smooths each note's start and end to avoid clicks
const fadeMillis = 5

// AudioLoader synthesizes and caches the game's sounds
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Sound.SFX[id]
	if !ok {
		return fmt.Errorf("no sound configured for id %d", id)
	}
	l.sfxCache[id] = SynthesizeTone(tone, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// LoadMusic returns a looping player for the background music.
func (l *AudioLoader) LoadMusic() (*audio.Player, error) {
	pcm := SynthesizeTone(cfg.Sound.Music, l.context.SampleRate())
	if len(pcm) == 0 {
		return nil, fmt.Errorf("music has no samples")
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}
	return player, nil
}

// SynthesizeTone renders tone as 16-bit stereo PCM at sampleRate.
func SynthesizeTone(tone cfg.ToneConfig, sampleRate int) []byte {
	framesPerNote := sampleRate * tone.NoteMillis / 1000
	fadeFrames := sampleRate * fadeMillis / 1000
	if fadeFrames*2 > framesPerNote {
		fadeFrames = framesPerNote / 2
	}

	buf := make([]byte, len(tone.Notes)*framesPerNote*bytesPerFrame)
	offset := 0
	for _, freq := range tone.Notes {
		for i := 0; i < framesPerNote; i++ {
			var sample float64
			if freq > 0 {
				phase := 2 * math.Pi * freq * float64(i) / float64(sampleRate)
				sample = math.Sin(phase)
				if tone.Square {
					if sample >= 0 {
						sample = 1
					} else {
						sample = -1
					}
				}
				sample *= tone.Volume * envelope(i, framesPerNote, fadeFrames)
			}

			v := int16(sample * math.MaxInt16)
			binary.LittleEndian.PutUint16(buf[offset:], uint16(v))
			binary.LittleEndian.PutUint16(buf[offset+2:], uint16(v))
			offset += bytesPerFrame
		}
	}
	return buf
}

func envelope(i, total, fade int) float64 {
	if fade <= 0 {
		return 1
	}
	if i < fade {
		return float64(i) / float64(fade)
	}
	if remaining := total - i; remaining < fade {
		return float64(remaining) / float64(fade)
	}
	return 1
}
