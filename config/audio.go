package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFireLaunch
	SoundHit
	SoundVictory
	SoundStart
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// ToneConfig describes a synthesized sound: a sequence of notes played with
// a single waveform.
type ToneConfig struct {
	Notes      []float64 // Frequencies in Hz, 0 = rest
	NoteMillis int       // Length of one note
	Volume     float64   // Peak amplitude 0.0 - 1.0
	Square     bool      // Square wave instead of sine
}

// SoundConfig maps sounds to their synthesis parameters
type SoundConfig struct {
	Music ToneConfig
	SFX   map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.35,
		DefaultSFXVol:   0.8,
	}

	Sound = SoundConfig{
		// Minor-key loop, eight bars of quarter notes
		Music: ToneConfig{
			Notes: []float64{
				220.00, 261.63, 329.63, 261.63,
				196.00, 246.94, 293.66, 246.94,
				174.61, 220.00, 261.63, 220.00,
				164.81, 207.65, 246.94, 0,
			},
			NoteMillis: 250,
			Volume:     0.25,
		},
		SFX: map[SoundID]ToneConfig{
			SoundFireLaunch: {Notes: []float64{880, 660}, NoteMillis: 30, Volume: 0.15, Square: true},
			SoundHit:        {Notes: []float64{110, 82.41, 55}, NoteMillis: 90, Volume: 0.5, Square: true},
			SoundVictory:    {Notes: []float64{523.25, 659.25, 783.99, 1046.5}, NoteMillis: 120, Volume: 0.4},
			SoundStart:      {Notes: []float64{440, 880}, NoteMillis: 60, Volume: 0.3},
		},
	}
}
