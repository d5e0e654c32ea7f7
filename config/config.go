package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds window and loop settings
type Config struct {
	Width  int
	Height int
	Title  string

	// TPS is the number of Update calls per second.
	TPS int
	// TickDuration is the simulated time that passes on every Update.
	TickDuration time.Duration
}

// ArenaConfig describes where the arena layout comes from and the fallback
// used when the layout has no Arena object.
type ArenaConfig struct {
	LayoutPath string

	// Fallback background rectangle, centered on the canvas
	Scale      float64
	BaseWidth  float64
	BaseHeight float64

	SpawnInset float64 // Distance of the spawns from the arena corners
	FillColor  color.RGBA
	EdgeColor  color.RGBA
}

// PlayerConfig contains player movement and sprite values
type PlayerConfig struct {
	Step float64 // Units moved per frame per held direction

	// Sprite
	FrameWidth  float64
	FrameHeight float64
	Scale       float64
	AnchorX     float64 // 0 = left edge, 1 = right edge
	AnchorY     float64 // 0 = top edge, 1 = bottom edge
	Color       color.RGBA
}

// EnemyConfig contains enemy sprite values
type EnemyConfig struct {
	FrameWidth  float64
	FrameHeight float64
	Scale       float64
	AnchorX     float64
	AnchorY     float64
	Color       color.RGBA
}

// SpawnerConfig contains dragon fire spawning values
type SpawnerConfig struct {
	Interval time.Duration
	// MillisPerUnit converts enemy-player distance into flight time.
	MillisPerUnit float64

	// Sprite
	FrameWidth  float64
	FrameHeight float64
	Scale       float64
	AnchorX     float64
	AnchorY     float64
	Color       color.RGBA
}

// CollisionConfig contains hit test values
type CollisionConfig struct {
	HitRadius float64 // Strictly-below distance that counts as a hit
}

// ScorerConfig contains score timer values
type ScorerConfig struct {
	Interval  time.Duration
	Increment int
	Threshold int
}

// HUDConfig contains score label values
type HUDConfig struct {
	ScoreY    float64
	TextColor color.RGBA
}

// EndScreenConfig contains terminal message values
type EndScreenConfig struct {
	OffsetY        float64 // Message is drawn this far above the player
	VictoryText    string
	DefeatText     string
	VictoryColor   color.RGBA
	DefeatColor    color.RGBA
	LineHeight     float64
	FadeInDuration float32 // seconds
}

// StartButtonConfig contains the play button values
type StartButtonConfig struct {
	Label        string
	Width        int
	Height       int
	FontSize     float64
	IdleColor    color.RGBA
	HoverColor   color.RGBA
	PressedColor color.RGBA
	TextColor    color.RGBA
}

// DebugConfig contains debug overlay values
type DebugConfig struct {
	Enabled     bool
	ObjectColor color.RGBA
	RadiusColor color.RGBA
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Spawner SpawnerConfig
var Collision CollisionConfig
var Scorer ScorerConfig
var HUD HUDConfig
var EndScreen EndScreenConfig
var StartButton StartButtonConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkRed     = color.RGBA{R: 150, G: 20, B: 30, A: 255}
	Cyan        = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:        1024,
		Height:       576,
		Title:        "Dragon Fire",
		TPS:          60,
		TickDuration: time.Second / 60,
	}

	Arena = ArenaConfig{
		LayoutPath: "arena/arena.tmx",
		Scale:      0.7,
		BaseWidth:  1024,
		BaseHeight: 576,
		SpawnInset: 20,
		FillColor:  color.RGBA{R: 46, G: 84, B: 52, A: 255},
		EdgeColor:  color.RGBA{R: 24, G: 48, B: 28, A: 255},
	}

	Player = PlayerConfig{
		Step:        5,
		FrameWidth:  64,
		FrameHeight: 64,
		Scale:       0.3,
		AnchorX:     0, // bottom-left
		AnchorY:     1,
		Color:       LightBlue,
	}

	Enemy = EnemyConfig{
		FrameWidth:  96,
		FrameHeight: 96,
		Scale:       0.3,
		AnchorX:     1, // top-right
		AnchorY:     0,
		Color:       DarkRed,
	}

	Spawner = SpawnerConfig{
		Interval:      500 * time.Millisecond,
		MillisPerUnit: 10,
		FrameWidth:    128,
		FrameHeight:   128,
		Scale:         0.1,
		AnchorX:       1, // top-right
		AnchorY:       0,
		Color:         Orange,
	}

	Collision = CollisionConfig{
		HitRadius: 30,
	}

	Scorer = ScorerConfig{
		Interval:  1000 * time.Millisecond,
		Increment: 30,
		Threshold: 500,
	}

	HUD = HUDConfig{
		ScoreY:    20,
		TextColor: White,
	}

	EndScreen = EndScreenConfig{
		OffsetY:        50,
		VictoryText:    "You won",
		DefeatText:     "You dead",
		VictoryColor:   Green,
		DefeatColor:    Red,
		LineHeight:     28,
		FadeInDuration: 0.4,
	}

	StartButton = StartButtonConfig{
		Label:        "PLAY",
		Width:        160,
		Height:       56,
		FontSize:     24,
		IdleColor:    color.RGBA{R: 160, G: 40, B: 30, A: 255},
		HoverColor:   color.RGBA{R: 200, G: 60, B: 40, A: 255},
		PressedColor: color.RGBA{R: 120, G: 30, B: 20, A: 255},
		TextColor:    White,
	}

	Debug = DebugConfig{
		Enabled:     false,
		ObjectColor: Cyan,
		RadiusColor: Magenta,
	}
}
