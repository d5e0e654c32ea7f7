package assets

import (
	"embed"
	"fmt"

	cfg "github.com/automoto/dragonfire/config"
	"github.com/automoto/dragonfire/gamemath"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

//go:embed all:arena
var assetFS embed.FS

// ArenaLayout is the playfield parsed from a Tiled map
type ArenaLayout struct {
	Name        string
	Width       int // Map size in pixels
	Height      int
	Bounds      gamemath.Rect
	PlayerSpawn math.Vec2
	EnemySpawn  math.Vec2
}

// LoadArena parses the Tiled map at path from the embedded assets.
//
// Object groups read:
//   - "Arena": first object's rectangle is the background bounds
//   - "PlayerSpawn", "EnemySpawn": first object's position
//
// Missing groups fall back to DefaultArena's values.
func LoadArena(path string) (ArenaLayout, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		return ArenaLayout{}, fmt.Errorf("failed to load arena %s: %w", path, err)
	}

	layout := DefaultArena()
	layout.Width = levelMap.Width * levelMap.TileWidth
	layout.Height = levelMap.Height * levelMap.TileHeight
	layout.Name = path
	if levelMap.Properties != nil {
		if name := levelMap.Properties.GetString("name"); name != "" {
			layout.Name = name
		}
	}

	var hasPlayerSpawn, hasEnemySpawn bool
	for _, og := range levelMap.ObjectGroups {
		if len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		switch og.Name {
		case "Arena":
			if o.Width <= 0 || o.Height <= 0 {
				return ArenaLayout{}, fmt.Errorf("arena %s: background has no area (%vx%v)", path, o.Width, o.Height)
			}
			layout.Bounds = gamemath.Rect{
				MinX: o.X,
				MinY: o.Y,
				MaxX: o.X + o.Width,
				MaxY: o.Y + o.Height,
			}
		case "PlayerSpawn":
			layout.PlayerSpawn = math.Vec2{X: o.X, Y: o.Y}
			hasPlayerSpawn = true
		case "EnemySpawn":
			layout.EnemySpawn = math.Vec2{X: o.X, Y: o.Y}
			hasEnemySpawn = true
		}
	}

	// Spawns default to the corners of whatever bounds were loaded
	if !hasPlayerSpawn {
		layout.PlayerSpawn = defaultPlayerSpawn(layout.Bounds)
	}
	if !hasEnemySpawn {
		layout.EnemySpawn = defaultEnemySpawn(layout.Bounds)
	}

	return layout, nil
}

// MustLoadArena is LoadArena that panics on error.
func MustLoadArena(path string) ArenaLayout {
	layout, err := LoadArena(path)
	if err != nil {
		panic(err)
	}
	return layout
}

// DefaultArena returns the background scaled around the canvas center with
// the player in the bottom-left corner and the enemy in the top-right.
func DefaultArena() ArenaLayout {
	bounds := gamemath.RectFromCenter(
		float64(cfg.C.Width)/2,
		float64(cfg.C.Height)/2,
		cfg.Arena.BaseWidth*cfg.Arena.Scale,
		cfg.Arena.BaseHeight*cfg.Arena.Scale,
	)
	return ArenaLayout{
		Name:        "default",
		Width:       cfg.C.Width,
		Height:      cfg.C.Height,
		Bounds:      bounds,
		PlayerSpawn: defaultPlayerSpawn(bounds),
		EnemySpawn:  defaultEnemySpawn(bounds),
	}
}

func defaultPlayerSpawn(b gamemath.Rect) math.Vec2 {
	return math.Vec2{X: b.MinX + cfg.Arena.SpawnInset, Y: b.MaxY - cfg.Arena.SpawnInset}
}

func defaultEnemySpawn(b gamemath.Rect) math.Vec2 {
	return math.Vec2{X: b.MaxX - cfg.Arena.SpawnInset, Y: b.MinY + cfg.Arena.SpawnInset}
}
