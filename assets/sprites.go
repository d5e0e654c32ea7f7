package assets

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/dragonfire/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type spriteKey struct {
	kind components.SpriteKind
	w, h int
	c    color.RGBA
}

var spriteCache = map[spriteKey]*ebiten.Image{}

// SpriteImage returns the generated image for a sprite, creating it on first
// use. Images are cached per kind, size and color.
func SpriteImage(s *components.SpriteData) *ebiten.Image {
	key := spriteKey{
		kind: s.Kind,
		w:    max(1, int(math.Round(s.Width))),
		h:    max(1, int(math.Round(s.Height))),
		c:    s.Color,
	}
	if img, ok := spriteCache[key]; ok {
		return img
	}

	img := ebiten.NewImage(key.w, key.h)
	w, h := float32(key.w), float32(key.h)
	switch s.Kind {
	case components.SpritePlayer:
		drawPlayer(img, w, h, s.Color)
	case components.SpriteEnemy:
		drawDragon(img, w, h, s.Color)
	case components.SpriteFire:
		drawFire(img, w, h, s.Color)
	default:
		panic(fmt.Sprintf("no sprite for kind %d", s.Kind))
	}

	spriteCache[key] = img
	return img
}

func drawPlayer(img *ebiten.Image, w, h float32, c color.RGBA) {
	// Body and head
	vector.FillRect(img, w*0.2, h*0.35, w*0.6, h*0.65, c, false)
	vector.DrawFilledCircle(img, w/2, h*0.2, w*0.2, c, true)
}

func drawDragon(img *ebiten.Image, w, h float32, c color.RGBA) {
	wing := color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 255}
	vector.FillRect(img, 0, h*0.3, w*0.35, h*0.4, wing, false)
	vector.FillRect(img, w*0.65, h*0.3, w*0.35, h*0.4, wing, false)
	vector.FillRect(img, w*0.25, h*0.2, w*0.5, h*0.7, c, false)
	// Eyes
	vector.DrawFilledCircle(img, w*0.4, h*0.35, w*0.05, color.RGBA{R: 255, G: 220, B: 0, A: 255}, true)
	vector.DrawFilledCircle(img, w*0.6, h*0.35, w*0.05, color.RGBA{R: 255, G: 220, B: 0, A: 255}, true)
}

func drawFire(img *ebiten.Image, w, h float32, c color.RGBA) {
	r := min(w, h) / 2
	vector.DrawFilledCircle(img, w/2, h/2, r, c, true)
	vector.DrawFilledCircle(img, w/2, h/2, r*0.5, color.RGBA{R: 255, G: 240, B: 120, A: 255}, true)
}
