//go:build js && wasm

package main

import (
	"log"
	"syscall/js"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	js.Global().Set("getScore", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return js.ValueOf(game.Score())
	}))

	configureWindow()
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
