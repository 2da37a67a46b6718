package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer3d/input"
)

var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeySpace:      "Space",
	ebiten.KeyW:          "KeyW",
	ebiten.KeyA:          "KeyA",
	ebiten.KeyS:          "KeyS",
	ebiten.KeyD:          "KeyD",
	ebiten.KeyJ:          "KeyJ",
	ebiten.KeyK:          "KeyK",
	ebiten.KeyEnter:      "Enter",
	ebiten.KeyShiftLeft:  "ShiftLeft",
	ebiten.KeyShiftRight: "ShiftRight",
}

// keyboard forwards ebiten key transitions into an input.State.
type keyboard struct {
	state *input.State
	keys  []ebiten.Key
}

func newKeyboard(state *input.State) *keyboard {
	return &keyboard{state: state}
}

// Update turns this tick's key-down/key-up transitions into Press/Release
// calls. Call it once per tick before taking the snapshot.
func (k *keyboard) Update() {
	k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])
	for _, key := range k.keys {
		if code, ok := keyCodes[key]; ok {
			k.state.Release(code)
		}
	}

	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		if code, ok := keyCodes[key]; ok {
			k.state.Press(code)
		}
	}

	// key-up events are lost while unfocused
	if !ebiten.IsFocused() {
		k.state.ReleaseAll()
	}
}
