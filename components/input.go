package components

import (
	"github.com/lmsonic/sonicmaker/character"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// character actions. JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [character.ActionCount]bool
	Previous [character.ActionCount]bool
}

// Advance swaps buffers: current becomes previous, then current is cleared.
func (in *InputData) Advance() {
	in.Previous = in.Current
	in.Current = [character.ActionCount]bool{}
}

func (in *InputData) IsPressed(a character.Action) bool {
	return in.Current[a]
}

func (in *InputData) IsJustPressed(a character.Action) bool {
	return in.Current[a] && !in.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
