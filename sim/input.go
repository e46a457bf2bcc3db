package sim

import "github.com/lmsonic/sonicmaker/character"

// Buttons is a character.Input fed one tick at a time by a runner that has
// no input library of its own.
type Buttons struct {
	held, prev [character.ActionCount]bool
}

// Next starts a new tick with exactly the given actions held.
func (b *Buttons) Next(held ...character.Action) {
	b.prev = b.held
	b.held = [character.ActionCount]bool{}
	for _, a := range held {
		b.held[a] = true
	}
}

func (b *Buttons) IsPressed(a character.Action) bool {
	return b.held[a]
}

func (b *Buttons) IsJustPressed(a character.Action) bool {
	return b.held[a] && !b.prev[a]
}
