package main

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/sim"
)

// Terminals only report key presses, so a press holds its action for a
// number of ticks and key repeat keeps it held.
const (
	holdTicks     = 30
	jumpHoldTicks = 12
)

// keyboard turns terminal key events into held actions. Events arrive on
// the event goroutine, Poll runs on the game loop.
type keyboard struct {
	mu      sync.Mutex
	tick    int
	expires [character.ActionCount]int
	buttons sim.Buttons
}

func actionForKey(ev *tcell.EventKey) (character.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return character.ActionLeft, true
	case tcell.KeyRight:
		return character.ActionRight, true
	case tcell.KeyUp:
		return character.ActionUp, true
	case tcell.KeyDown:
		return character.ActionRoll, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'z', 'x':
			return character.ActionJump, true
		case 'a':
			return character.ActionLeft, true
		case 'd':
			return character.ActionRight, true
		case 'w':
			return character.ActionUp, true
		case 's', 'c':
			return character.ActionRoll, true
		}
	}
	return 0, false
}

func (k *keyboard) press(a character.Action) {
	k.mu.Lock()
	defer k.mu.Unlock()

	ticks := holdTicks
	if a == character.ActionJump {
		ticks = jumpHoldTicks
	}
	k.expires[a] = k.tick + ticks
	// Opposite directions cancel each other.
	switch a {
	case character.ActionLeft:
		k.expires[character.ActionRight] = 0
	case character.ActionRight:
		k.expires[character.ActionLeft] = 0
	}
}

// Poll advances one tick and returns the actions still held.
func (k *keyboard) Poll() character.Input {
	k.mu.Lock()
	defer k.mu.Unlock()

	var held []character.Action
	for a, expires := range k.expires {
		if expires > k.tick {
			held = append(held, character.Action(a))
		}
	}
	k.tick++
	k.buttons.Next(held...)
	return &k.buttons
}
