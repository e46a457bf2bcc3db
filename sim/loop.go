package sim

import (
	"context"
	"log"
	"time"

	"github.com/lmsonic/sonicmaker/character"
)

// GameLoop steps a level on a fixed-rate ticker. The loop goroutine owns the
// level; callers only touch it from the Poll and OnTick callbacks.
type GameLoop struct {
	level *Level
	// Poll supplies the input for the next tick.
	Poll func() character.Input
	// OnTick runs after every tick, e.g. to draw.
	OnTick func(l *Level)
}

func NewGameLoop(level *Level, poll func() character.Input) *GameLoop {
	return &GameLoop{level: level, Poll: poll}
}

// Run blocks until ctx is cancelled.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.level.TPS))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.level.TPS)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return ctx.Err()
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) tick() {
	var in character.Input
	if g.Poll != nil {
		in = g.Poll()
	}
	g.level.Step(in)
	if g.OnTick != nil {
		g.OnTick(g.level)
	}
}
