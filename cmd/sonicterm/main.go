// Command sonicterm plays a level in the terminal, or steps it without any
// display for a fixed number of ticks.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/config"
	"github.com/lmsonic/sonicmaker/sim"
)

func main() {
	levelsDir := flag.String("levels", "assets/levels", "directory holding .tmx levels")
	levelName := flag.String("level", "", "level to play (default: first by name)")
	characterFile := flag.String("character", "", "YAML file overriding the character tuning")
	ticks := flag.Int("ticks", 0, "run headless for this many ticks and print a summary")
	hold := flag.String("hold", "", "action held in headless mode: left, right, up, jump or roll")
	flag.Parse()

	cfg := config.Character
	if *characterFile != "" {
		loaded, err := config.LoadCharacterConfig(*characterFile)
		if err != nil {
			log.Fatalf("Failed to load character config: %v", err)
		}
		cfg = loaded
	}

	levels, names, err := sim.LoadLevels(os.DirFS(*levelsDir), ".")
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	name := *levelName
	if name == "" {
		name = names[0]
	}
	data, ok := levels[name]
	if !ok {
		log.Fatalf("Unknown level %q, have %v", name, names)
	}
	level := sim.New(data, cfg)

	if *ticks > 0 {
		if err := runHeadless(level, *ticks, *hold); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := runTerminal(level); err != nil {
		log.Fatal(err)
	}
}

func parseAction(s string) (character.Action, error) {
	switch s {
	case "left":
		return character.ActionLeft, nil
	case "right":
		return character.ActionRight, nil
	case "up":
		return character.ActionUp, nil
	case "jump":
		return character.ActionJump, nil
	case "roll":
		return character.ActionRoll, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// runHeadless steps the level as fast as possible.
func runHeadless(level *sim.Level, ticks int, hold string) error {
	var held []character.Action
	if hold != "" {
		a, err := parseAction(hold)
		if err != nil {
			return err
		}
		held = append(held, a)
	}

	var buttons sim.Buttons
	for i := 0; i < ticks; i++ {
		buttons.Next(held...)
		level.Step(&buttons)
	}
	fmt.Println(summary(level))
	return nil
}

func summary(level *sim.Level) string {
	c := level.Character
	return fmt.Sprintf("tick %d  pos %.1f,%.1f  gs %.2f  state %s  rings %d  best %d  deaths %d",
		level.Tick, c.Position.X, c.Position.Y, c.GroundSpeed(), c.State(),
		c.Rings(), level.BestRings, level.Deaths)
}

// runTerminal plays the level on a tcell screen until Esc, q or Ctrl-C.
func runTerminal(level *sim.Level) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Log lines would scroll the screen.
	log.SetOutput(io.Discard)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := &keyboard{}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
					return
				}
				if a, ok := actionForKey(ev); ok {
					keys.press(a)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	loop := sim.NewGameLoop(level, keys.Poll)
	loop.OnTick = func(l *sim.Level) {
		// Drawing every other tick is plenty for a terminal.
		if l.Tick%2 == 0 {
			draw(screen, l, summary(l))
		}
	}
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
