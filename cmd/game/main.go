// cmd/game/main.go
package main

import (
	"flag"
	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/state"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "JSON or YAML file overriding the enemy and tower tables")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	money := flag.Int("money", config.StartingMoney, "starting money")
	lives := flag.Int("lives", config.MaxEscapes, "escapes allowed before the game ends")
	autostart := flag.Bool("autostart", false, "skip the title screen")
	flag.Parse()

	opts := app.Options{
		Seed:          *seed,
		StartingMoney: *money,
		MaxEscapes:    *lives,
		AutoStart:     *autostart,
	}
	if *defsPath != "" {
		lib, err := defs.LoadDefinitions(*defsPath)
		if err != nil {
			log.Fatalf("Failed to load definitions: %v", err)
		}
		opts.Defs = lib
	}

	sm := state.NewStateMachine()
	if *autostart {
		gs, err := state.NewGameState(sm, opts)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, opts))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
