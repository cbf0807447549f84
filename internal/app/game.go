// internal/app/game.go
package app

import (
	"fmt"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/economy"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/system"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/grid"
	"log"

	"github.com/google/uuid"
)

// Options configures a session. Zero values fall back to the defaults in
// internal/config and the compiled-in map and tables.
type Options struct {
	Path          *grid.Path
	Defs          *defs.Library
	Rng           *utils.PRNGService // takes precedence over Seed
	Seed          int64              // zero seeds from the clock
	StartingMoney int
	MaxEscapes    int
	Logger        *log.Logger
	AutoStart     bool
}

// Game is one play session: the simulation core plus the command surface
// the presentation layer drives. It is not safe for concurrent use.
type Game struct {
	ID               string
	Path             *grid.Path
	Defs             *defs.Library
	ECS              *entity.ECS
	Ledger           *economy.Ledger
	Rng              *utils.PRNGService
	EventDispatcher  *event.Dispatcher
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	CleanupSystem    *system.CleanupSystem
	StateSystem      *system.StateSystem

	logger *log.Logger
	outbox *event.Queue

	// Selection state
	selectedArchetype defs.TowerArchetype
	hasArchetype      bool
	selectedTower     types.EntityID
}

// NewGame builds a session in the NotStarted phase, or Running when
// opts.AutoStart is set.
func NewGame(opts Options) (*Game, error) {
	if opts.StartingMoney < 0 || opts.MaxEscapes < 0 {
		return nil, fmt.Errorf("starting money %d, max escapes %d: %w", opts.StartingMoney, opts.MaxEscapes, ErrInvalidOptions)
	}

	path := opts.Path
	if path == nil {
		path = grid.DefaultPath()
	}
	library := opts.Defs
	if library == nil {
		library = defs.DefaultLibrary()
	}
	if err := library.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate definitions: %w", err)
	}
	rng := opts.Rng
	if rng == nil {
		rng = utils.NewPRNGService(opts.Seed)
	}
	money := opts.StartingMoney
	if money == 0 {
		money = config.StartingMoney
	}
	maxEscapes := opts.MaxEscapes
	if maxEscapes == 0 {
		maxEscapes = config.MaxEscapes
	}

	id := uuid.NewString()
	base := opts.Logger
	if base == nil {
		base = log.Default()
	}
	logger := log.New(base.Writer(), fmt.Sprintf("[session %s] ", id[:8]), base.Flags())

	ecs := entity.NewECS()
	ledger := economy.NewLedger(money, maxEscapes)
	eventDispatcher := event.NewDispatcher()
	outbox := event.NewQueue()
	eventDispatcher.SubscribeAll(outbox)

	g := &Game{
		ID:               id,
		Path:             path,
		Defs:             library,
		ECS:              ecs,
		Ledger:           ledger,
		Rng:              rng,
		EventDispatcher:  eventDispatcher,
		WaveSystem:       system.NewWaveSystem(ecs, path, library, ledger, rng, eventDispatcher, logger),
		MovementSystem:   system.NewMovementSystem(ecs),
		CombatSystem:     system.NewCombatSystem(ecs, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(ecs, eventDispatcher),
		CleanupSystem:    system.NewCleanupSystem(ecs, ledger, eventDispatcher),
		StateSystem:      system.NewStateSystem(ecs, ledger, eventDispatcher, logger),
		logger:           logger,
		outbox:           outbox,
	}
	g.WaveSystem.Reset()

	logger.Printf("New session: money %d, max escapes %d, seed %d", money, maxEscapes, rng.Seed())
	if opts.AutoStart {
		g.Start()
	}
	return g, nil
}

// Start moves a fresh session into Running. Calling it again does nothing.
func (g *Game) Start() {
	g.StateSystem.Start()
}

// Tick advances the simulation by dt simulated seconds. Outside the Running
// phase it does nothing. Negative dt counts as zero.
func (g *Game) Tick(dt float64) {
	if !g.StateSystem.Running() {
		return
	}
	if dt < 0 {
		dt = 0
	}

	g.ECS.GameTime += dt
	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.CleanupSystem.Update(dt)
	g.StateSystem.Update(dt)
}

// Events drains the events emitted since the previous call.
func (g *Game) Events() []event.Event {
	return g.outbox.Drain()
}

// Subscribe registers a synchronous listener on the session dispatcher.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.EventDispatcher.Subscribe(eventType, listener)
}

func (g *Game) dispatch(t event.EventType, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Time: g.ECS.GameTime, Data: data})
}

// reject logs and announces a refused command and wraps the reason.
func (g *Game) reject(op string, err error) error {
	g.logger.Printf("%s rejected: %v", op, err)
	g.dispatch(event.PurchaseRejected, event.RejectionData{Op: op, Reason: err})
	return &RejectionError{Op: op, Err: err}
}
