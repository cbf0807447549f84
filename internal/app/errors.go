// internal/app/errors.go
package app

import (
	"errors"
	"fmt"
	"go-tower-sim/internal/economy"
)

var (
	ErrSessionNotRunning = errors.New("session is not running")
	ErrUnknownArchetype  = errors.New("unknown tower archetype")
	ErrIllegalCell       = errors.New("cell is not buildable")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInsufficientFunds = economy.ErrInsufficientFunds
	ErrNoSuchTower       = errors.New("no such tower")
	ErrMaxLevel          = errors.New("tower is already at max level")
	ErrNoTowerAtCell     = errors.New("no tower at cell")
	ErrNoSelection       = errors.New("nothing selected")
	ErrInvalidOptions    = errors.New("invalid options")
)

// RejectionError is returned for every refused command. It wraps one of the
// sentinel errors above; the session state is left untouched.
type RejectionError struct {
	Op  string
	Err error
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s rejected: %v", e.Op, e.Err)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}
