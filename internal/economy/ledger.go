// Package economy tracks the player's currency, score and escape budget.
package economy

import (
	"errors"
	"go-tower-sim/internal/defs"
	"math"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("amount must not be negative")
)

// Ledger is the single owner of money and score. Every committed
// transaction leaves money >= 0; an overdraft is rejected, never clamped.
type Ledger struct {
	money      int
	score      int
	wave       int
	kills      int
	escapes    int
	maxEscapes int
	spent      int
	earned     int
}

func NewLedger(startingMoney, maxEscapes int) *Ledger {
	return &Ledger{
		money:      startingMoney,
		maxEscapes: maxEscapes,
		wave:       1,
	}
}

func (l *Ledger) Money() int       { return l.money }
func (l *Ledger) Score() int       { return l.score }
func (l *Ledger) Wave() int        { return l.wave }
func (l *Ledger) Kills() int       { return l.kills }
func (l *Ledger) Escapes() int     { return l.escapes }
func (l *Ledger) MaxEscapes() int  { return l.maxEscapes }
func (l *Ledger) TotalSpent() int  { return l.spent }
func (l *Ledger) TotalEarned() int { return l.earned }

// LivesRemaining is how many more escapes the player can absorb.
func (l *Ledger) LivesRemaining() int {
	return max(0, l.maxEscapes-l.escapes)
}

// Exhausted reports whether the escape budget is used up.
func (l *Ledger) Exhausted() bool {
	return l.escapes >= l.maxEscapes
}

func (l *Ledger) CanAfford(cost int) bool {
	return cost >= 0 && l.money >= cost
}

// Spend debits cost, or changes nothing and reports why it could not.
func (l *Ledger) Spend(cost int) error {
	if cost < 0 {
		return ErrNegativeAmount
	}
	if l.money < cost {
		return ErrInsufficientFunds
	}
	l.money -= cost
	l.spent += cost
	return nil
}

// Credit adds money. It only fails on a negative amount.
func (l *Ledger) Credit(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	l.money += amount
	l.earned += amount
	return nil
}

// RecordKill grants an enemy's reward and score.
func (l *Ledger) RecordKill(reward, score int) {
	l.money += max(0, reward)
	l.earned += max(0, reward)
	l.score += max(0, score)
	l.kills++
}

// RecordEscape counts an escaped enemy and reports whether that used up
// the last life.
func (l *Ledger) RecordEscape() bool {
	l.escapes++
	return l.escapes == l.maxEscapes
}

// SetWave mirrors the wave director's counter for end-of-run reporting.
func (l *Ledger) SetWave(wave int) {
	l.wave = wave
}

// UpgradeCost is the price of the next level of a tower.
func UpgradeCost(def defs.TowerDefinition, level int) (int, bool) {
	return def.UpgradeCost(level)
}

// SellRefund is floor(totalInvestment * fraction). It never exceeds the investment.
func SellRefund(totalInvestment int, fraction float64) int {
	if totalInvestment <= 0 || fraction <= 0 {
		return 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return int(math.Floor(float64(totalInvestment) * fraction))
}
