package economy

import (
	"errors"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"testing"
)

func TestSpendRejectsOverdraft(t *testing.T) {
	l := NewLedger(40, 5)

	if !l.CanAfford(40) || l.CanAfford(41) {
		t.Error("CanAfford disagrees with the balance")
	}

	if err := l.Spend(50); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if l.Money() != 40 {
		t.Errorf("rejected spend must not change money, got %d", l.Money())
	}

	if err := l.Spend(40); err != nil {
		t.Fatalf("Spend: %v", err)
	}
	if l.Money() != 0 {
		t.Errorf("expected 0, got %d", l.Money())
	}
}

func TestNegativeAmounts(t *testing.T) {
	l := NewLedger(10, 5)
	if err := l.Spend(-5); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount from Spend, got %v", err)
	}
	if err := l.Credit(-5); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount from Credit, got %v", err)
	}
	if l.Money() != 10 {
		t.Errorf("money changed to %d", l.Money())
	}
}

func TestSpendThenCreditRoundTrip(t *testing.T) {
	for _, cost := range []int{0, 1, 30, 199, 200} {
		l := NewLedger(200, 5)
		if err := l.Spend(cost); err != nil {
			t.Fatalf("Spend(%d): %v", cost, err)
		}
		if err := l.Credit(cost); err != nil {
			t.Fatalf("Credit(%d): %v", cost, err)
		}
		if l.Money() != 200 {
			t.Errorf("cost %d: expected 200 after round trip, got %d", cost, l.Money())
		}
	}
}

func TestRecordKillAndEscape(t *testing.T) {
	l := NewLedger(0, 2)

	l.RecordKill(25, 10)
	if l.Money() != 25 || l.Score() != 10 || l.Kills() != 1 {
		t.Errorf("unexpected ledger after kill: money=%d score=%d kills=%d", l.Money(), l.Score(), l.Kills())
	}

	if l.RecordEscape() {
		t.Error("first escape should not exhaust a budget of 2")
	}
	if l.LivesRemaining() != 1 || l.Exhausted() {
		t.Errorf("expected 1 life left, got %d", l.LivesRemaining())
	}
	if !l.RecordEscape() {
		t.Error("second escape should exhaust the budget")
	}
	if !l.Exhausted() || l.LivesRemaining() != 0 {
		t.Error("ledger should be exhausted")
	}
	if l.RecordEscape() {
		t.Error("the limit is only reported once")
	}
	if l.LivesRemaining() != 0 {
		t.Error("lives never go negative")
	}
}

func TestSellRefund(t *testing.T) {
	tests := []struct {
		total    int
		fraction float64
		want     int
	}{
		{50, 0.5, 25},
		{65, 0.5, 32},
		{95, 0.4, 38},
		{31, 0.45, 13},
		{0, 0.5, 0},
		{10, 2, 10},
	}
	for _, tt := range tests {
		got := SellRefund(tt.total, tt.fraction)
		if got != tt.want {
			t.Errorf("SellRefund(%d, %.2f): expected %d, got %d", tt.total, tt.fraction, tt.want, got)
		}
		if got > tt.total {
			t.Errorf("refund %d exceeds investment %d", got, tt.total)
		}
	}
}

func TestRefundNeverExceedsInvestment(t *testing.T) {
	for _, def := range defs.DefaultTowerDefs() {
		for level := 0; level <= def.MaxLevel(); level++ {
			total := def.TotalInvestment(level)
			refund := SellRefund(total, config.RefundFraction)
			if refund > total {
				t.Errorf("%s level %d: refund %d > investment %d", def.ID, level, refund, total)
			}
		}
	}
}

func TestUpgradeCost(t *testing.T) {
	basic := defs.DefaultTowerDefs()[defs.TowerBasic]
	if cost, ok := UpgradeCost(basic, 0); !ok || cost != 15 {
		t.Errorf("expected 15, got %d ok=%v", cost, ok)
	}
	if _, ok := UpgradeCost(basic, basic.MaxLevel()); ok {
		t.Error("max level has no upgrade")
	}
}
