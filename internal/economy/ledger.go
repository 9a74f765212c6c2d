package economy

import (
	"fmt"

	"github.com/GEON1999/PomoFarm/internal/domain"
)

// Ledger guards the balances and progression of a user record.
// Debits are checked: a debit larger than the balance fails and changes nothing.
type Ledger struct {
	state *domain.UserLedger
}

// NewLedger wraps the ledger held by a user record. Mutations write through.
func NewLedger(state *domain.UserLedger) *Ledger {
	return &Ledger{state: state}
}

// Balance returns the current balance of a currency
func (l *Ledger) Balance(currency domain.Currency) (int, error) {
	switch currency {
	case domain.CurrencyGold:
		return l.state.Gold, nil
	case domain.CurrencyDiamond:
		return l.state.Diamonds, nil
	default:
		return 0, fmt.Errorf(ErrMsgUnknownCurrencyFmt, domain.ErrUnknownCurrency, currency)
	}
}

// Credit adds amount to a currency balance
func (l *Ledger) Credit(currency domain.Currency, amount int) error {
	if amount < 0 {
		return fmt.Errorf(ErrMsgNegativeCreditAmountFmt, domain.ErrInvalidInput, amount)
	}
	balance, err := l.balanceRef(currency)
	if err != nil {
		return err
	}
	*balance += amount
	return nil
}

// Debit subtracts amount from a currency balance. It returns false, leaving the
// balance untouched, when the balance is too small or the currency is unknown.
func (l *Ledger) Debit(currency domain.Currency, amount int) bool {
	if amount < 0 {
		return false
	}
	balance, err := l.balanceRef(currency)
	if err != nil {
		return false
	}
	if *balance < amount {
		return false
	}
	*balance -= amount
	return true
}

// AwardExperience adds experience and applies every level-up it pays for.
// It returns the level before and after the award.
func (l *Ledger) AwardExperience(amount int) (oldLevel, newLevel int) {
	s := l.state
	oldLevel = s.Level
	if amount > 0 {
		s.Experience += amount
	}
	for s.Experience >= LevelThreshold(s.Level) {
		s.Experience -= LevelThreshold(s.Level)
		s.Level++
	}
	return oldLevel, s.Level
}

// LevelThreshold is the experience needed to leave level
func LevelThreshold(level int) int {
	return level * domain.XPPerLevel
}

func (l *Ledger) balanceRef(currency domain.Currency) (*int, error) {
	switch currency {
	case domain.CurrencyGold:
		return &l.state.Gold, nil
	case domain.CurrencyDiamond:
		return &l.state.Diamonds, nil
	default:
		return nil, fmt.Errorf(ErrMsgUnknownCurrencyFmt, domain.ErrUnknownCurrency, currency)
	}
}
