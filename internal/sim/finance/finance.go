// Package finance is the club's append-only transaction ledger. Adding
// a transaction is the only way the balance moves.
package finance

import (
	"github.com/jdlinklater/touchline/internal/models"
)

// NewLedger opens a ledger with a starting balance and no transactions.
func NewLedger(startingBalance int) models.Ledger {
	return models.Ledger{Balance: startingBalance}
}

// Add appends one transaction and returns a new ledger whose balance is
// the old balance plus the signed amount.
func Add(l models.Ledger, amount int, ttype models.TransactionType, description string, season, week int) models.Ledger {
	out := l.Clone()
	out.Transactions = append(out.Transactions, models.Transaction{
		ID:          models.NewID("tx"),
		Season:      season,
		Week:        week,
		Type:        ttype,
		Description: description,
		Amount:      amount,
	})
	out.Balance += amount
	return out
}

// Sum returns the total of all transaction amounts.
func Sum(l models.Ledger) int {
	total := 0
	for _, tx := range l.Transactions {
		total += tx.Amount
	}
	return total
}
