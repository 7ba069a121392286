// Package summary derives the dashboard highlight cards from a ledger
// snapshot: income and expense totals, the resulting balance, and the
// date of the latest movement of each kind.
//
// Summarize is pure. It never mutates its input and recomputing it on
// the same snapshot always yields the same result; the dashboard simply
// calls it again on every refresh.
package summary

import (
	"time"

	"gofinances/internal/core"
)

// Card is one highlight: a running total plus the most recent
// transaction date feeding it. HasLast is false when no transaction of
// the card's kind exists yet; LastDate is meaningless in that case.
type Card struct {
	Total    core.Money
	LastDate time.Time
	HasLast  bool
}

type Highlights struct {
	Entries  Card
	Expenses Card
	Balance  Card
}

// Summarize partitions the snapshot by kind and totals each side.
// Totals of an empty group are zero, and the balance may be negative;
// nothing is clamped.
func Summarize(txs []core.Transaction) Highlights {
	var entries, expenses Card

	for _, tx := range txs {
		switch tx.Kind {
		case core.Positive:
			entries.note(tx)
		case core.Negative:
			expenses.note(tx)
		}
	}

	balance := Card{
		Total: core.Money{Cents: entries.Total.Cents - expenses.Total.Cents},
		// The balance card has always been labeled with the latest
		// expense date only, not the latest overall movement. Kept
		// as-is; see DESIGN.md.
		LastDate: expenses.LastDate,
		HasLast:  expenses.HasLast,
	}

	return Highlights{Entries: entries, Expenses: expenses, Balance: balance}
}

func (c *Card) note(tx core.Transaction) {
	c.Total.Cents += tx.Amount.Cents
	if !c.HasLast || tx.Date.After(c.LastDate) {
		c.LastDate = tx.Date
		c.HasLast = true
	}
}
