package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// Positive marks an income movement, Negative an expense. The raw
	// values match what the mobile client has always written to storage.
	Positive Kind = "positive"
	Negative Kind = "negative"
)

type (
	// Kind is the closed income/expense enumeration of a transaction.
	Kind string

	Money struct {
		Cents int64
	}

	// Transaction is one financial movement in a user's ledger.
	Transaction struct {
		ID       string
		Name     string
		Amount   Money
		Kind     Kind
		Category string // key into the category catalog
		Date     time.Time
	}
)

var (
	ErrMissingID       = errors.New("missing transaction id")
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidKind     = errors.New("invalid transaction kind")
	ErrInvalidCategory = errors.New("invalid category")
	ErrZeroDate        = errors.New("date cannot be zero")
)

func (k Kind) Valid() bool {
	switch k {
	case Positive, Negative:
		return true
	}
	return false
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if len(t.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if _, ok := CategoryByKey(t.Category); !ok {
		return ErrInvalidCategory
	}
	if t.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}
