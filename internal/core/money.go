// Package core holds the transaction domain: money amounts, the
// income/expense kind enumeration and the fixed category catalog.
//
// Amounts are kept as integer cents. User input arrives as a decimal
// string and is parsed exactly once, at the form boundary; arithmetic
// downstream never touches strings or floats.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a user-entered decimal string into Money.
//
// Both dot (12.34) and comma (12,34) separators are accepted. A third
// decimal digit is rounded half-up. Zero and negative values are
// rejected: a transaction amount is always strictly positive, the
// income/expense direction lives in Kind.
func ParseAmount(s string) (Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" || s[0] == '+' || s[0] == '-' {
		return Money{}, ErrInvalidAmount
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && strings.Contains(frac, ".") {
		return Money{}, ErrInvalidAmount
	}
	if !digitsOnly(whole) || !digitsOnly(frac) {
		return Money{}, ErrInvalidAmount
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	const maxUnits = (1<<63 - 1) / 100
	if units > maxUnits {
		return Money{}, ErrInvalidAmount
	}

	cents := units * 100
	switch {
	case len(frac) >= 2:
		cents += int64(frac[0]-'0')*10 + int64(frac[1]-'0')
		if len(frac) > 2 && frac[2] >= '5' {
			cents++ // half-up on the third decimal
		}
	case len(frac) == 1:
		cents += int64(frac[0]-'0') * 10
	}

	if cents <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents}, nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// DecimalString renders the amount as a plain decimal ("12.34"), the
// form the ledger has always persisted.
func (m Money) DecimalString() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Reais returns the amount as a float64 for display only. Calculations
// must stay on Cents.
func (m Money) Reais() float64 {
	return float64(m.Cents) / 100.0
}
