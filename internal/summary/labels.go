package summary

import (
	"strconv"
	"time"
)

// Month names as the app displays them (pt-BR, lowercase).
var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// DayMonth formats a date the way the highlight cards show it,
// e.g. "15 de agosto".
func DayMonth(t time.Time) string {
	return strconv.Itoa(t.Day()) + " de " + months[t.Month()-1]
}

// LastLabel is the card's "last transaction" descriptor, or the empty
// string when the card has no transaction yet.
func (c Card) LastLabel() string {
	if !c.HasLast {
		return ""
	}
	return DayMonth(c.LastDate)
}

// PeriodLabel is the balance card's descriptor: a fixed "01" start up
// to the latest expense date.
func (h Highlights) PeriodLabel() string {
	if !h.Balance.HasLast {
		return ""
	}
	return "01 a " + DayMonth(h.Balance.LastDate)
}
