package http

import (
	"testing"
	"time"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{12050, "R$ 120,50"},
		{1740000, "R$ 17.400,00"},
		{123456789, "R$ 1.234.567,89"},
		{-12050, "-R$ 120,50"},
	}
	for _, tt := range tests {
		if got := formatBRL(tt.cents); got != tt.want {
			t.Errorf("formatBRL(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatShortDate(t *testing.T) {
	d := time.Date(2026, 4, 3, 10, 0, 0, 0, time.UTC)
	if got := formatShortDate(d); got != "03/04/26" {
		t.Errorf("formatShortDate = %q, want 03/04/26", got)
	}
}
