package core

import (
	"errors"
	"testing"
	"time"
)

func validTransaction() Transaction {
	return Transaction{
		ID:       "b9ab1fe3-7b5c-4a3d-9f3a-2f1de1a3c001",
		Name:     "Mercado",
		Amount:   Money{Cents: 10000},
		Kind:     Negative,
		Category: "food",
		Date:     time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestKindValid(t *testing.T) {
	if !Positive.Valid() || !Negative.Valid() {
		t.Fatal("expected positive/negative to be valid")
	}
	if Kind("").Valid() || Kind("transfer").Valid() {
		t.Fatal("expected unknown kinds to be invalid")
	}
}

func TestTransactionValidate(t *testing.T) {
	if err := validTransaction().Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		mutate func(*Transaction)
		want   error
	}{
		{func(tx *Transaction) { tx.ID = " " }, ErrMissingID},
		{func(tx *Transaction) { tx.Name = "" }, ErrEmptyName},
		{func(tx *Transaction) { tx.Amount.Cents = 0 }, ErrInvalidAmount},
		{func(tx *Transaction) { tx.Amount.Cents = -5 }, ErrInvalidAmount},
		{func(tx *Transaction) { tx.Kind = "" }, ErrInvalidKind},
		{func(tx *Transaction) { tx.Category = "" }, ErrInvalidCategory},
		{func(tx *Transaction) { tx.Category = UnselectedCategoryKey }, ErrInvalidCategory},
		{func(tx *Transaction) { tx.Category = "crypto" }, ErrInvalidCategory},
		{func(tx *Transaction) { tx.Date = time.Time{} }, ErrZeroDate},
	}
	for i, tc := range cases {
		tx := validTransaction()
		tc.mutate(&tx)
		if err := tx.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestCategoryByKey(t *testing.T) {
	if c, ok := CategoryByKey("salary"); !ok || c.Name != "Salário" {
		t.Fatalf("expected salary category, got %+v (ok=%v)", c, ok)
	}
	if _, ok := CategoryByKey(UnselectedCategoryKey); ok {
		t.Fatal("sentinel key must not resolve to a category")
	}
	if got := len(Categories()); got != 6 {
		t.Fatalf("expected 6 categories, got %d", got)
	}
}
