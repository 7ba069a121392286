package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gofinances/internal/core"
	"gofinances/internal/form"
	"gofinances/internal/kv"
	"gofinances/internal/ledger"
)

func newTestService(store kv.Store) *RegisterService {
	v := &form.Validator{
		Now:   func() time.Time { return time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC) },
		NewID: func() string { return "fixed-id" },
	}
	return NewRegisterService(ledger.New(store), v, nil)
}

func TestRegisterAppendsToLedger(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	svc := newTestService(store)

	tx, err := svc.Register(ctx, "g-123", form.Draft{
		Name:        "Internet",
		Amount:      "120,50",
		Kind:        core.Negative,
		CategoryKey: "purchases",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if tx.ID != "fixed-id" {
		t.Fatalf("expected stamped id, got %q", tx.ID)
	}

	got, err := ledger.New(store).Load(ctx, "g-123")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Internet" || got[0].Amount.Cents != 12050 {
		t.Fatalf("unexpected ledger contents: %+v", got)
	}
}

func TestRegisterRejectsInvalidDraft(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	svc := newTestService(store)

	_, err := svc.Register(ctx, "g-123", form.Draft{Amount: "abc"})
	var verrs form.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}

	// Nothing reaches the store on a rejected draft.
	if _, err := store.Get(ctx, ledger.Key("g-123")); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected empty ledger, got %v", err)
	}
}

func TestRegisterWithoutAMQP(t *testing.T) {
	// A nil AMQP client only skips the sync message.
	svc := newTestService(kv.NewMemory())
	if _, err := svc.Register(context.Background(), "g-123", form.Draft{
		Name:        "Salário",
		Amount:      "5000",
		Kind:        core.Positive,
		CategoryKey: "salary",
	}); err != nil {
		t.Fatalf("register without amqp: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
