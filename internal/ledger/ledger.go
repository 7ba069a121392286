// Package ledger owns the per-user, append-only transaction collection.
//
// The collection is persisted as one JSON blob per user, replaced as a
// whole on every append. The wire format is the one the mobile client
// wrote through its device store, so existing blobs keep loading.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gofinances/internal/core"
	"gofinances/internal/kv"
)

// KeyPrefix namespaces every ledger blob in the store.
const KeyPrefix = "@gofinances:transactions_user:"

// ErrCorruptLedger marks a blob that exists but cannot be decoded. It
// is surfaced loudly instead of silently wiping the user's history.
var ErrCorruptLedger = errors.New("corrupt ledger data")

// Key returns the store key of a user's transaction collection.
func Key(userID string) string {
	return KeyPrefix + userID
}

// record is the persisted shape of a transaction. Amount stays a
// decimal string and date an RFC 3339 timestamp, exactly as the client
// serialized them.
type record struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Amount   string    `json:"amount"`
	Type     string    `json:"type"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

type Ledger struct {
	store kv.Store
}

func New(store kv.Store) *Ledger {
	return &Ledger{store: store}
}

// Load reads the user's full collection. A user with no blob yet gets
// an empty collection, not an error.
func (l *Ledger) Load(ctx context.Context, userID string) ([]core.Transaction, error) {
	blob, err := l.store.Get(ctx, Key(userID))
	if errors.Is(err, kv.ErrNotFound) {
		return []core.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load ledger for user %s: %w", userID, err)
	}
	return decode(blob)
}

// Append adds one transaction at the end of the collection and rewrites
// the whole blob. Order is insertion order; nothing is resorted. If the
// write fails the persisted state is whatever was last written and the
// caller may retry.
func (l *Ledger) Append(ctx context.Context, userID string, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("append to ledger: %w", err)
	}

	current, err := l.Load(ctx, userID)
	if err != nil {
		return err
	}

	blob, err := encode(append(current, tx))
	if err != nil {
		return fmt.Errorf("encode ledger for user %s: %w", userID, err)
	}
	if err := l.store.Set(ctx, Key(userID), blob); err != nil {
		return fmt.Errorf("persist ledger for user %s: %w", userID, err)
	}

	slog.InfoContext(ctx, "Transaction appended",
		"user_id", userID,
		"transaction_id", tx.ID,
		"kind", string(tx.Kind),
		"amount_cents", tx.Amount.Cents,
		"collection_size", len(current)+1)

	return nil
}

func encode(txs []core.Transaction) ([]byte, error) {
	records := make([]record, len(txs))
	for i, tx := range txs {
		records[i] = record{
			ID:       tx.ID,
			Name:     tx.Name,
			Amount:   tx.Amount.DecimalString(),
			Type:     string(tx.Kind),
			Category: tx.Category,
			Date:     tx.Date,
		}
	}
	return json.Marshal(records)
}

func decode(blob []byte) ([]core.Transaction, error) {
	var records []record
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
	}

	txs := make([]core.Transaction, len(records))
	for i, r := range records {
		amount, err := core.ParseAmount(r.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: record %s has amount %q", ErrCorruptLedger, r.ID, r.Amount)
		}
		kind := core.Kind(r.Type)
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: record %s has type %q", ErrCorruptLedger, r.ID, r.Type)
		}
		txs[i] = core.Transaction{
			ID:       r.ID,
			Name:     r.Name,
			Amount:   amount,
			Kind:     kind,
			Category: r.Category,
			Date:     r.Date,
		}
	}
	return txs, nil
}
