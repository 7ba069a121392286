// Package worker mirrors ledger blobs from the primary store to a
// backup store, driven by AMQP messages with a periodic sweep as the
// safety net.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gofinances/internal/amqp"
	"gofinances/internal/kv"
	"gofinances/internal/ledger"
)

type MirrorWorker struct {
	primary   kv.Store
	backup    kv.Store
	batchSize int
}

func NewMirrorWorker(primary, backup kv.Store, batchSize int) *MirrorWorker {
	return &MirrorWorker{
		primary:   primary,
		backup:    backup,
		batchSize: batchSize,
	}
}

// HandleSyncMessage copies the named user's ledger blob to the backup
// store. The message only identifies the user; the blob is read fresh
// so a burst of messages for one user converges on the latest state.
func (w *MirrorWorker) HandleSyncMessage(ctx context.Context, msg *amqp.LedgerSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message",
		"user_id", msg.UserID,
		"transaction_id", msg.TransactionID)

	if err := w.mirrorKey(ctx, ledger.Key(msg.UserID)); err != nil {
		return fmt.Errorf("mirror ledger for user %s: %w", msg.UserID, err)
	}

	return nil
}

// ProcessAll sweeps every ledger in the primary store into the backup.
// This recovers anything a lost AMQP message left behind.
func (w *MirrorWorker) ProcessAll(ctx context.Context) error {
	keys, err := w.primary.Keys(ctx, ledger.KeyPrefix)
	if err != nil {
		return fmt.Errorf("list ledgers: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if w.batchSize > 0 && len(keys) > w.batchSize {
		keys = keys[:w.batchSize]
	}

	slog.InfoContext(ctx, "Sweeping ledgers to backup", "count", len(keys))

	errorCount := 0
	for _, key := range keys {
		if err := w.mirrorKey(ctx, key); err != nil {
			slog.ErrorContext(ctx, "Failed to mirror ledger", "key", key, "error", err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("sweep finished with %d of %d ledgers failed", errorCount, len(keys))
	}

	slog.InfoContext(ctx, "Sweep completed", "synced", len(keys))
	return nil
}

func (w *MirrorWorker) mirrorKey(ctx context.Context, key string) error {
	blob, err := w.primary.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		// The ledger vanished between message and mirror; drop the
		// backup copy too.
		if err := w.backup.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete stale backup: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read primary: %w", err)
	}

	if err := w.backup.Set(ctx, key, blob); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	return nil
}
