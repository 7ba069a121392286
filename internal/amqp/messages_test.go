package amqp

import (
	"testing"
	"time"
)

func TestNewLedgerSyncMessage(t *testing.T) {
	msg := NewLedgerSyncMessage("g-123", "11111111-2222-3333-4444-555555555555")

	if msg.UserID != "g-123" {
		t.Errorf("UserID = %q, want %q", msg.UserID, "g-123")
	}
	if msg.TransactionID != "11111111-2222-3333-4444-555555555555" {
		t.Errorf("TransactionID = %q", msg.TransactionID)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestLedgerSyncMessageJSON(t *testing.T) {
	timestamp := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	msg := &LedgerSyncMessage{
		UserID:        "g-123",
		TransactionID: "tx-1",
		Timestamp:     timestamp,
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := LedgerSyncMessageFromJSON(body)
	if err != nil {
		t.Fatalf("LedgerSyncMessageFromJSON() error = %v", err)
	}
	if parsed.UserID != msg.UserID || parsed.TransactionID != msg.TransactionID {
		t.Errorf("parsed %+v, want %+v", parsed, msg)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("parsed Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestLedgerSyncMessageInvalidJSON(t *testing.T) {
	if _, err := LedgerSyncMessageFromJSON([]byte(`{"user_id": 42}`)); err == nil {
		t.Error("LedgerSyncMessageFromJSON() should fail with invalid JSON")
	}
}
