package amqp

import (
	"encoding/json"
	"time"
)

// LedgerSyncMessage tells the mirror worker that a user's ledger blob
// changed. It carries only identifiers; the worker reads the current
// blob from the primary store itself.
type LedgerSyncMessage struct {
	UserID        string    `json:"user_id"`
	TransactionID string    `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewLedgerSyncMessage(userID, transactionID string) *LedgerSyncMessage {
	return &LedgerSyncMessage{
		UserID:        userID,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

func (m *LedgerSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerSyncMessageFromJSON(data []byte) (*LedgerSyncMessage, error) {
	var msg LedgerSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
