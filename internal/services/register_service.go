// Package services orchestrates the domain packages into the
// operations the HTTP handlers expose.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"gofinances/internal/amqp"
	"gofinances/internal/core"
	"gofinances/internal/form"
	"gofinances/internal/ledger"
)

// RegisterService takes a form draft through validation, appends the
// accepted transaction to the user's ledger, and announces the change
// to the mirror worker.
type RegisterService struct {
	ledger     *ledger.Ledger
	validator  *form.Validator
	amqpClient *amqp.Client
}

func NewRegisterService(l *ledger.Ledger, v *form.Validator, amqpClient *amqp.Client) *RegisterService {
	return &RegisterService{
		ledger:     l,
		validator:  v,
		amqpClient: amqpClient,
	}
}

// Register validates the draft and appends it for userID. Validation
// failures come back as form.ValidationErrors. A failed publish does
// not fail the request: the transaction is already persisted and the
// worker's periodic sweep will pick it up.
func (s *RegisterService) Register(ctx context.Context, userID string, d form.Draft) (core.Transaction, error) {
	tx, err := s.validator.Validate(d)
	if err != nil {
		return core.Transaction{}, err
	}

	if err := s.ledger.Append(ctx, userID, tx); err != nil {
		return core.Transaction{}, fmt.Errorf("register transaction: %w", err)
	}

	if err := s.publishSyncMessage(ctx, userID, tx.ID); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"user_id", userID, "transaction_id", tx.ID, "error", err)
	}

	return tx, nil
}

func (s *RegisterService) publishSyncMessage(ctx context.Context, userID, transactionID string) error {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping sync message")
		return nil
	}

	return s.amqpClient.PublishLedgerSync(ctx, userID, transactionID)
}

func (s *RegisterService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close register service: %w", err)
		}
	}
	return nil
}
