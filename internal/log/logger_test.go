package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerStampsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Component: ComponentLedger,
		Handler:   slog.NewTextHandler(&buf, nil),
	})

	logger.Info("Transaction appended", FieldUserID, "g-123")

	out := buf.String()
	if !strings.Contains(out, "component=ledger") {
		t.Fatalf("missing component field: %s", out)
	}
	if !strings.Contains(out, "user_id=g-123") {
		t.Fatalf("missing user_id field: %s", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Component: ComponentApp,
		Handler:   slog.NewTextHandler(&buf, nil),
	})

	logger.WithComponent(ComponentWorker).Info("Sweep completed")

	if !strings.Contains(buf.String(), "component=worker") {
		t.Fatalf("missing scoped component: %s", buf.String())
	}
}
