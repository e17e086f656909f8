package usecase_test

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/bibbank/ibankit/pkg/iban"
)

// --- Test helpers ---

type recordedOutcome struct {
	Operation string
	Country   string
	Valid     bool
	Reasons   []string
}

type mockRecorder struct {
	mu       sync.Mutex
	outcomes []recordedOutcome
}

func (m *mockRecorder) RecordValidation(_ context.Context, operation, country string, valid bool, reasons []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, recordedOutcome{
		Operation: operation,
		Country:   country,
		Valid:     valid,
		Reasons:   reasons,
	})
}

func (m *mockRecorder) last() recordedOutcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.outcomes) == 0 {
		return recordedOutcome{}
	}
	return m.outcomes[len(m.outcomes)-1]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testCatalog() *iban.Registry {
	return iban.NewRegistry()
}

func boolPtr(b bool) *bool { return &b }
