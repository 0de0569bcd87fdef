package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/rizalfh/payment-sandbox/internal/core/datamodel/payment"
	"github.com/rizalfh/payment-sandbox/internal/core/events"
)

// ErrBlobNotFound is returned by a BlobStore when no blob has been written
// yet. The ledger treats it as an empty history, not a fault.
var ErrBlobNotFound = errors.New("ledger blob not found")

// BlobStore persists the serialized payment list under a single named key.
type BlobStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}

// Ledger is the append-only store of completed payments. The in-memory list
// is authoritative for the running process; every append rewrites the whole
// durable blob. Persistence faults are logged and swallowed so a broken disk
// never fails a payment that the gateway already approved.
type Ledger struct {
	mu       sync.Mutex
	payments []*payment.Payment
	store    BlobStore
	bus      *events.EventBus
	logger   *slog.Logger
}

func New(store BlobStore, bus *events.EventBus, logger *slog.Logger) *Ledger {
	return &Ledger{
		payments: make([]*payment.Payment, 0),
		store:    store,
		bus:      bus,
		logger:   logger,
	}
}

// Load reads the durable blob into memory. An absent blob starts an empty
// ledger; a malformed blob is logged and discarded rather than failing
// startup. Dates come back as time.Time via the RFC3339 JSON encoding.
func (l *Ledger) Load(ctx context.Context) error {
	data, err := l.store.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			l.logger.Info("no persisted ledger found, starting empty")
			return nil
		}
		l.logger.Error("failed to read persisted ledger, starting empty", "error", err)
		return nil
	}

	var payments []*payment.Payment
	if err := json.Unmarshal(data, &payments); err != nil {
		l.logger.Error("persisted ledger is malformed, starting empty", "error", err)
		return nil
	}

	l.mu.Lock()
	l.payments = payments
	l.mu.Unlock()

	l.logger.Info("ledger restored", "payments", len(payments))
	return nil
}

// Append adds p to the end of the ledger, persists the full list, and
// notifies subscribers synchronously. By the time Append returns, every
// subscriber has seen a snapshot that includes p.
func (l *Ledger) Append(ctx context.Context, p *payment.Payment) {
	l.mu.Lock()
	l.payments = append(l.payments, p)
	count := len(l.payments)
	l.persistLocked(ctx)
	l.mu.Unlock()

	if l.bus != nil {
		if err := l.bus.PublishSync(ctx, events.NewPaymentRecordedEvent(p, count)); err != nil {
			l.logger.Error("ledger change notification failed", "error", err, "payment_id", p.ID)
		}
	}

	l.logger.Info("payment appended to ledger",
		"payment_id", p.ID,
		"transaction_id", p.TransactionID,
		"method", p.PaymentMethod,
		"ledger_count", count)
}

// Snapshot returns the current list in insertion order. Callers own the
// returned slice and any sorting they need.
func (l *Ledger) Snapshot() []*payment.Payment {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]*payment.Payment, len(l.payments))
	copy(snapshot, l.payments)
	return snapshot
}

// Len returns the number of recorded payments.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.payments)
}

// Reset bulk-clears the ledger and its durable blob. This is an
// administrative operation, not part of the payment flow.
func (l *Ledger) Reset(ctx context.Context) error {
	l.mu.Lock()
	cleared := len(l.payments)
	l.payments = l.payments[:0]
	l.mu.Unlock()

	if err := l.store.Delete(ctx); err != nil {
		l.logger.Error("failed to clear persisted ledger", "error", err)
		return err
	}

	if l.bus != nil {
		if err := l.bus.PublishSync(ctx, events.NewLedgerResetEvent(cleared)); err != nil {
			l.logger.Error("ledger reset notification failed", "error", err)
		}
	}

	l.logger.Info("ledger reset", "cleared", cleared)
	return nil
}

// persistLocked serializes the full list and overwrites the blob. Must be
// called with l.mu held so no concurrent append can interleave between the
// in-memory mutation and the write.
func (l *Ledger) persistLocked(ctx context.Context) {
	data, err := json.Marshal(l.payments)
	if err != nil {
		l.logger.Error("failed to serialize ledger, in-memory state remains authoritative", "error", err)
		return
	}

	if err := l.store.Write(ctx, data); err != nil {
		l.logger.Error("failed to persist ledger, in-memory state remains authoritative",
			"error", err,
			"payments", len(l.payments))
	}
}
