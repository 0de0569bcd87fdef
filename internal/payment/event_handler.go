package payment

import (
	"context"
	"log/slog"

	"github.com/rizalfh/payment-sandbox/internal/core/events"
)

// EventHandler consumes ledger events for the audit trail. It runs inside
// the synchronous notification path, so it must stay cheap and must not
// call back into the ledger's mutating operations.
type EventHandler struct {
	logger *slog.Logger
}

func NewEventHandler(logger *slog.Logger) *EventHandler {
	return &EventHandler{logger: logger}
}

func (h *EventHandler) RegisterHandlers(bus *events.EventBus) {
	bus.Subscribe(events.EventTypePaymentRecorded, h.handlePaymentRecorded)
	bus.Subscribe(events.EventTypeLedgerReset, h.handleLedgerReset)
}

func (h *EventHandler) handlePaymentRecorded(ctx context.Context, event events.Event) error {
	recorded, ok := event.(*events.PaymentRecordedEvent)
	if !ok {
		h.logger.Warn("unexpected event payload", "event_type", event.EventType())
		return nil
	}

	h.logger.Info("audit: payment recorded",
		"payment_id", recorded.Payment.ID,
		"transaction_id", recorded.Payment.TransactionID,
		"method", recorded.Payment.PaymentMethod,
		"amount", recorded.Payment.Amount,
		"ledger_count", recorded.LedgerCount)
	return nil
}

func (h *EventHandler) handleLedgerReset(ctx context.Context, event events.Event) error {
	reset, ok := event.(*events.LedgerResetEvent)
	if !ok {
		h.logger.Warn("unexpected event payload", "event_type", event.EventType())
		return nil
	}

	h.logger.Info("audit: ledger reset", "cleared", reset.ClearedCount)
	return nil
}
