package events

import (
	"time"

	"github.com/google/uuid"

	paymentmodel "github.com/rizalfh/payment-sandbox/internal/core/datamodel/payment"
)

const (
	EventTypePaymentRecorded = "ledger.payment_recorded"
	EventTypeLedgerReset     = "ledger.reset"
)

// PaymentRecordedEvent is published synchronously after each ledger append.
type PaymentRecordedEvent struct {
	BaseEvent
	Payment     *paymentmodel.Payment `json:"payment"`
	LedgerCount int                   `json:"ledger_count"`
}

func NewPaymentRecordedEvent(p *paymentmodel.Payment, ledgerCount int) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePaymentRecorded,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"payment_id":     p.ID,
				"payment_method": string(p.PaymentMethod),
				"transaction_id": p.TransactionID,
				"amount":         p.Amount,
				"ledger_count":   ledgerCount,
			},
		},
		Payment:     p,
		LedgerCount: ledgerCount,
	}
}

// LedgerResetEvent is published after an administrative bulk clear.
type LedgerResetEvent struct {
	BaseEvent
	ClearedCount int `json:"cleared_count"`
}

func NewLedgerResetEvent(clearedCount int) *LedgerResetEvent {
	return &LedgerResetEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeLedgerReset,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"cleared_count": clearedCount,
			},
		},
		ClearedCount: clearedCount,
	}
}
