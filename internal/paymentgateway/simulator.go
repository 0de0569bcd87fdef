package paymentgateway

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	paymentmodel "github.com/rizalfh/payment-sandbox/internal/core/datamodel/payment"
)

const (
	// DefaultSuccessRate is the probability a valid payment is approved.
	DefaultSuccessRate = 0.95
	// DefaultLatency models the gateway's network round-trip.
	DefaultLatency = 1500 * time.Millisecond

	transactionIDBound = 1_000_000_000
)

// Rand is the random source the simulator draws from. *rand.Rand satisfies
// it; tests substitute fixed sequences for deterministic outcomes.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type Config struct {
	SuccessRate float64
	Latency     time.Duration
	// Seed seeds the default random source. Zero means time-seeded.
	Seed int64
}

// Simulator stands in for a real payment processor: it waits a fixed
// simulated latency, defensively re-validates the payment's method-specific
// details, then approves or declines at the configured rate.
//
// Process must not be invoked again for the same logical submission until
// the prior call resolves; at-most-one in-flight payment per form is the
// caller's obligation. A started call is never retried or cancelled short
// of its context being done.
type Simulator struct {
	successRate float64
	latency     time.Duration
	logger      *slog.Logger

	mu  sync.Mutex
	rng Rand
}

func NewSimulator(cfg Config, logger *slog.Logger) *Simulator {
	successRate := cfg.SuccessRate
	if successRate <= 0 || successRate > 1 {
		successRate = DefaultSuccessRate
	}

	latency := cfg.Latency
	if latency < 0 {
		latency = DefaultLatency
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Simulator{
		successRate: successRate,
		latency:     latency,
		logger:      logger,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// WithRand replaces the random source. Intended for tests that pin the
// outcome to always-approve or always-decline.
func (s *Simulator) WithRand(rng Rand) *Simulator {
	s.mu.Lock()
	s.rng = rng
	s.mu.Unlock()
	return s
}

// Process resolves a payment attempt after the simulated latency. Declines
// and invalid details are business outcomes carried in the response; the
// error return is reserved for infrastructure faults such as a cancelled
// context. The simulator never touches the ledger.
func (s *Simulator) Process(ctx context.Context, p *paymentmodel.Payment) (*paymentmodel.PaymentResponse, error) {
	s.logger.Info("gateway: processing payment",
		"payment_id", p.ID,
		"method", p.PaymentMethod,
		"amount", p.Amount)

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			s.logger.Warn("gateway: processing interrupted", "payment_id", p.ID, "error", ctx.Err())
			return nil, fmt.Errorf("gateway processing interrupted: %w", ctx.Err())
		}
	}

	if !p.DetailsValid() {
		s.logger.Info("gateway: payment details rejected",
			"payment_id", p.ID,
			"method", p.PaymentMethod)
		return &paymentmodel.PaymentResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid %s details. Payment failed.", p.PaymentMethod),
		}, nil
	}

	s.mu.Lock()
	draw := s.rng.Float64()
	serial := s.rng.Intn(transactionIDBound)
	s.mu.Unlock()

	if draw < s.successRate {
		transactionID := fmt.Sprintf("%s%d", p.PaymentMethod.TransactionPrefix(), serial)
		s.logger.Info("gateway: payment approved",
			"payment_id", p.ID,
			"transaction_id", transactionID)
		return &paymentmodel.PaymentResponse{
			Success:       true,
			TransactionID: transactionID,
			Message:       fmt.Sprintf("Payment processed successfully via %s", p.PaymentMethod.DisplayName()),
		}, nil
	}

	message := declineMessage(p.PaymentMethod)
	s.logger.Info("gateway: payment declined",
		"payment_id", p.ID,
		"method", p.PaymentMethod,
		"message", message)
	return &paymentmodel.PaymentResponse{
		Success: false,
		Message: message,
	}, nil
}

func declineMessage(method paymentmodel.Method) string {
	switch method {
	case paymentmodel.MethodCreditCard:
		return "Payment declined by the bank. Please try another card."
	case paymentmodel.MethodPayPal:
		return "PayPal payment failed. Please check your PayPal account and try again."
	case paymentmodel.MethodRazorPay:
		return "RazorPay payment failed. Please try again later."
	case paymentmodel.MethodNetBanking:
		return "Net Banking payment failed. Please check your bank account details and try again."
	default:
		return "Payment failed. Please try again."
	}
}
