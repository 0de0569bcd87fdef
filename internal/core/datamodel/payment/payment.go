package payment

import (
	"strings"
	"time"
)

// Method is the closed payment-method enumeration. The string values are
// wire-level tags and must stay stable so previously persisted ledgers keep
// deserializing.
type Method string

const (
	MethodCreditCard Method = "creditCard"
	MethodPayPal     Method = "paypal"
	MethodRazorPay   Method = "razorpay"
	MethodNetBanking Method = "netbanking"
)

// Methods returns the supported methods in display order.
func Methods() []Method {
	return []Method{MethodCreditCard, MethodPayPal, MethodRazorPay, MethodNetBanking}
}

// Known reports whether m is one of the supported methods.
func (m Method) Known() bool {
	switch m {
	case MethodCreditCard, MethodPayPal, MethodRazorPay, MethodNetBanking:
		return true
	}
	return false
}

// DisplayName returns the human-readable method name used in gateway
// messages and history rendering. Unknown tags pass through unchanged.
func (m Method) DisplayName() string {
	switch m {
	case MethodCreditCard:
		return "Credit Card"
	case MethodPayPal:
		return "PayPal"
	case MethodRazorPay:
		return "RazorPay"
	case MethodNetBanking:
		return "Net Banking"
	default:
		return string(m)
	}
}

// TransactionPrefix returns the prefix minted into transaction ids.
func (m Method) TransactionPrefix() string {
	switch m {
	case MethodCreditCard:
		return "CC"
	case MethodPayPal:
		return "PP"
	case MethodRazorPay:
		return "RP"
	case MethodNetBanking:
		return "NB"
	default:
		return "TXN"
	}
}

// Payment is the canonical record held by the ledger. Once appended it is
// immutable; TransactionID is written exactly once, when the gateway
// confirms success and before the record enters the ledger.
//
// JSON field names match the serialized shape the ledger blob has always
// used, so an existing blob round-trips unchanged.
type Payment struct {
	ID             string    `json:"id"`
	PaymentMethod  Method    `json:"paymentMethod"`
	CardholderName string    `json:"cardholderName,omitempty"`
	CardNumber     string    `json:"cardNumber,omitempty"`
	ExpiryDate     string    `json:"expiryDate,omitempty"`
	CVV            string    `json:"cvv,omitempty"`
	PaypalEmail    string    `json:"paypalEmail,omitempty"`
	RazorpayID     string    `json:"razorpayId,omitempty"`
	BankName       string    `json:"bankName,omitempty"`
	AccountNumber  string    `json:"accountNumber,omitempty"`
	Amount         float64   `json:"amount"`
	Description    string    `json:"description,omitempty"`
	Date           time.Time `json:"date"`
	TransactionID  string    `json:"transactionId,omitempty"`
}

// PaymentResponse is the gateway outcome. TransactionID is present iff
// Success; Message is human readable and method specific.
type PaymentResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message"`
}

// MaskCardNumber renders a card number for display, keeping only the last
// four digits. Empty input yields an empty string.
func MaskCardNumber(cardNumber string) string {
	if cardNumber == "" {
		return ""
	}
	return strings.Repeat("**** ", 3) + cardNumber[max(0, len(cardNumber)-4):]
}
