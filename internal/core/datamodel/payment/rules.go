package payment

import (
	"fmt"
	"regexp"

	errors "github.com/rizalfh/payment-sandbox/internal"
	"github.com/rizalfh/payment-sandbox/internal/core/common/validation"
)

// Field names shared between the form payload and the validator sets.
const (
	FieldCardholderName = "cardholderName"
	FieldCardNumber     = "cardNumber"
	FieldExpiryDate     = "expiryDate"
	FieldCVV            = "cvv"
	FieldPaypalEmail    = "paypalEmail"
	FieldRazorpayID     = "razorpayId"
	FieldBankName       = "bankName"
	FieldAccountNumber  = "accountNumber"
	FieldAmount         = "amount"
	FieldDescription    = "description"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryDatePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// FieldRules maps a field name to the validators active for it.
type FieldRules map[string][]validation.ValidatorFunc

// RulesFor returns the immutable validator set for a payment method, or
// ok=false for an unknown method tag. Selecting a method replaces the whole
// per-method set; the common fields (amount, description) are covered by
// CommonRules and are unaffected by the method choice.
func RulesFor(method Method) (FieldRules, bool) {
	switch method {
	case MethodCreditCard:
		return FieldRules{
			FieldCardholderName: {
				validation.Required(FieldCardholderName),
			},
			FieldCardNumber: {
				validation.Required(FieldCardNumber),
				validation.Pattern(FieldCardNumber, cardNumberPattern, "card number must be exactly 16 digits", errors.ErrCodeInvalidCardNumber),
			},
			FieldExpiryDate: {
				validation.Required(FieldExpiryDate),
				validation.Pattern(FieldExpiryDate, expiryDatePattern, "expiry date must be in MM/YY format", errors.ErrCodeInvalidExpiryDate),
			},
			FieldCVV: {
				validation.Required(FieldCVV),
				validation.Pattern(FieldCVV, cvvPattern, "CVV must be 3 or 4 digits", errors.ErrCodeInvalidCVV),
			},
		}, true
	case MethodPayPal:
		return FieldRules{
			FieldPaypalEmail: {
				validation.Required(FieldPaypalEmail),
				validation.Email(FieldPaypalEmail),
			},
		}, true
	case MethodRazorPay:
		return FieldRules{
			FieldRazorpayID: {
				validation.Required(FieldRazorpayID),
				validation.MinLength(FieldRazorpayID, 6),
			},
		}, true
	case MethodNetBanking:
		return FieldRules{
			FieldBankName: {
				validation.Required(FieldBankName),
			},
			FieldAccountNumber: {
				validation.Required(FieldAccountNumber),
				validation.MinLength(FieldAccountNumber, 8),
			},
		}, true
	}
	return nil, false
}

// CommonRules are the method-independent validators.
func CommonRules() FieldRules {
	return FieldRules{
		FieldAmount: {
			validation.Required(FieldAmount),
			validation.MinFloat(FieldAmount, 0.01, errors.ErrCodeInvalidAmount),
		},
	}
}

// FieldValue returns the payment's value for a rule-selector field name.
func (p *Payment) FieldValue(field string) interface{} {
	switch field {
	case FieldCardholderName:
		return p.CardholderName
	case FieldCardNumber:
		return p.CardNumber
	case FieldExpiryDate:
		return p.ExpiryDate
	case FieldCVV:
		return p.CVV
	case FieldPaypalEmail:
		return p.PaypalEmail
	case FieldRazorpayID:
		return p.RazorpayID
	case FieldBankName:
		return p.BankName
	case FieldAccountNumber:
		return p.AccountNumber
	case FieldAmount:
		return p.Amount
	case FieldDescription:
		return p.Description
	default:
		return nil
	}
}

// Validate runs the full validator set for the payment's method against its
// own fields. Unknown methods fail outright: there is no valid default.
func (p *Payment) Validate() *errors.AppError {
	rules, ok := RulesFor(p.PaymentMethod)
	if !ok {
		return errors.NewValidationFieldError("paymentMethod",
			fmt.Sprintf("unsupported payment method: %s", p.PaymentMethod),
			errors.ErrCodeUnsupportedMethod)
	}

	v := validation.NewValidator()
	for field, validators := range rules {
		v.Apply(field, p.FieldValue(field), validators)
	}
	for field, validators := range CommonRules() {
		v.Apply(field, p.FieldValue(field), validators)
	}
	return v.Validate()
}

// DetailsValid is the gateway's defensive re-check: it validates only the
// method-specific fields, mirroring what the real gateway would reject.
func (p *Payment) DetailsValid() bool {
	rules, ok := RulesFor(p.PaymentMethod)
	if !ok {
		return false
	}

	v := validation.NewValidator()
	for field, validators := range rules {
		v.Apply(field, p.FieldValue(field), validators)
	}
	return v.Validate() == nil
}
