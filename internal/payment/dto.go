package payment

import (
	"time"

	"github.com/google/uuid"

	errors "github.com/rizalfh/payment-sandbox/internal"
	"github.com/rizalfh/payment-sandbox/internal/core/common/validation"
	paymentmodel "github.com/rizalfh/payment-sandbox/internal/core/datamodel/payment"
)

// SubmitPaymentDTO is the raw field-value mapping the form layer sends.
// Which fields are mandatory depends on paymentMethod; the rest stay empty.
type SubmitPaymentDTO struct {
	PaymentMethod  string  `json:"paymentMethod"`
	CardholderName string  `json:"cardholderName,omitempty"`
	CardNumber     string  `json:"cardNumber,omitempty"`
	ExpiryDate     string  `json:"expiryDate,omitempty"`
	CVV            string  `json:"cvv,omitempty"`
	PaypalEmail    string  `json:"paypalEmail,omitempty"`
	RazorpayID     string  `json:"razorpayId,omitempty"`
	BankName       string  `json:"bankName,omitempty"`
	AccountNumber  string  `json:"accountNumber,omitempty"`
	Amount         float64 `json:"amount"`
	Description    string  `json:"description,omitempty"`
}

func (dto *SubmitPaymentDTO) fieldValue(field string) interface{} {
	switch field {
	case paymentmodel.FieldCardholderName:
		return dto.CardholderName
	case paymentmodel.FieldCardNumber:
		return dto.CardNumber
	case paymentmodel.FieldExpiryDate:
		return dto.ExpiryDate
	case paymentmodel.FieldCVV:
		return dto.CVV
	case paymentmodel.FieldPaypalEmail:
		return dto.PaypalEmail
	case paymentmodel.FieldRazorpayID:
		return dto.RazorpayID
	case paymentmodel.FieldBankName:
		return dto.BankName
	case paymentmodel.FieldAccountNumber:
		return dto.AccountNumber
	case paymentmodel.FieldAmount:
		return dto.Amount
	case paymentmodel.FieldDescription:
		return dto.Description
	default:
		return nil
	}
}

// Validate applies the validator set selected by paymentMethod plus the
// common rules. Unknown methods fail: there is no valid default method.
func (dto *SubmitPaymentDTO) Validate() error {
	method := paymentmodel.Method(dto.PaymentMethod)

	rules, ok := paymentmodel.RulesFor(method)
	if !ok {
		return errors.NewValidationFieldError("paymentMethod",
			"paymentMethod must be one of creditCard, paypal, razorpay, netbanking",
			errors.ErrCodeUnsupportedMethod)
	}

	v := validation.NewValidator()
	for field, validators := range rules {
		v.Apply(field, dto.fieldValue(field), validators)
	}
	for field, validators := range paymentmodel.CommonRules() {
		v.Apply(field, dto.fieldValue(field), validators)
	}

	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// ToPayment normalizes a validated submission into the canonical record,
// minting its id and submission timestamp.
func (dto *SubmitPaymentDTO) ToPayment() *paymentmodel.Payment {
	return &paymentmodel.Payment{
		ID:             uuid.NewString(),
		PaymentMethod:  paymentmodel.Method(dto.PaymentMethod),
		CardholderName: dto.CardholderName,
		CardNumber:     dto.CardNumber,
		ExpiryDate:     dto.ExpiryDate,
		CVV:            dto.CVV,
		PaypalEmail:    dto.PaypalEmail,
		RazorpayID:     dto.RazorpayID,
		BankName:       dto.BankName,
		AccountNumber:  dto.AccountNumber,
		Amount:         dto.Amount,
		Description:    dto.Description,
		Date:           time.Now(),
	}
}

// PaymentView is the outward representation of a ledger record. Card
// numbers are masked and the CVV never leaves the process.
type PaymentView struct {
	ID            string    `json:"id"`
	PaymentMethod string    `json:"paymentMethod"`
	MethodName    string    `json:"methodName"`
	CardNumber    string    `json:"cardNumber,omitempty"`
	PaypalEmail   string    `json:"paypalEmail,omitempty"`
	RazorpayID    string    `json:"razorpayId,omitempty"`
	BankName      string    `json:"bankName,omitempty"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description,omitempty"`
	Date          time.Time `json:"date"`
	TransactionID string    `json:"transactionId,omitempty"`
}

func NewPaymentView(p *paymentmodel.Payment) PaymentView {
	return PaymentView{
		ID:            p.ID,
		PaymentMethod: string(p.PaymentMethod),
		MethodName:    p.PaymentMethod.DisplayName(),
		CardNumber:    paymentmodel.MaskCardNumber(p.CardNumber),
		PaypalEmail:   p.PaypalEmail,
		RazorpayID:    p.RazorpayID,
		BankName:      p.BankName,
		Amount:        p.Amount,
		Description:   p.Description,
		Date:          p.Date,
		TransactionID: p.TransactionID,
	}
}

// Receipt is handed to the confirmation display after a submission: the
// payment as accepted plus the gateway outcome.
type Receipt struct {
	Payment  PaymentView                   `json:"payment"`
	Response *paymentmodel.PaymentResponse `json:"response"`
}

// HistoryPage is the paginated history response.
type HistoryPage struct {
	Items           []PaymentView `json:"items"`
	Page            int           `json:"page"`
	PageSize        int           `json:"page_size"`
	TotalPages      int           `json:"total_pages"`
	TotalItems      int           `json:"total_items"`
	Pages           []int         `json:"pages"`
	PageSizeOptions []int         `json:"page_size_options"`
}

// MethodInfo describes one supported payment method for the form layer.
type MethodInfo struct {
	Method string `json:"method"`
	Name   string `json:"name"`
}
