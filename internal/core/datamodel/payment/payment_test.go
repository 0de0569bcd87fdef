package payment_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rizalfh/payment-sandbox/internal/core/datamodel/payment"
)

var _ = Describe("MaskCardNumber", func() {
	It("keeps only the last four digits", func() {
		Expect(payment.MaskCardNumber("1234567890123456")).To(Equal("**** **** **** 3456"))
	})

	It("returns empty for an empty input", func() {
		Expect(payment.MaskCardNumber("")).To(Equal(""))
	})

	It("handles short inputs without panicking", func() {
		Expect(payment.MaskCardNumber("42")).To(Equal("**** **** **** 42"))
	})
})

var _ = Describe("Method", func() {
	DescribeTable("display names",
		func(m payment.Method, want string) {
			Expect(m.DisplayName()).To(Equal(want))
		},
		Entry("credit card", payment.MethodCreditCard, "Credit Card"),
		Entry("paypal", payment.MethodPayPal, "PayPal"),
		Entry("razorpay", payment.MethodRazorPay, "RazorPay"),
		Entry("netbanking", payment.MethodNetBanking, "Net Banking"),
		Entry("unknown passes through", payment.Method("cheque"), "cheque"),
	)

	DescribeTable("transaction prefixes",
		func(m payment.Method, want string) {
			Expect(m.TransactionPrefix()).To(Equal(want))
		},
		Entry("credit card", payment.MethodCreditCard, "CC"),
		Entry("paypal", payment.MethodPayPal, "PP"),
		Entry("razorpay", payment.MethodRazorPay, "RP"),
		Entry("netbanking", payment.MethodNetBanking, "NB"),
		Entry("unknown falls back", payment.Method("cheque"), "TXN"),
	)

	It("knows every catalog method", func() {
		for _, m := range payment.Methods() {
			Expect(m.Known()).To(BeTrue())
		}
		Expect(payment.Method("cheque").Known()).To(BeFalse())
	})
})

var _ = Describe("Payment serialization", func() {
	It("round-trips through JSON with timestamp fidelity", func() {
		recorded := time.Date(2026, 3, 14, 9, 26, 53, 589000000, time.UTC)
		original := &payment.Payment{
			ID:             "pay-1",
			PaymentMethod:  payment.MethodCreditCard,
			CardholderName: "Jane Roe",
			CardNumber:     "1234567890123456",
			ExpiryDate:     "12/26",
			CVV:            "123",
			Amount:         120.50,
			Description:    "annual plan",
			Date:           recorded,
			TransactionID:  "CC482910274",
		}

		data, err := json.Marshal(original)
		Expect(err).ToNot(HaveOccurred())

		var decoded payment.Payment
		Expect(json.Unmarshal(data, &decoded)).To(Succeed())

		Expect(decoded.ID).To(Equal(original.ID))
		Expect(decoded.PaymentMethod).To(Equal(original.PaymentMethod))
		Expect(decoded.CardNumber).To(Equal(original.CardNumber))
		Expect(decoded.Amount).To(Equal(original.Amount))
		Expect(decoded.TransactionID).To(Equal(original.TransactionID))
		Expect(decoded.Date.Equal(recorded)).To(BeTrue())
	})

	It("uses the wire field names", func() {
		p := &payment.Payment{
			ID:            "pay-2",
			PaymentMethod: payment.MethodPayPal,
			PaypalEmail:   "jane@example.com",
			Amount:        5,
			Date:          time.Now(),
		}

		data, err := json.Marshal(p)
		Expect(err).ToNot(HaveOccurred())

		var raw map[string]any
		Expect(json.Unmarshal(data, &raw)).To(Succeed())
		Expect(raw).To(HaveKey("paymentMethod"))
		Expect(raw).To(HaveKey("paypalEmail"))
		Expect(raw).ToNot(HaveKey("cardNumber"))
	})
})
