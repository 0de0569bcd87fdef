package payment_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rizalfh/payment-sandbox/internal/core/datamodel/payment"
)

func TestPaymentModel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Payment Model Suite")
}

func validPaymentFor(method payment.Method) *payment.Payment {
	p := &payment.Payment{
		ID:            "test-id",
		PaymentMethod: method,
		Amount:        49.99,
		Description:   "test purchase",
	}
	switch method {
	case payment.MethodCreditCard:
		p.CardholderName = "Jane Roe"
		p.CardNumber = "1234567890123456"
		p.ExpiryDate = "12/26"
		p.CVV = "123"
	case payment.MethodPayPal:
		p.PaypalEmail = "jane@example.com"
	case payment.MethodRazorPay:
		p.RazorpayID = "rzp_123456"
	case payment.MethodNetBanking:
		p.BankName = "First National"
		p.AccountNumber = "12345678"
	}
	return p
}

var _ = Describe("RulesFor", func() {
	Context("for each supported method", func() {
		methods := []payment.Method{
			payment.MethodCreditCard,
			payment.MethodPayPal,
			payment.MethodRazorPay,
			payment.MethodNetBanking,
		}

		It("returns a validator set", func() {
			for _, m := range methods {
				rules, ok := payment.RulesFor(m)
				Expect(ok).To(BeTrue(), "method %s", m)
				Expect(rules).ToNot(BeEmpty(), "method %s", m)
			}
		})

		It("marks a payment with empty required fields invalid", func() {
			for _, m := range methods {
				p := &payment.Payment{PaymentMethod: m, Amount: 10}
				Expect(p.Validate()).ToNot(BeNil(), "method %s", m)
			}
		})

		It("accepts a payment with exactly the required fields filled", func() {
			for _, m := range methods {
				p := validPaymentFor(m)
				Expect(p.Validate()).To(BeNil(), "method %s", m)
			}
		})
	})

	Context("for an unknown method", func() {
		It("installs no validators and fails validation outright", func() {
			rules, ok := payment.RulesFor(payment.Method("bitcoin"))
			Expect(ok).To(BeFalse())
			Expect(rules).To(BeNil())

			p := validPaymentFor(payment.MethodCreditCard)
			p.PaymentMethod = payment.Method("bitcoin")
			Expect(p.Validate()).ToNot(BeNil())
		})
	})

	Context("method switching", func() {
		It("is idempotent for the same method", func() {
			first, ok := payment.RulesFor(payment.MethodPayPal)
			Expect(ok).To(BeTrue())
			second, ok := payment.RulesFor(payment.MethodPayPal)
			Expect(ok).To(BeTrue())

			Expect(second).To(HaveLen(len(first)))
			for field := range first {
				Expect(second).To(HaveKey(field))
			}
		})

		It("leaves no other method's fields in the selected set", func() {
			rules, _ := payment.RulesFor(payment.MethodNetBanking)
			Expect(rules).ToNot(HaveKey(payment.FieldCardNumber))
			Expect(rules).ToNot(HaveKey(payment.FieldPaypalEmail))
			Expect(rules).ToNot(HaveKey(payment.FieldRazorpayID))
		})
	})

	Describe("credit card rules", func() {
		DescribeTable("card number",
			func(cardNumber string, wantValid bool) {
				p := validPaymentFor(payment.MethodCreditCard)
				p.CardNumber = cardNumber
				Expect(p.Validate() == nil).To(Equal(wantValid))
			},
			Entry("16 digits is valid", "1234567890123456", true),
			Entry("15 digits is invalid", "123456789012345", false),
			Entry("17 digits is invalid", "12345678901234567", false),
			Entry("separators are invalid", "1234-5678-9012-3456", false),
			Entry("empty is invalid", "", false),
		)

		DescribeTable("expiry date",
			func(expiry string, wantValid bool) {
				p := validPaymentFor(payment.MethodCreditCard)
				p.ExpiryDate = expiry
				Expect(p.Validate() == nil).To(Equal(wantValid))
			},
			Entry("01/25 is valid", "01/25", true),
			Entry("12/30 is valid", "12/30", true),
			Entry("month 00 is invalid", "00/25", false),
			Entry("month 13 is invalid", "13/25", false),
			Entry("missing slash is invalid", "1225", false),
		)

		DescribeTable("cvv",
			func(cvv string, wantValid bool) {
				p := validPaymentFor(payment.MethodCreditCard)
				p.CVV = cvv
				Expect(p.Validate() == nil).To(Equal(wantValid))
			},
			Entry("3 digits is valid", "123", true),
			Entry("4 digits is valid", "1234", true),
			Entry("2 digits is invalid", "12", false),
			Entry("5 digits is invalid", "12345", false),
			Entry("letters are invalid", "12a", false),
		)
	})

	Describe("paypal rules", func() {
		DescribeTable("email shape",
			func(email string, wantValid bool) {
				p := validPaymentFor(payment.MethodPayPal)
				p.PaypalEmail = email
				Expect(p.Validate() == nil).To(Equal(wantValid))
			},
			Entry("plain address is valid", "user@example.com", true),
			Entry("subdomain is valid", "user@mail.example.co", true),
			Entry("missing @ is invalid", "userexample.com", false),
			Entry("missing dot after @ is invalid", "user@example", false),
			Entry("whitespace is invalid", "user @example.com", false),
		)
	})

	Describe("razorpay rules", func() {
		It("requires the id to be longer than 5 characters", func() {
			p := validPaymentFor(payment.MethodRazorPay)
			p.RazorpayID = "12345"
			Expect(p.Validate()).ToNot(BeNil())

			p.RazorpayID = "123456"
			Expect(p.Validate()).To(BeNil())
		})
	})

	Describe("netbanking rules", func() {
		It("requires the account number to be at least 8 characters", func() {
			p := validPaymentFor(payment.MethodNetBanking)
			p.AccountNumber = "1234567"
			Expect(p.Validate()).ToNot(BeNil())

			p.AccountNumber = "12345678"
			Expect(p.Validate()).To(BeNil())
		})
	})

	Describe("common rules", func() {
		It("rejects a zero amount", func() {
			p := validPaymentFor(payment.MethodPayPal)
			p.Amount = 0
			Expect(p.Validate()).ToNot(BeNil())
		})

		It("rejects an amount below 0.01", func() {
			p := validPaymentFor(payment.MethodPayPal)
			p.Amount = 0.005
			Expect(p.Validate()).ToNot(BeNil())
		})

		It("accepts the 0.01 minimum", func() {
			p := validPaymentFor(payment.MethodPayPal)
			p.Amount = 0.01
			Expect(p.Validate()).To(BeNil())
		})

		It("treats description as optional", func() {
			p := validPaymentFor(payment.MethodPayPal)
			p.Description = ""
			Expect(p.Validate()).To(BeNil())
		})
	})
})

var _ = Describe("DetailsValid", func() {
	It("accepts valid method details regardless of amount", func() {
		p := validPaymentFor(payment.MethodCreditCard)
		p.Amount = 0
		Expect(p.DetailsValid()).To(BeTrue())
	})

	It("rejects invalid method details", func() {
		p := validPaymentFor(payment.MethodCreditCard)
		p.CardNumber = "42"
		Expect(p.DetailsValid()).To(BeFalse())
	})

	It("rejects unknown methods", func() {
		p := validPaymentFor(payment.MethodCreditCard)
		p.PaymentMethod = payment.Method("cheque")
		Expect(p.DetailsValid()).To(BeFalse())
	})
})
