package payment_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	paymentmodel "github.com/rizalfh/payment-sandbox/internal/core/datamodel/payment"
	"github.com/rizalfh/payment-sandbox/internal/payment"
)

type stubService struct {
	receipt     *payment.Receipt
	submitErr   error
	submitted   *payment.SubmitPaymentDTO
	historyPage payment.HistoryPage
	pageSize    int
	pageIndex   int
}

func (s *stubService) SubmitPayment(ctx context.Context, dto *payment.SubmitPaymentDTO) (*payment.Receipt, error) {
	s.submitted = dto
	return s.receipt, s.submitErr
}

func (s *stubService) History(pageSize, pageIndex int) payment.HistoryPage {
	s.pageSize = pageSize
	s.pageIndex = pageIndex
	return s.historyPage
}

func (s *stubService) Methods() []payment.MethodInfo {
	return []payment.MethodInfo{
		{Method: "creditCard", Name: "Credit Card"},
		{Method: "paypal", Name: "PayPal"},
		{Method: "razorpay", Name: "RazorPay"},
		{Method: "netbanking", Name: "Net Banking"},
	}
}

var _ = Describe("Handler", func() {
	var (
		svc     *stubService
		handler *payment.Handler
	)

	BeforeEach(func() {
		svc = &stubService{}
		handler = payment.NewHandler(svc, discardLogger())
	})

	Describe("SubmitPayment", func() {
		It("returns 200 with the receipt for an approved payment", func() {
			svc.receipt = &payment.Receipt{
				Payment: payment.PaymentView{
					ID:            "pay-1",
					PaymentMethod: "creditCard",
					MethodName:    "Credit Card",
					CardNumber:    "**** **** **** 3456",
					Amount:        75.25,
					Date:          time.Now(),
					TransactionID: "CC12345",
				},
				Response: &paymentmodel.PaymentResponse{
					Success:       true,
					TransactionID: "CC12345",
					Message:       "Payment processed successfully via Credit Card",
				},
			}

			body, _ := json.Marshal(map[string]any{
				"paymentMethod":  "creditCard",
				"cardholderName": "Jane Roe",
				"cardNumber":     "1234567890123456",
				"expiryDate":     "12/26",
				"cvv":            "123",
				"amount":         75.25,
			})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.SubmitPayment(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(svc.submitted.CardNumber).To(Equal("1234567890123456"))

			var got payment.Receipt
			Expect(json.Unmarshal(rec.Body.Bytes(), &got)).To(Succeed())
			Expect(got.Response.Success).To(BeTrue())
			Expect(got.Payment.CardNumber).To(Equal("**** **** **** 3456"))
		})

		It("returns 200 with a failure receipt for a decline", func() {
			svc.receipt = &payment.Receipt{
				Payment: payment.PaymentView{ID: "pay-2", PaymentMethod: "paypal"},
				Response: &paymentmodel.PaymentResponse{
					Success: false,
					Message: "PayPal payment failed. Please check your PayPal account and try again.",
				},
			}

			body, _ := json.Marshal(map[string]any{
				"paymentMethod": "paypal",
				"paypalEmail":   "jane@example.com",
				"amount":        10,
			})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.SubmitPayment(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var got payment.Receipt
			Expect(json.Unmarshal(rec.Body.Bytes(), &got)).To(Succeed())
			Expect(got.Response.Success).To(BeFalse())
		})

		It("returns 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader([]byte("{not json")))
			rec := httptest.NewRecorder()

			handler.SubmitPayment(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(svc.submitted).To(BeNil())
		})

		It("returns 400 when the service rejects the submission", func() {
			dto := validSubmission()
			dto.CVV = "1"
			svc.submitErr = dto.Validate()
			Expect(svc.submitErr).To(HaveOccurred())

			body, _ := json.Marshal(dto)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.SubmitPayment(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var got map[string]any
			Expect(json.Unmarshal(rec.Body.Bytes(), &got)).To(Succeed())
			Expect(got).To(HaveKey("error"))
		})
	})

	Describe("GetHistory", func() {
		BeforeEach(func() {
			svc.historyPage = payment.HistoryPage{
				Items:           []payment.PaymentView{},
				Page:            1,
				PageSize:        5,
				TotalPages:      1,
				TotalItems:      0,
				Pages:           []int{1},
				PageSizeOptions: []int{5, 10, 20, 50},
			}
		})

		It("defaults to page 1 with the default page size", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/payments", nil)
			rec := httptest.NewRecorder()

			handler.GetHistory(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(svc.pageSize).To(Equal(5))
			Expect(svc.pageIndex).To(Equal(1))
		})

		It("passes explicit paging parameters through", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/payments?page=3&page_size=20", nil)
			rec := httptest.NewRecorder()

			handler.GetHistory(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(svc.pageSize).To(Equal(20))
			Expect(svc.pageIndex).To(Equal(3))
		})

		It("rejects non-numeric paging parameters", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/payments?page=abc", nil)
			rec := httptest.NewRecorder()

			handler.GetHistory(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects non-positive paging parameters", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/payments?page=0&page_size=-5", nil)
			rec := httptest.NewRecorder()

			handler.GetHistory(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GetMethods", func() {
		It("lists the method catalog", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/methods", nil)
			rec := httptest.NewRecorder()

			handler.GetMethods(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var got struct {
				Methods []payment.MethodInfo `json:"methods"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &got)).To(Succeed())
			Expect(got.Methods).To(HaveLen(4))
			Expect(got.Methods[0]).To(Equal(payment.MethodInfo{Method: "creditCard", Name: "Credit Card"}))
		})
	})
})
