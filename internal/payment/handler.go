package payment

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	errors "github.com/rizalfh/payment-sandbox/internal"
	"github.com/rizalfh/payment-sandbox/internal/history"
	"github.com/rizalfh/payment-sandbox/internal/transport"
)

type Handler struct {
	transport.BaseHandler
	PaymentService ServiceAPI
	Logger         *slog.Logger
}

func NewHandler(paymentService ServiceAPI, logger *slog.Logger) *Handler {
	return &Handler{
		BaseHandler:    *transport.NewBaseHandler(logger),
		PaymentService: paymentService,
		Logger:         logger,
	}
}

// SubmitPayment handles POST /api/v1/payments
func (h *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var dto SubmitPaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SubmitPayment: failed to parse request body", "error", err)
		h.HandleError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	receipt, err := h.PaymentService.SubmitPayment(r.Context(), &dto)
	if err != nil {
		h.Logger.Error("SubmitPayment: service error", "error", err, "method", dto.PaymentMethod)
		h.HandleServiceError(w, err)
		return
	}

	// gateway declines are business outcomes, delivered on the same channel
	// and with the same status as approvals
	h.WriteJSON(w, http.StatusOK, receipt)
}

// GetHistory handles GET /api/v1/payments
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	pageSize, err := queryInt(r, "page_size", history.DefaultPageSize)
	if err != nil {
		h.HandleError(w, errors.ErrInvalidPageParams)
		return
	}

	pageIndex, err := queryInt(r, "page", 1)
	if err != nil {
		h.HandleError(w, errors.ErrInvalidPageParams)
		return
	}

	if pageSize <= 0 || pageIndex <= 0 {
		h.HandleError(w, errors.ErrInvalidPageParams)
		return
	}

	page := h.PaymentService.History(pageSize, pageIndex)
	h.WriteJSON(w, http.StatusOK, page)
}

// GetMethods handles GET /api/v1/payments/methods
func (h *Handler) GetMethods(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"methods": h.PaymentService.Methods(),
	})
}

func queryInt(r *http.Request, name string, defaultVal int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(raw)
}
