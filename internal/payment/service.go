package payment

import (
	"context"
	"log/slog"

	paymentmodel "github.com/rizalfh/payment-sandbox/internal/core/datamodel/payment"
	"github.com/rizalfh/payment-sandbox/internal/history"
)

// GatewayAPI is the payment processor boundary. Declines come back as
// responses; errors mean the gateway itself broke.
type GatewayAPI interface {
	Process(ctx context.Context, p *paymentmodel.Payment) (*paymentmodel.PaymentResponse, error)
}

// LedgerAPI is what the service needs from the payment ledger.
type LedgerAPI interface {
	Append(ctx context.Context, p *paymentmodel.Payment)
	Snapshot() []*paymentmodel.Payment
}

type ServiceAPI interface {
	SubmitPayment(ctx context.Context, dto *SubmitPaymentDTO) (*Receipt, error)
	History(pageSize, pageIndex int) HistoryPage
	Methods() []MethodInfo
}

// Service drives the capture workflow: validate the submission, run the
// gateway, and record approved payments in the ledger.
type Service struct {
	gateway GatewayAPI
	ledger  LedgerAPI
	logger  *slog.Logger
}

func NewService(gateway GatewayAPI, ledger LedgerAPI, logger *slog.Logger) *Service {
	return &Service{
		gateway: gateway,
		ledger:  ledger,
		logger:  logger,
	}
}

// SubmitPayment runs one capture attempt end to end. A validation failure
// returns an AppError and never reaches the gateway. Gateway declines are
// ordinary receipts with Success=false. Only approved payments enter the
// ledger, and only after their transaction id is set.
func (s *Service) SubmitPayment(ctx context.Context, dto *SubmitPaymentDTO) (*Receipt, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Info("payment submission rejected by validation",
			"method", dto.PaymentMethod,
			"error", err)
		return nil, err
	}

	p := dto.ToPayment()

	resp, err := s.gateway.Process(ctx, p)
	if err != nil {
		s.logger.Error("gateway processing error",
			"error", err,
			"payment_id", p.ID,
			"method", p.PaymentMethod)
		// infrastructure faults surface as a generic failure, distinct from
		// the gateway's decline catalog, and the ledger is left untouched
		return &Receipt{
			Payment: NewPaymentView(p),
			Response: &paymentmodel.PaymentResponse{
				Success: false,
				Message: "An unexpected error occurred while processing your payment. Please try again.",
			},
		}, nil
	}

	if resp.Success {
		p.TransactionID = resp.TransactionID
		s.ledger.Append(ctx, p)

		s.logger.Info("payment captured",
			"payment_id", p.ID,
			"transaction_id", p.TransactionID,
			"method", p.PaymentMethod,
			"amount", p.Amount)
	} else {
		s.logger.Info("payment not captured",
			"payment_id", p.ID,
			"method", p.PaymentMethod,
			"message", resp.Message)
	}

	return &Receipt{
		Payment:  NewPaymentView(p),
		Response: resp,
	}, nil
}

// History returns one page of the ledger, newest first.
func (s *Service) History(pageSize, pageIndex int) HistoryPage {
	sorted := history.SortByDateDesc(s.ledger.Snapshot())
	page := history.Paginate(sorted, pageSize, pageIndex)

	items := make([]PaymentView, len(page.Items))
	for i, p := range page.Items {
		items[i] = NewPaymentView(p)
	}

	return HistoryPage{
		Items:           items,
		Page:            page.PageIndex,
		PageSize:        page.PageSize,
		TotalPages:      page.TotalPages,
		TotalItems:      page.TotalItems,
		Pages:           page.PageNumbers(),
		PageSizeOptions: history.PageSizeOptions,
	}
}

// Methods lists the supported payment methods for the form layer.
func (s *Service) Methods() []MethodInfo {
	methods := paymentmodel.Methods()
	infos := make([]MethodInfo, len(methods))
	for i, m := range methods {
		infos[i] = MethodInfo{Method: string(m), Name: m.DisplayName()}
	}
	return infos
}

var _ ServiceAPI = (*Service)(nil)
