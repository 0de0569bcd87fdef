package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rizalfh/payment-sandbox/pkg/logger"
)

const traceHeader = "X-Trace-ID"

// RequestID threads a trace id through the request: an incoming X-Trace-ID
// is reused, otherwise one is minted. The id lands on the context logger and
// is echoed back on the response so a submission can be correlated with its
// ledger entry in the logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "trace_id", traceID)
		w.Header().Set(traceHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
