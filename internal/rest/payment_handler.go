package rest

import (
	"net/http"
	"strings"

	"lokapasar-be/internal/logger"
	"lokapasar-be/internal/order"

	"go.uber.org/zap"
)

// PaymentHandler receives provider callbacks for asynchronous charge
// settlement.
type PaymentHandler struct {
	orders order.Service
}

func NewPaymentHandler(orders order.Service) *PaymentHandler {
	return &PaymentHandler{orders: orders}
}

// Callback is idempotent: replays and callbacks for unknown charges are
// acknowledged so the provider stops retrying.
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var req paymentCallbackRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	log := logger.FromCtx(r.Context()).With(
		zap.String("charge_id", req.ChargeID),
		zap.String("status", req.Status),
	)

	if !strings.EqualFold(req.Status, "SUCCEEDED") {
		log.Info("ignoring non-settlement callback")
		respondJSON(w, http.StatusOK, map[string]string{"message": "ignored"})
		return
	}

	if err := h.orders.ConfirmPayment(r.Context(), req.ChargeID); err != nil {
		log.Error("failed to confirm payment", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}
