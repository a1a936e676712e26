package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"lokapasar-be/internal/cart"
	"lokapasar-be/internal/catalog"
	"lokapasar-be/internal/coupon"
	"lokapasar-be/internal/logger"
	"lokapasar-be/internal/order"
	"lokapasar-be/internal/product"
	"lokapasar-be/internal/user"

	"go.uber.org/zap"
)

type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message, detail string) {
	respondJSON(w, status, errorBody{Error: message, Detail: detail})
}

// respondServiceError maps domain sentinel errors onto HTTP statuses. Errors
// with no mapping become a 500 and the message is not echoed to the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, user.ErrAddressNotFound),
		errors.Is(err, catalog.ErrBrandNotFound),
		errors.Is(err, catalog.ErrCategoryNotFound),
		errors.Is(err, catalog.ErrParentNotFound),
		errors.Is(err, catalog.ErrOfferNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, coupon.ErrCouponNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		status = http.StatusNotFound

	case errors.Is(err, user.ErrUsernameExists),
		errors.Is(err, user.ErrEmailExists),
		errors.Is(err, catalog.ErrBrandExists),
		errors.Is(err, catalog.ErrCategoryExists),
		errors.Is(err, coupon.ErrCouponExists),
		errors.Is(err, order.ErrInsufficientStock):
		status = http.StatusConflict

	case errors.Is(err, user.ErrInvalidCredentials):
		status = http.StatusUnauthorized

	case errors.Is(err, user.ErrAdminSecret),
		errors.Is(err, product.ErrNotOwner):
		status = http.StatusForbidden

	case errors.Is(err, order.ErrPaymentDeclined):
		status = http.StatusPaymentRequired

	case errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrNoPrimaryAddress),
		errors.Is(err, catalog.ErrInvalidOffer),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidStock),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, coupon.ErrCouponInvalid),
		errors.Is(err, coupon.ErrMinOrderNotMet),
		errors.Is(err, coupon.ErrInvalidCoupon),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidPaymentMethod):
		status = http.StatusBadRequest

	default:
		logger.FromCtx(r.Context()).Error("unhandled service error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	respondError(w, status, err.Error(), "")
}
