package rest

import (
	"net/http"

	"lokapasar-be/internal/middleware"
	"lokapasar-be/internal/order"

	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	buyerID, _ := middleware.UserIDFrom(r.Context())
	o, err := h.orders.Place(r.Context(), buyerID, order.PlaceParams{
		PaymentMethod: order.PaymentMethod(req.PaymentMethod),
		AddressIndex:  req.AddressIndex,
		CouponCode:    req.CouponCode,
		CardToken:     req.CardToken,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toOrderResponse(o))
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := middleware.UserIDFrom(r.Context())
	orders, err := h.orders.ListByBuyer(r.Context(), buyerID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := middleware.UserIDFrom(r.Context())
	o, err := h.orders.GetByID(r.Context(), buyerID, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderResponse(o))
}

func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := middleware.UserIDFrom(r.Context())
	entries, err := h.orders.GetHistory(r.Context(), buyerID, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toHistoryResponses(entries))
}
