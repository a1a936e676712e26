package rest

import (
	"net/http"
	"time"

	"lokapasar-be/internal/cart"
	"lokapasar-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	carts cart.Service
}

func NewCartHandler(carts cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := middleware.UserIDFrom(r.Context())
	lines, total, err := h.carts.GetCart(r.Context(), buyerID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartResponse(lines, total, time.Now()))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req cartAddRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	buyerID, _ := middleware.UserIDFrom(r.Context())
	item, err := h.carts.AddItem(r.Context(), buyerID, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req cartUpdateRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	buyerID, _ := middleware.UserIDFrom(r.Context())
	err := h.carts.UpdateQuantity(r.Context(), buyerID, chi.URLParam(r, "productID"), req.Quantity)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "cart updated"})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := middleware.UserIDFrom(r.Context())
	if err := h.carts.RemoveItem(r.Context(), buyerID, chi.URLParam(r, "productID")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := middleware.UserIDFrom(r.Context())
	if err := h.carts.Clear(r.Context(), buyerID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
