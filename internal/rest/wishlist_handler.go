package rest

import (
	"net/http"

	"lokapasar-be/internal/middleware"
	"lokapasar-be/internal/wishlist"

	"github.com/go-chi/chi/v5"
)

type WishlistHandler struct {
	wishlists wishlist.Service
}

func NewWishlistHandler(wishlists wishlist.Service) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := middleware.UserIDFrom(r.Context())
	entries, err := h.wishlists.List(r.Context(), buyerID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toWishlistResponses(entries))
}

func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req wishlistAddRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	buyerID, _ := middleware.UserIDFrom(r.Context())
	if err := h.wishlists.Add(r.Context(), buyerID, req.ProductID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"message": "added to wishlist"})
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := middleware.UserIDFrom(r.Context())
	if err := h.wishlists.Remove(r.Context(), buyerID, chi.URLParam(r, "productID")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
