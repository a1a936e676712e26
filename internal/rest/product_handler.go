package rest

import (
	"net/http"
	"time"

	"lokapasar-be/internal/middleware"
	"lokapasar-be/internal/product"

	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	products product.Service
}

func NewProductHandler(products product.Service) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	sellerID, _ := middleware.UserIDFrom(r.Context())
	p, err := h.products.Create(r.Context(), product.CreateProductParams{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Stock:        req.Stock,
		CategoryName: req.CategoryName,
		BrandName:    req.BrandName,
		OfferName:    req.OfferName,
		SellerID:     sellerID,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toProductResponse(p, time.Now()))
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	now := time.Now()
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p, now))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toProductResponse(p, time.Now()))
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	actorID, _ := middleware.UserIDFrom(r.Context())
	p, err := h.products.Update(r.Context(), actorID, middleware.RoleFrom(r.Context()), product.UpdateProductParams{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		OfferName:   req.OfferName,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toProductResponse(p, time.Now()))
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.UserIDFrom(r.Context())
	err := h.products.Delete(r.Context(), actorID, middleware.RoleFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
