package rest

import (
	"net/http"

	"lokapasar-be/internal/catalog"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalog catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

// --- Brands ---

func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if !BindAndValidate(w, r, &req) {
		return
	}
	b, err := h.catalog.CreateBrand(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"name": b.Name})
}

func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.GetBrands(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	names := make([]string, 0, len(brands))
	for _, b := range brands {
		names = append(names, b.Name)
	}
	respondJSON(w, http.StatusOK, names)
}

func (h *CatalogHandler) RenameBrand(w http.ResponseWriter, r *http.Request) {
	var req renameBrandRequest
	if !BindAndValidate(w, r, &req) {
		return
	}
	b, err := h.catalog.RenameBrand(r.Context(), chi.URLParam(r, "name"), req.NewName)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"name": b.Name})
}

func (h *CatalogHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteBrand(r.Context(), chi.URLParam(r, "name")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Categories ---

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !BindAndValidate(w, r, &req) {
		return
	}
	c, err := h.catalog.CreateCategory(r.Context(), req.Name, req.ParentName)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, categoryResponse{Name: c.Name, ParentName: c.ParentName})
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.GetCategories(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{Name: c.Name, ParentName: c.ParentName})
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if !BindAndValidate(w, r, &req) {
		return
	}
	c, err := h.catalog.UpdateCategory(r.Context(), chi.URLParam(r, "name"), req.NewName, req.ParentName)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, categoryResponse{Name: c.Name, ParentName: c.ParentName})
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteCategory(r.Context(), chi.URLParam(r, "name")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Offers ---

func (h *CatalogHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req offerRequest
	if !BindAndValidate(w, r, &req) {
		return
	}
	o, err := h.catalog.CreateOffer(r.Context(), catalog.Offer{
		Name:            req.Name,
		DiscountPercent: req.DiscountPercent,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsActive:        req.IsActive,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toOfferResponse(o))
}

func (h *CatalogHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.catalog.GetOffers(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	out := make([]*offerResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, toOfferResponse(o))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	o, err := h.catalog.GetOffer(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toOfferResponse(o))
}

func (h *CatalogHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	var req updateOfferRequest
	if !BindAndValidate(w, r, &req) {
		return
	}
	o, err := h.catalog.UpdateOffer(r.Context(), catalog.UpdateOfferParams{
		Name:            chi.URLParam(r, "name"),
		DiscountPercent: req.DiscountPercent,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsActive:        req.IsActive,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toOfferResponse(o))
}

func (h *CatalogHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteOffer(r.Context(), chi.URLParam(r, "name")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
