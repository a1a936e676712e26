package rest

import (
	"net/http"
	"time"

	"lokapasar-be/internal/coupon"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type CouponHandler struct {
	coupons coupon.Service
}

func NewCouponHandler(coupons coupon.Service) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

type couponResponse struct {
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	MaxDiscount     decimal.Decimal `json:"max_discount"`
	MinOrderValue   decimal.Decimal `json:"min_order_value"`
	SingleUse       bool            `json:"single_use"`
	Expiration      time.Time       `json:"expiration"`
}

func toCouponResponse(c *coupon.Coupon) couponResponse {
	return couponResponse{
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		MaxDiscount:     c.MaxDiscount,
		MinOrderValue:   c.MinOrderValue,
		SingleUse:       c.SingleUse,
		Expiration:      c.Expiration,
	}
}

func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	c, err := h.coupons.Create(r.Context(), coupon.Coupon{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		MaxDiscount:     req.MaxDiscount,
		MinOrderValue:   req.MinOrderValue,
		SingleUse:       req.SingleUse,
		Expiration:      req.Expiration,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toCouponResponse(c))
}

func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.coupons.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	out := make([]couponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, toCouponResponse(c))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *CouponHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.coupons.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toCouponResponse(c))
}

func (h *CouponHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCouponRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	c, err := h.coupons.Update(r.Context(), coupon.UpdateCouponParams{
		Code:            chi.URLParam(r, "code"),
		DiscountPercent: req.DiscountPercent,
		MaxDiscount:     req.MaxDiscount,
		MinOrderValue:   req.MinOrderValue,
		SingleUse:       req.SingleUse,
		Expiration:      req.Expiration,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toCouponResponse(c))
}

func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.coupons.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
