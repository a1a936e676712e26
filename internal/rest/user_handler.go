package rest

import (
	"net/http"
	"strconv"

	"lokapasar-be/internal/middleware"
	"lokapasar-be/internal/user"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	users user.Service
}

func NewUserHandler(users user.Service) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())
	u, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(u))
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	userID, _ := middleware.UserIDFrom(r.Context())
	u, err := h.users.UpdateProfile(r.Context(), user.UpdateProfileParams{
		UserID:       userID,
		Email:        req.Email,
		Phone:        req.Phone,
		FullName:     req.FullName,
		StoreName:    req.StoreName,
		StoreAddress: req.StoreAddress,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(u))
}

func (h *UserHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	userID, _ := middleware.UserIDFrom(r.Context())
	_, err := h.users.AddAddress(r.Context(), userID, user.Address{
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Type:       user.AddressType(req.Type),
		IsPrimary:  req.IsPrimary,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	addresses, err := h.users.ListAddresses(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toAddressResponses(addresses))
}

func (h *UserHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())
	addresses, err := h.users.ListAddresses(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toAddressResponses(addresses))
}

func (h *UserHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "address index must be an integer", "")
		return
	}

	userID, _ := middleware.UserIDFrom(r.Context())
	if err := h.users.DeleteAddressByIndex(r.Context(), userID, index); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
