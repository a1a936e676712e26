package rest

import (
	"net/http"
	"time"

	"lokapasar-be/internal/auth"
	"lokapasar-be/internal/logger"
	"lokapasar-be/internal/middleware"
	"lokapasar-be/internal/rbac"
	"lokapasar-be/internal/user"

	"go.uber.org/zap"
)

type AuthHandler struct {
	users  user.Service
	tokens *auth.Manager
	ttl    time.Duration
}

func NewAuthHandler(users user.Service, tokens *auth.Manager, ttl time.Duration) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, ttl: ttl}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	u, err := h.users.Register(r.Context(), user.RegisterParams{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		Phone:        req.Phone,
		FullName:     req.FullName,
		Role:         rbac.Role(req.Role),
		SecretCode:   req.SecretCode,
		StoreName:    req.StoreName,
		StoreAddress: req.StoreAddress,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toUserResponse(u))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !BindAndValidate(w, r, &req) {
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	token, err := h.tokens.Issue(u.ID, u.Username, string(u.Role))
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to issue token", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.ttl),
	})

	respondJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        toUserResponse(u),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.TokenFrom(r.Context()); token != "" {
		h.tokens.Revoke(token)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
