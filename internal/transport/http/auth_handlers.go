package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/service"
	"github.com/swasthya-setu/backend/pkg/httputil"
)

type AuthHandlers struct {
	Auth *service.AuthService
}

func (h *AuthHandlers) toAuthResponse(res *service.AuthResult) authResponse {
	return authResponse{
		User:         toUserResponse(res.User),
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    int64(h.Auth.AccessTTL().Seconds()),
	}
}

func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.Password) == "" {
		httputil.Error(w, http.StatusBadRequest, "phone and password are required")
		return
	}

	out, err := h.Auth.Register(r.Context(), in.Phone, in.Password, in.Name, domain.Role(in.Role), in.Village)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.Created(w, h.toAuthResponse(out))
}

func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.Password) == "" {
		httputil.Error(w, http.StatusBadRequest, "phone and password are required")
		return
	}

	out, err := h.Auth.Login(r.Context(), in.Phone, in.Password)
	if err != nil {
		httputil.Error(w, toHTTP(err), "login failed")
		return
	}

	httputil.OK(w, h.toAuthResponse(out))
}

func (h *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	rt := strings.TrimSpace(in.RefreshToken)
	if rt == "" {
		httputil.Error(w, http.StatusBadRequest, "refreshToken is required")
		return
	}

	out, err := h.Auth.Refresh(r.Context(), rt)
	if err != nil {
		httputil.Error(w, toHTTP(err), "refresh failed")
		return
	}

	httputil.OK(w, h.toAuthResponse(out))
}

func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := UserIDFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	u, err := h.Auth.Me(r.Context(), id)
	if err != nil {
		httputil.Error(w, toHTTP(err), err.Error())
		return
	}

	httputil.OK(w, toUserResponse(u))
}
