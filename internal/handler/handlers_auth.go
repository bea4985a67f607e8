package handler

import (
	"net/http"
	"strings"
	"time"

	dErrors "github.com/daxp472/CMS/pkg/domain-errors"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	OrganizationType string `json:"organization_type"`
	OrganizationID   string `json:"organization_id"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		logHandlerErr(h.logger, r, "login", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(result.ExpiresIn / time.Second),
		User: userResponse{
			ID:               result.User.ID.String(),
			Email:            result.User.Email,
			Name:             result.User.Name,
			Role:             string(result.User.Role),
			OrganizationType: string(result.User.OrganizationType),
			OrganizationID:   result.User.OrganizationID.String(),
		},
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		writeError(w, dErrors.New(dErrors.CodeUnauthorized, "missing bearer token"))
		return
	}
	if err := h.auth.Logout(r.Context(), token); err != nil {
		logHandlerErr(h.logger, r, "logout", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.CurrentUser(r.Context())
	if err != nil {
		logHandlerErr(h.logger, r, "current user", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{
		ID:               user.ID.String(),
		Email:            user.Email,
		Name:             user.Name,
		Role:             string(user.Role),
		OrganizationType: string(user.OrganizationType),
		OrganizationID:   user.OrganizationID.String(),
	})
}
