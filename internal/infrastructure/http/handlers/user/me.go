package user

import (
	"encoding/json"
	"net/http"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/infrastructure/http/handlers/dto"
	"training-hub/internal/utils"
)

type LinkGitHubRequest struct {
	GitHubID       string `json:"githubId" validate:"omitempty,numeric"`
	GitHubUsername string `json:"githubUsername" validate:"required_without=GitHubID,max=39"`
}

type UserResponse struct {
	User dto.UserDTO `json:"user"`
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
		return
	}
	u, err := h.userService.GetUser(r.Context(), principal.UserID)
	if err != nil {
		if code := utils.WriteServiceError(w, err); code >= http.StatusInternalServerError {
			h.log.Error("GetMe failed", "user_id", principal.UserID, "err", err)
		}
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, UserResponse{User: dto.ToUserDTO(u)})
}

func (h *UserHandler) LinkGitHub(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
		return
	}
	var req LinkGitHubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ErrValidationFailed.Error())
		return
	}

	h.log.Info("LinkGitHub request", "user_id", principal.UserID, "github_username", req.GitHubUsername)

	u, err := h.userService.LinkGitHubAccount(r.Context(), principal.UserID, req.GitHubID, req.GitHubUsername)
	if err != nil {
		if code := utils.WriteServiceError(w, err); code >= http.StatusInternalServerError {
			h.log.Error("LinkGitHub failed", "user_id", principal.UserID, "err", err)
		}
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, UserResponse{User: dto.ToUserDTO(u)})
}
