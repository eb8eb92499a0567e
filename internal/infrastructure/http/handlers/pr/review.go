package pr

import (
	"encoding/json"
	"net/http"
	"training-hub/internal/domain/models"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/infrastructure/http/handlers/dto"
	"training-hub/internal/utils"

	"github.com/go-chi/chi/v5"
)

type ReviewPRRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

func (h *PRHandler) Review(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
		return
	}
	prID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid pull request id")
		return
	}
	var req ReviewPRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ErrValidationFailed.Error())
		return
	}

	h.log.Info("ReviewPR request", "pr_id", prID, "reviewer_id", principal.UserID, "status", req.Status)

	pr, err := h.prService.ReviewPR(r.Context(), prID, principal.UserID, models.PRStatus(req.Status))
	if err != nil {
		if code := utils.WriteServiceError(w, err); code >= http.StatusInternalServerError {
			h.log.Error("ReviewPR failed", "pr_id", prID, "err", err)
		}
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, PRResponse{PR: dto.ToPRDTO(pr)})
}
