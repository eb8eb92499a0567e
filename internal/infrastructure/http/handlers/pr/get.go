package pr

import (
	"net/http"
	"training-hub/internal/infrastructure/http/handlers/dto"
	"training-hub/internal/utils"

	"github.com/go-chi/chi/v5"
)

type PRResponse struct {
	PR dto.PRDTO `json:"pr"`
}

func (h *PRHandler) GetPR(w http.ResponseWriter, r *http.Request) {
	prID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid pull request id")
		return
	}
	pr, err := h.prService.GetPR(r.Context(), prID)
	if err != nil {
		if status := utils.WriteServiceError(w, err); status >= http.StatusInternalServerError {
			h.log.Error("GetPR failed", "pr_id", prID, "err", err)
		}
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, PRResponse{PR: dto.ToPRDTO(pr)})
}
