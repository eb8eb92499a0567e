package pr

import (
	"net/http"
	"strconv"
	"training-hub/internal/domain/models"
	"training-hub/internal/infrastructure/http/handlers/dto"
	"training-hub/internal/utils"

	"github.com/go-chi/chi/v5"
)

type ListPRsResponse struct {
	CourseID     int64       `json:"courseId"`
	PullRequests []dto.PRDTO `json:"pullRequests"`
}

func (h *PRHandler) ListByCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
	if err != nil || courseID <= 0 {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid course id")
		return
	}
	var status *models.PRStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := models.PRStatus(s)
		status = &st
	}

	prs, err := h.prService.ListPRsByCourse(r.Context(), courseID, status)
	if err != nil {
		if code := utils.WriteServiceError(w, err); code >= http.StatusInternalServerError {
			h.log.Error("ListByCourse failed", "course_id", courseID, "err", err)
		}
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, ListPRsResponse{CourseID: courseID, PullRequests: dto.ToPRDTOs(prs)})
}
