package course

import (
	"net/http"
	"training-hub/internal/infrastructure/http/handlers/dto"
	"training-hub/internal/utils"
)

func (h *CourseHandler) LinkTraineeRepo(w http.ResponseWriter, r *http.Request) {
	traineeID, courseID, req, ok := h.decode(w, r)
	if !ok {
		return
	}
	h.log.Info("LinkTraineeRepo request", "trainee_id", traineeID, "course_id", courseID, "repo", req.RepoName)

	link, err := h.courseService.LinkTraineeRepo(r.Context(), traineeID, courseID, req.RepoName, req.RepoURL)
	if err != nil {
		if code := utils.WriteServiceError(w, err); code >= http.StatusInternalServerError {
			h.log.Error("LinkTraineeRepo failed", "course_id", courseID, "err", err)
		}
		return
	}
	_ = utils.WriteJSON(w, http.StatusCreated, LinkRepoResponse{Repo: dto.FromTraineeRepo(link)})
}
