package course

import (
	"encoding/json"
	"net/http"
	"strconv"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/infrastructure/http/handlers/dto"
	"training-hub/internal/utils"

	"github.com/go-chi/chi/v5"
)

type LinkRepoRequest struct {
	RepoName string `json:"repoName" validate:"required_without=RepoURL,reponame"`
	RepoURL  string `json:"repoUrl" validate:"omitempty,url"`
}

type LinkRepoResponse struct {
	Repo dto.RepoLinkDTO `json:"repo"`
}

func (h *CourseHandler) decode(w http.ResponseWriter, r *http.Request) (int64, int64, *LinkRepoRequest, bool) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
		return 0, 0, nil, false
	}
	courseID, err := strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
	if err != nil || courseID <= 0 {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid course id")
		return 0, 0, nil, false
	}
	var req LinkRepoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ErrInvalidJSON.Error())
		return 0, 0, nil, false
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), utils.ErrValidationFailed.Error())
		return 0, 0, nil, false
	}
	return principal.UserID, courseID, &req, true
}

func (h *CourseHandler) LinkCourseRepo(w http.ResponseWriter, r *http.Request) {
	actorID, courseID, req, ok := h.decode(w, r)
	if !ok {
		return
	}
	h.log.Info("LinkCourseRepo request", "actor_id", actorID, "course_id", courseID, "repo", req.RepoName)

	link, err := h.courseService.LinkCourseRepo(r.Context(), actorID, courseID, req.RepoName, req.RepoURL)
	if err != nil {
		if code := utils.WriteServiceError(w, err); code >= http.StatusInternalServerError {
			h.log.Error("LinkCourseRepo failed", "course_id", courseID, "err", err)
		}
		return
	}
	_ = utils.WriteJSON(w, http.StatusCreated, LinkRepoResponse{Repo: dto.FromCourseRepo(link)})
}
