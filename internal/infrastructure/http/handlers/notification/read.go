package notification

import (
	"net/http"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/utils"

	"github.com/go-chi/chi/v5"
)

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
		return
	}
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid notification id")
		return
	}
	if err := h.notificationService.MarkRead(r.Context(), principal.UserID, id); err != nil {
		if code := utils.WriteServiceError(w, err); code >= http.StatusInternalServerError {
			h.log.Error("MarkRead failed", "user_id", principal.UserID, "notification_id", id, "err", err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
		return
	}
	n, err := h.notificationService.MarkAllRead(r.Context(), principal.UserID)
	if err != nil {
		if code := utils.WriteServiceError(w, err); code >= http.StatusInternalServerError {
			h.log.Error("MarkAllRead failed", "user_id", principal.UserID, "err", err)
		}
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, MarkAllReadResponse{Updated: n})
}
