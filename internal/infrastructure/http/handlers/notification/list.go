package notification

import (
	"net/http"
	"strconv"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/infrastructure/http/handlers/dto"
	"training-hub/internal/utils"
)

type ListResponse struct {
	Notifications []dto.NotificationDTO `json:"notifications"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
		return
	}
	q := r.URL.Query()
	unreadOnly := q.Get("unread") == "true"
	limit := 0
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "invalid limit")
			return
		}
		limit = n
	}

	ns, err := h.notificationService.ListForUser(r.Context(), principal.UserID, unreadOnly, limit)
	if err != nil {
		if code := utils.WriteServiceError(w, err); code >= http.StatusInternalServerError {
			h.log.Error("ListNotifications failed", "user_id", principal.UserID, "err", err)
		}
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, ListResponse{Notifications: dto.ToNotificationDTOs(ns)})
}
