package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"training-hub/internal/infrastructure/github"
	"training-hub/internal/utils"
)

type webhookResponse struct {
	Status string `json:"status"`
}

func (h *WebhookHandler) GitHub(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "unreadable body")
		return
	}
	delivery := r.Header.Get("X-GitHub-Delivery")
	if !github.VerifySignature(body, r.Header.Get("X-Hub-Signature-256"), h.secret) {
		h.log.Warn("webhook signature rejected", "delivery", delivery)
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), "invalid signature")
		return
	}
	if len(body) == 0 {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "empty body")
		return
	}

	eventType := r.Header.Get("X-GitHub-Event")
	if eventType == "" {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), "missing X-GitHub-Event header")
		return
	}

	log := h.log.With("delivery", delivery, "event", eventType)
	event, err := github.Translate(eventType, body)
	if err != nil {
		log.Warn("webhook payload rejected", "err", err)
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
		return
	}
	if event == nil {
		log.Debug("webhook ignored")
		_ = utils.WriteJSON(w, http.StatusOK, webhookResponse{Status: "ignored"})
		return
	}

	// The delivery is processed to completion even if GitHub hangs up.
	ctx := context.WithoutCancel(r.Context())
	switch {
	case event.PullRequest != nil:
		err = h.prService.HandlePullRequest(ctx, event.PullRequest)
	case event.Comment != nil:
		err = h.prService.HandleComment(ctx, event.Comment)
	case event.Review != nil:
		err = h.prService.HandleReview(ctx, event.Review)
	}
	if err != nil {
		log.Error("webhook processing failed", "err", err)
		if errors.Is(err, utils.ErrInvalidArgument) {
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPStatusToCode(http.StatusBadRequest), err.Error())
			return
		}
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPStatusToCode(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}
	log.Info("webhook processed")
	_ = utils.WriteJSON(w, http.StatusOK, webhookResponse{Status: "ok"})
}
