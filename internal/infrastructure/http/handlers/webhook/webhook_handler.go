package webhook

import (
	input "training-hub/internal/domain/ports/input"
	ports "training-hub/internal/domain/ports/output"
)

// GitHub caps webhook payloads at 25 MB.
const maxPayloadBytes = 25 << 20

type WebhookHandler struct {
	prService input.PRInputPort
	secret    []byte
	log       ports.Logger
}

func NewWebhookHandler(s input.PRInputPort, secret string, log ports.Logger) *WebhookHandler {
	return &WebhookHandler{prService: s, secret: []byte(secret), log: log}
}
