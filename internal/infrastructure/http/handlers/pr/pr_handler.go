package pr

import (
	input "training-hub/internal/domain/ports/input"
	ports "training-hub/internal/domain/ports/output"
)

type PRHandler struct {
	prService input.PRInputPort
	log       ports.Logger
}

func NewPRHandler(s input.PRInputPort, log ports.Logger) *PRHandler {
	return &PRHandler{prService: s, log: log}
}
